package controllers

import (
	"net/http"

	"github.com/mlefevre-dev/vitrine-backend/api/validators"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
)

type carouselRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=200"`
	Subtitle *string `json:"subtitle" validate:"omitempty,max=300"`
	ImageURL string  `json:"image_url" validate:"required"`
	Active   *bool   `json:"active"`
	Order    int     `json:"order" validate:"omitempty,gte=1"`
}

func (b carouselRequest) toModel(id uint) *models.CarouselImage {
	active := true
	if b.Active != nil {
		active = *b.Active
	}
	return &models.CarouselImage{
		ID:       id,
		Title:    b.Title,
		Subtitle: b.Subtitle,
		ImageURL: b.ImageURL,
		Active:   active,
		Position: b.Order,
	}
}

// CarouselPatchColumns maps patchable JSON keys to columns. image_url is
// deliberately absent; replacing the image goes through PUT so the media
// lifecycle sees both URLs.
var CarouselPatchColumns = map[string]string{
	"title":    "title",
	"subtitle": "subtitle",
	"active":   "active",
	"order":    "position",
}

func BindCarouselCreate(r *http.Request) (*models.CarouselImage, error) {
	var body carouselRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		return nil, err
	}
	return body.toModel(0), nil
}

func BindCarouselUpdate(r *http.Request, id uint) (*models.CarouselImage, error) {
	var body carouselRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		return nil, err
	}
	return body.toModel(id), nil
}
