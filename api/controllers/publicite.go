package controllers

import (
	"net/http"

	"github.com/mlefevre-dev/vitrine-backend/api/validators"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
)

type publiciteVideoRequest struct {
	Title        string  `json:"title" validate:"required,max=200"`
	VideoURL     string  `json:"video_url" validate:"required"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Active       *bool   `json:"active"`
	Order        int     `json:"order" validate:"omitempty,gte=1"`
}

func (b publiciteVideoRequest) toModel(id uint) *models.PubliciteVideo {
	active := true
	if b.Active != nil {
		active = *b.Active
	}
	return &models.PubliciteVideo{
		ID:           id,
		Title:        b.Title,
		VideoURL:     b.VideoURL,
		ThumbnailURL: b.ThumbnailURL,
		Active:       active,
		Position:     b.Order,
	}
}

var PublicitePatchColumns = map[string]string{
	"title":  "title",
	"active": "active",
	"order":  "position",
}

func BindPubliciteCreate(r *http.Request) (*models.PubliciteVideo, error) {
	var body publiciteVideoRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		return nil, err
	}
	return body.toModel(0), nil
}

func BindPubliciteUpdate(r *http.Request, id uint) (*models.PubliciteVideo, error) {
	var body publiciteVideoRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		return nil, err
	}
	return body.toModel(id), nil
}
