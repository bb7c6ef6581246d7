package controllers

import (
	"net/http"

	"github.com/mlefevre-dev/vitrine-backend/api/validators"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
)

type companyValueRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Order       int     `json:"order" validate:"omitempty,gte=1"`
}

func (b companyValueRequest) toModel(id uint) *models.CompanyValue {
	return &models.CompanyValue{
		ID:          id,
		Title:       b.Title,
		Description: b.Description,
		Icon:        b.Icon,
		Position:    b.Order,
	}
}

var ValuesPatchColumns = map[string]string{
	"title":       "title",
	"description": "description",
	"order":       "position",
}

func BindValueCreate(r *http.Request) (*models.CompanyValue, error) {
	var body companyValueRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		return nil, err
	}
	return body.toModel(0), nil
}

func BindValueUpdate(r *http.Request, id uint) (*models.CompanyValue, error) {
	var body companyValueRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		return nil, err
	}
	return body.toModel(id), nil
}
