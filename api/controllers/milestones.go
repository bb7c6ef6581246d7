package controllers

import (
	"net/http"

	"github.com/mlefevre-dev/vitrine-backend/api/validators"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
)

type milestoneRequest struct {
	Year        int     `json:"year" validate:"required,gte=1800,lte=2200"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description"`
	Order       int     `json:"order" validate:"omitempty,gte=1"`
}

func (b milestoneRequest) toModel(id uint) *models.Milestone {
	return &models.Milestone{
		ID:          id,
		Year:        b.Year,
		Title:       b.Title,
		Description: b.Description,
		Position:    b.Order,
	}
}

var MilestonesPatchColumns = map[string]string{
	"year":        "year",
	"title":       "title",
	"description": "description",
	"order":       "position",
}

func BindMilestoneCreate(r *http.Request) (*models.Milestone, error) {
	var body milestoneRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		return nil, err
	}
	return body.toModel(0), nil
}

func BindMilestoneUpdate(r *http.Request, id uint) (*models.Milestone, error) {
	var body milestoneRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		return nil, err
	}
	return body.toModel(id), nil
}
