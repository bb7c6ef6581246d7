package controllers

import (
	"net/http"

	"github.com/mlefevre-dev/vitrine-backend/api/validators"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
)

// teamMemberRequest serializes the job title as "position" to match the
// admin UI; the ordering rank travels as "order".
type teamMemberRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	JobTitle string  `json:"position" validate:"required,max=200"`
	Bio      *string `json:"bio"`
	ImageURL *string `json:"image_url"`
	Order    int     `json:"order" validate:"omitempty,gte=1"`
}

func (b teamMemberRequest) toModel(id uint) *models.TeamMember {
	return &models.TeamMember{
		ID:       id,
		Name:     b.Name,
		JobTitle: b.JobTitle,
		Bio:      b.Bio,
		ImageURL: b.ImageURL,
		Position: b.Order,
	}
}

var TeamPatchColumns = map[string]string{
	"name":     "name",
	"position": "job_title",
	"bio":      "bio",
	"order":    "position",
}

func BindTeamCreate(r *http.Request) (*models.TeamMember, error) {
	var body teamMemberRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		return nil, err
	}
	return body.toModel(0), nil
}

func BindTeamUpdate(r *http.Request, id uint) (*models.TeamMember, error) {
	var body teamMemberRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		return nil, err
	}
	return body.toModel(id), nil
}
