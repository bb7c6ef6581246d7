package controllers

import (
	"net/http"

	"github.com/mlefevre-dev/vitrine-backend/api/validators"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
)

type contactItemRequest struct {
	Type  string `json:"type" validate:"required,max=50"`
	Value string `json:"value" validate:"required,max=500"`
	Icon  string `json:"icon" validate:"required,max=100"`
	Order int    `json:"order" validate:"omitempty,gte=1"`
}

func (b contactItemRequest) toModel(id uint) *models.ContactItem {
	return &models.ContactItem{
		ID:       id,
		Type:     b.Type,
		Value:    b.Value,
		Icon:     b.Icon,
		Position: b.Order,
	}
}

var ContactPatchColumns = map[string]string{
	"type":  "type",
	"value": "value",
	"icon":  "icon",
	"order": "position",
}

func BindContactCreate(r *http.Request) (*models.ContactItem, error) {
	var body contactItemRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		return nil, err
	}
	return body.toModel(0), nil
}

func BindContactUpdate(r *http.Request, id uint) (*models.ContactItem, error) {
	var body contactItemRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		return nil, err
	}
	return body.toModel(id), nil
}
