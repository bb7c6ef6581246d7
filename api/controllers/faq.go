package controllers

import (
	"net/http"

	"github.com/mlefevre-dev/vitrine-backend/api/validators"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
)

type faqItemRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Category string `json:"category" validate:"required,max=100"`
	Order    int    `json:"order" validate:"omitempty,gte=1"`
}

func (b faqItemRequest) toModel(id uint) *models.FaqItem {
	return &models.FaqItem{
		ID:       id,
		Question: b.Question,
		Answer:   b.Answer,
		Category: b.Category,
		Position: b.Order,
	}
}

var FaqPatchColumns = map[string]string{
	"question": "question",
	"answer":   "answer",
	"category": "category",
	"order":    "position",
}

func BindFaqCreate(r *http.Request) (*models.FaqItem, error) {
	var body faqItemRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		return nil, err
	}
	return body.toModel(0), nil
}

func BindFaqUpdate(r *http.Request, id uint) (*models.FaqItem, error) {
	var body faqItemRequest
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		return nil, err
	}
	return body.toModel(id), nil
}
