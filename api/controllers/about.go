package controllers

import (
	"net/http"

	"github.com/mlefevre-dev/vitrine-backend/api/responses"
	"github.com/mlefevre-dev/vitrine-backend/api/validators"
	"github.com/mlefevre-dev/vitrine-backend/internal/about"
	"github.com/mlefevre-dev/vitrine-backend/pkg/logger"
)

type aboutPageRequest struct {
	Title    string  `json:"title" validate:"required,max=200"`
	Content  string  `json:"content" validate:"required"`
	ImageURL *string `json:"image_url"`
}

// AboutGet serves the single about page.
func AboutGet(svc about.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// AboutPut replaces the page, creating it on first write.
func AboutPut(svc about.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body aboutPageRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := svc.Put(r.Context(), about.PageInput{
			Title:    body.Title,
			Content:  body.Content,
			ImageURL: body.ImageURL,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}
