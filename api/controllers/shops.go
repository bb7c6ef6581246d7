package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mlefevre-dev/vitrine-backend/api/responses"
	"github.com/mlefevre-dev/vitrine-backend/api/validators"
	"github.com/mlefevre-dev/vitrine-backend/internal/shops"
	"github.com/mlefevre-dev/vitrine-backend/pkg/enums"
	pkgerrors "github.com/mlefevre-dev/vitrine-backend/pkg/errors"
	"github.com/mlefevre-dev/vitrine-backend/pkg/logger"
)

type shopRequest struct {
	Name            string         `json:"name" validate:"required,max=200"`
	Slug            string         `json:"slug" validate:"omitempty,max=200"`
	Address         string         `json:"address" validate:"required"`
	Description     string         `json:"description" validate:"required"`
	LongDescription *string        `json:"long_description"`
	Images          []string       `json:"images"`
	Hours           string         `json:"hours" validate:"required"`
	Phone           string         `json:"phone" validate:"required,max=50"`
	Email           string         `json:"email" validate:"required,email"`
	Features        []string       `json:"features"`
	Location        string         `json:"location" validate:"required,oneof=local international"`
	Active          *bool          `json:"active"`
	Staff           []staffRequest `json:"staff" validate:"dive"`
}

type staffRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Role     string  `json:"role" validate:"required,max=200"`
	PhotoURL *string `json:"photo_url"`
}

func (b shopRequest) toInput() shops.ShopInput {
	staff := make([]shops.StaffInput, 0, len(b.Staff))
	for _, s := range b.Staff {
		staff = append(staff, s.toInput())
	}
	return shops.ShopInput{
		Name:            b.Name,
		Slug:            b.Slug,
		Address:         b.Address,
		Description:     b.Description,
		LongDescription: b.LongDescription,
		Images:          b.Images,
		Hours:           b.Hours,
		Phone:           b.Phone,
		Email:           b.Email,
		Features:        b.Features,
		Location:        enums.ShopLocation(b.Location),
		Active:          b.Active,
		Staff:           staff,
	}
}

func (b staffRequest) toInput() shops.StaffInput {
	return shops.StaffInput{Name: b.Name, Role: b.Role, PhotoURL: b.PhotoURL}
}

// ShopsList serves every shop with its staff, optionally filtered by
// location.
func ShopsList(svc shops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var location *enums.ShopLocation
		if raw := strings.TrimSpace(r.URL.Query().Get("location")); raw != "" {
			loc, err := enums.ParseShopLocation(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid location filter"))
				return
			}
			location = &loc
		}
		items, err := svc.List(r.Context(), location)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

func ShopsGet(svc shops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		shop, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, shop)
	}
}

// ShopsGetBySlug is the public storefront lookup.
func ShopsGetBySlug(svc shops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(chi.URLParam(r, "slug"))
		if slug == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "slug is required"))
			return
		}
		shop, err := svc.GetBySlug(r.Context(), slug)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, shop)
	}
}

func ShopsCreate(svc shops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body shopRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		shop, err := svc.Create(r.Context(), body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, shop)
	}
}

// ShopsUpdate replaces the shop record. Staff rows are managed through the
// sub-resource and are not touched here.
func ShopsUpdate(svc shops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body shopRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		shop, err := svc.Update(r.Context(), id, body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, shop)
	}
}

func ShopsDelete(svc shops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

func ShopsAddStaff(svc shops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shopID, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body staffRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		member, err := svc.AddStaff(r.Context(), shopID, body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, member)
	}
}

func ShopsUpdateStaff(svc shops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shopID, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		staffID, err := validators.ParseIDParam(r, "staffID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body staffRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		member, err := svc.UpdateStaff(r.Context(), shopID, staffID, body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, member)
	}
}

func ShopsRemoveStaff(svc shops.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shopID, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		staffID, err := validators.ParseIDParam(r, "staffID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.RemoveStaff(r.Context(), shopID, staffID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}
