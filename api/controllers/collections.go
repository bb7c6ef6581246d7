package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mlefevre-dev/vitrine-backend/api/responses"
	"github.com/mlefevre-dev/vitrine-backend/api/validators"
	"github.com/mlefevre-dev/vitrine-backend/internal/content"
	"github.com/mlefevre-dev/vitrine-backend/internal/ordering"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
	pkgerrors "github.com/mlefevre-dev/vitrine-backend/pkg/errors"
	"github.com/mlefevre-dev/vitrine-backend/pkg/logger"
)

// The six content collections and the publicite videos share these handlers;
// only the create/update payloads and the patch allow-lists are per-entity.

type moveRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// CollectionList serves the full collection sorted by rank.
func CollectionList[T any, PT interface {
	models.Orderable
	*T
}](svc *content.Collection[T, PT], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// CollectionGet serves a single item by id.
func CollectionGet[T any, PT interface {
	models.Orderable
	*T
}](svc *content.Collection[T, PT], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// CollectionCreate decodes the entity payload via bind and appends it to the
// collection. A zero order in the payload means append at the end.
func CollectionCreate[T any, PT interface {
	models.Orderable
	*T
}](svc *content.Collection[T, PT], logg *logger.Logger, bind func(r *http.Request) (PT, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := bind(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Create(r.Context(), item); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// CollectionUpdate decodes a full replacement payload via bind; the bound
// item carries the id taken from the URL.
func CollectionUpdate[T any, PT interface {
	models.Orderable
	*T
}](svc *content.Collection[T, PT], logg *logger.Logger, bind func(r *http.Request, id uint) (PT, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := bind(r, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Update(r.Context(), item); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		updated, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

// CollectionPatch applies a partial update. allowed maps JSON keys to DB
// columns; any other key in the body is rejected. URL columns stay out of the
// allow-lists so patches cannot bypass the media lifecycle.
func CollectionPatch[T any, PT interface {
	models.Orderable
	*T
}](svc *content.Collection[T, PT], logg *logger.Logger, allowed map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body map[string]any
		decoder := json.NewDecoder(r.Body)
		if err := decoder.Decode(&body); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid JSON body"))
			return
		}
		if len(body) == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "empty patch"))
			return
		}

		fields := make(map[string]any, len(body))
		for key, value := range body {
			column, ok := allowed[key]
			if !ok {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("field %q cannot be patched", key)))
				return
			}
			// encoding/json decodes every number as float64.
			if column == "position" || column == "year" {
				num, ok := value.(float64)
				if !ok || num != float64(int(num)) {
					responses.WriteError(r.Context(), logg, w,
						pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("field %q must be an integer", key)))
					return
				}
				value = int(num)
			}
			fields[column] = value
		}

		item, err := svc.Patch(r.Context(), id, fields)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// CollectionMove swaps the item with its sorted neighbor and returns the
// refreshed collection. A move past either end is a no-op.
func CollectionMove[T any, PT interface {
	models.Orderable
	*T
}](svc *content.Collection[T, PT], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body moveRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		dir, err := ordering.ParseDirection(body.Direction)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid direction"))
			return
		}
		items, err := svc.Move(r.Context(), id, dir)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// CollectionDelete removes the item and renumbers the survivors.
func CollectionDelete[T any, PT interface {
	models.Orderable
	*T
}](svc *content.Collection[T, PT], logg *logger.Logger) http.HandlerFunc {
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

// CollectionReindex renumbers the whole collection to a dense 1..N sequence.
// Repair endpoint for orders left sparse by pre-engine data.
func CollectionReindex[T any, PT interface {
	models.Orderable
	*T
}](svc *content.Collection[T, PT], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reindex(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		items, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}
