package controllers

import (
	"net/http"
	"strings"

	"github.com/mlefevre-dev/vitrine-backend/api/responses"
	"github.com/mlefevre-dev/vitrine-backend/internal/media"
	"github.com/mlefevre-dev/vitrine-backend/pkg/config"
	"github.com/mlefevre-dev/vitrine-backend/pkg/enums"
	pkgerrors "github.com/mlefevre-dev/vitrine-backend/pkg/errors"
	"github.com/mlefevre-dev/vitrine-backend/pkg/logger"
)

// Upload accepts a multipart form with a "file" part and a "context" value
// naming the storage sub-path, stores the bytes and returns the pending media
// row with its public URL. The entity save that references the URL later
// flips it to attached.
func Upload(svc media.Service, cfg config.UploadsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "media service unavailable"))
			return
		}

		// One extra MB for the form envelope around the file part.
		r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxUploadBytes()+1<<20)
		if err := r.ParseMultipartForm(cfg.MaxUploadBytes()); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}
		defer func() {
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
		}()

		raw := strings.TrimSpace(r.FormValue("context"))
		if raw == "" {
			// Older admin builds send the sub-path as "kind".
			raw = strings.TrimSpace(r.FormValue("kind"))
		}
		kind := enums.MediaKind(raw)
		if kind == "" {
			kind = enums.MediaKindOther
		}
		if !kind.IsValid() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid media kind"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "no file uploaded"))
			return
		}
		defer file.Close()

		row, err := svc.Store(r.Context(), media.StoreInput{
			Kind:     kind,
			FileName: header.Filename,
			Reader:   file,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}
