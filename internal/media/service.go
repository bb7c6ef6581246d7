package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/mlefevre-dev/vitrine-backend/pkg/config"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
	"github.com/mlefevre-dev/vitrine-backend/pkg/enums"
	pkgerrors "github.com/mlefevre-dev/vitrine-backend/pkg/errors"
	"github.com/mlefevre-dev/vitrine-backend/pkg/logger"
)

type mediaRepository interface {
	Create(ctx context.Context, media *models.Media) (*models.Media, error)
	FindByURL(ctx context.Context, url string) (*models.Media, error)
	UpdateStatusByURL(ctx context.Context, url string, status enums.MediaStatus) (int64, error)
	ListByStatusOlderThan(ctx context.Context, status enums.MediaStatus, cutoff time.Time) ([]models.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service owns the upload-then-commit lifecycle. Files land on disk with a
// pending row first; the row flips to attached when an entity persists the
// URL, and back to detached when the reference goes away.
type Service interface {
	Store(ctx context.Context, input StoreInput) (*models.Media, error)
	Attach(ctx context.Context, url string) error
	Detach(ctx context.Context, url string) error
	ReclaimOrphans(ctx context.Context, retention time.Duration) (int, error)
}

// StoreInput is one incoming multipart upload.
type StoreInput struct {
	Kind     enums.MediaKind
	FileName string
	Reader   io.Reader
}

type service struct {
	repo mediaRepository
	cfg  config.UploadsConfig
	logg *logger.Logger
}

// NewService constructs the media service.
func NewService(repo mediaRepository, cfg config.UploadsConfig, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("media repository required")
	}
	if cfg.Dir == "" {
		return nil, fmt.Errorf("uploads dir required")
	}
	if cfg.PublicBasePath == "" {
		return nil, fmt.Errorf("uploads public base path required")
	}
	if cfg.MaxUploadBytes() <= 0 {
		return nil, fmt.Errorf("max upload size must be positive")
	}
	return &service{repo: repo, cfg: cfg, logg: logg}, nil
}

func (s *service) Store(ctx context.Context, input StoreInput) (*models.Media, error) {
	if input.Kind == "" || !input.Kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid media kind")
	}
	if input.Reader == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no file uploaded")
	}

	maxBytes := s.cfg.MaxUploadBytes()
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(input.Reader, maxBytes+1))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read upload")
	}
	if n == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no file uploaded")
	}
	if n > maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("file exceeds the %d MB limit", s.cfg.MaxUploadMB))
	}

	// trust the bytes, not the declared content type
	mtype := mimetype.Detect(buf.Bytes())
	if !isAllowedMime(input.Kind, mtype.String()) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("file type %s is not accepted here, expected %s", mtype.String(), allowedMimeDescription(input.Kind))).
			WithDetails(map[string]any{"detected": mtype.String()})
	}

	id := uuid.New()
	storedName := id.String() + mtype.Extension()
	kindDir := filepath.Join(s.cfg.Dir, input.Kind.String())
	diskPath := filepath.Join(kindDir, storedName)
	publicURL := path.Join(s.cfg.PublicBasePath, input.Kind.String(), storedName)

	if err := os.MkdirAll(kindDir, 0o755); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create upload dir")
	}
	if err := os.WriteFile(diskPath, buf.Bytes(), 0o644); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write upload")
	}

	row := &models.Media{
		ID:        id,
		Kind:      input.Kind,
		Status:    enums.MediaStatusPending,
		FileName:  input.FileName,
		MimeType:  mtype.String(),
		SizeBytes: n,
		URL:       publicURL,
		DiskPath:  diskPath,
	}
	if _, err := s.repo.Create(ctx, row); err != nil {
		if rmErr := os.Remove(diskPath); rmErr != nil && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "path", diskPath), "media.cleanup_failed")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist media row")
	}

	return row, nil
}

// Attach marks the record behind the URL as referenced by an entity. URLs
// that never went through Store (external links) are silently skipped.
func (s *service) Attach(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}
	if _, err := s.repo.UpdateStatusByURL(ctx, url, enums.MediaStatusAttached); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "attach media")
	}
	return nil
}

// Detach marks the record behind the URL as orphaned so the reclaim job can
// pick it up once the retention window passes.
func (s *service) Detach(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}
	if _, err := s.repo.UpdateStatusByURL(ctx, url, enums.MediaStatusDetached); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "detach media")
	}
	return nil
}

// ReclaimOrphans deletes files and rows for uploads that stayed pending or
// detached longer than the retention window. Returns the number reclaimed.
func (s *service) ReclaimOrphans(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)

	var stale []models.Media
	for _, status := range []enums.MediaStatus{enums.MediaStatusPending, enums.MediaStatusDetached} {
		rows, err := s.repo.ListByStatusOlderThan(ctx, status, cutoff)
		if err != nil {
			return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list stale media")
		}
		stale = append(stale, rows...)
	}

	reclaimed := 0
	for _, row := range stale {
		if err := os.Remove(row.DiskPath); err != nil && !os.IsNotExist(err) {
			if s.logg != nil {
				s.logg.Warn(s.logg.WithField(ctx, "path", row.DiskPath), "media.reclaim.file_remove_failed")
			}
			continue
		}
		if err := s.repo.Delete(ctx, row.ID); err != nil {
			return reclaimed, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete stale media row")
		}
		reclaimed++
	}
	return reclaimed, nil
}
