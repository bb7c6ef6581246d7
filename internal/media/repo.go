package media

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
	"github.com/mlefevre-dev/vitrine-backend/pkg/enums"
)

// Repository exposes media metadata persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a media repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a media record.
func (r *Repository) Create(ctx context.Context, media *models.Media) (*models.Media, error) {
	if err := r.db.WithContext(ctx).Create(media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

// FindByID retrieves a media record by ID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	var m models.Media
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByURL retrieves a media record by its public URL.
func (r *Repository) FindByURL(ctx context.Context, url string) (*models.Media, error) {
	var m models.Media
	if err := r.db.WithContext(ctx).First(&m, "url = ?", url).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateStatusByURL transitions the lifecycle status of the record behind a URL.
func (r *Repository) UpdateStatusByURL(ctx context.Context, url string, status enums.MediaStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Media{}).
		Where("url = ?", url).
		Update("status", status)
	return result.RowsAffected, result.Error
}

// ListByStatusOlderThan returns records in the given status last touched
// before the cutoff. Used by the orphan reclamation job.
func (r *Repository) ListByStatusOlderThan(ctx context.Context, status enums.MediaStatus, cutoff time.Time) ([]models.Media, error) {
	var rows []models.Media
	if err := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", status, cutoff).
		Order("updated_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes a media record.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Media{}).Error
}
