package about

import (
	"context"

	"gorm.io/gorm"

	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
)

// Repository persists the single about page row.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get loads the page. There is at most one row.
func (r *Repository) Get(ctx context.Context) (*models.AboutPage, error) {
	var page models.AboutPage
	if err := r.db.WithContext(ctx).Order("id ASC").First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// Upsert creates the row on first write and replaces it afterwards.
func (r *Repository) Upsert(ctx context.Context, page *models.AboutPage) error {
	return r.db.WithContext(ctx).Save(page).Error
}
