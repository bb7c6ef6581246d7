package shops

import (
	"context"

	"gorm.io/gorm"

	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
	"github.com/mlefevre-dev/vitrine-backend/pkg/enums"
)

// Repository exposes shop and staff persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all shops, optionally filtered by location, staff preloaded.
func (r *Repository) List(ctx context.Context, location *enums.ShopLocation) ([]models.Shop, error) {
	query := r.db.WithContext(ctx).Preload("Staff").Order("name ASC")
	if location != nil {
		query = query.Where("location = ?", *location)
	}
	var shops []models.Shop
	if err := query.Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// FindByID loads one shop with its staff.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.WithContext(ctx).Preload("Staff").First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// FindBySlug loads one shop by its URL slug.
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.WithContext(ctx).Preload("Staff").First(&shop, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// SlugTaken reports whether another shop already uses the slug.
func (r *Repository) SlugTaken(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Shop{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create persists a shop together with any inline staff rows.
func (r *Repository) Create(ctx context.Context, shop *models.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

// Update saves the full shop row. Staff rows are managed separately.
func (r *Repository) Update(ctx context.Context, shop *models.Shop) error {
	return r.db.WithContext(ctx).Omit("Staff").Save(shop).Error
}

// Delete removes the shop; staff rows go with it via the FK cascade.
func (r *Repository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Select("Staff").Delete(&models.Shop{ID: id})
	return result.RowsAffected, result.Error
}

// FindStaff loads one staff member scoped to a shop.
func (r *Repository) FindStaff(ctx context.Context, shopID, staffID uint) (*models.StaffMember, error) {
	var staff models.StaffMember
	if err := r.db.WithContext(ctx).
		First(&staff, "id = ? AND shop_id = ?", staffID, shopID).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

// CreateStaff adds a staff member to a shop.
func (r *Repository) CreateStaff(ctx context.Context, staff *models.StaffMember) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

// UpdateStaff saves a staff row.
func (r *Repository) UpdateStaff(ctx context.Context, staff *models.StaffMember) error {
	return r.db.WithContext(ctx).Save(staff).Error
}

// DeleteStaff removes a staff member scoped to a shop.
func (r *Repository) DeleteStaff(ctx context.Context, shopID, staffID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", staffID, shopID).
		Delete(&models.StaffMember{})
	return result.RowsAffected, result.Error
}
