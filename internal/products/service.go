package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mlefevre-dev/vitrine-backend/internal/media"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
	pkgerrors "github.com/mlefevre-dev/vitrine-backend/pkg/errors"
	"github.com/mlefevre-dev/vitrine-backend/pkg/logger"
)

type productRepository interface {
	List(ctx context.Context, filter ListFilter) ([]models.Product, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) (int64, error)
}

// Service exposes catalog management.
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]models.Product, error)
	Get(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, input ProductInput) (*models.Product, error)
	Update(ctx context.Context, id uint, input ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id uint) error
}

// ProductInput is the full product payload.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	ImageURL    *string
	Active      *bool
	Featured    *bool
}

type service struct {
	repo  productRepository
	media media.Service
	logg  *logger.Logger
}

// NewService constructs the products service.
func NewService(repo productRepository, mediaSvc media.Service, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("products repository required")
	}
	return &service{repo: repo, media: mediaSvc, logg: logg}, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]models.Product, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return product, nil
}

func (s *service) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	product := productFromInput(input)
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	s.attach(ctx, product.ImageURL)
	return product, nil
}

func (s *service) Update(ctx context.Context, id uint, input ProductInput) (*models.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	product := productFromInput(input)
	product.ID = id
	product.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}

	if urlOf(existing.ImageURL) != urlOf(product.ImageURL) {
		s.detach(ctx, existing.ImageURL)
		s.attach(ctx, product.ImageURL)
	}
	return product, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	s.detach(ctx, existing.ImageURL)
	return nil
}

func validateInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	if strings.TrimSpace(input.Category) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}
	return nil
}

func productFromInput(input ProductInput) *models.Product {
	active := true
	if input.Active != nil {
		active = *input.Active
	}
	featured := false
	if input.Featured != nil {
		featured = *input.Featured
	}
	return &models.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Category:    strings.TrimSpace(input.Category),
		ImageURL:    input.ImageURL,
		Active:      active,
		Featured:    featured,
	}
}

func urlOf(url *string) string {
	if url == nil {
		return ""
	}
	return *url
}

func (s *service) attach(ctx context.Context, url *string) {
	if s.media == nil || url == nil || *url == "" {
		return
	}
	if err := s.media.Attach(ctx, *url); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "url", *url), "media.attach_failed")
	}
}

func (s *service) detach(ctx context.Context, url *string) {
	if s.media == nil || url == nil || *url == "" {
		return
	}
	if err := s.media.Detach(ctx, *url); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "url", *url), "media.detach_failed")
	}
}
