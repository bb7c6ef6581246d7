package about

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mlefevre-dev/vitrine-backend/internal/media"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
	pkgerrors "github.com/mlefevre-dev/vitrine-backend/pkg/errors"
	"github.com/mlefevre-dev/vitrine-backend/pkg/logger"
)

type aboutRepository interface {
	Get(ctx context.Context) (*models.AboutPage, error)
	Upsert(ctx context.Context, page *models.AboutPage) error
}

// Service manages the single "à propos" content block.
type Service interface {
	Get(ctx context.Context) (*models.AboutPage, error)
	Put(ctx context.Context, input PageInput) (*models.AboutPage, error)
}

// PageInput is the full page payload.
type PageInput struct {
	Title    string
	Content  string
	ImageURL *string
}

type service struct {
	repo  aboutRepository
	media media.Service
	logg  *logger.Logger
}

// NewService constructs the about page service.
func NewService(repo aboutRepository, mediaSvc media.Service, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("about repository required")
	}
	return &service{repo: repo, media: mediaSvc, logg: logg}, nil
}

func (s *service) Get(ctx context.Context) (*models.AboutPage, error) {
	page, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "about page not set yet")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load about page")
	}
	return page, nil
}

// Put replaces the page, creating it on first use.
func (s *service) Put(ctx context.Context, input PageInput) (*models.AboutPage, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "content is required")
	}

	var oldURL string
	existing, err := s.repo.Get(ctx)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load about page")
	}

	page := &models.AboutPage{
		Title:    input.Title,
		Content:  input.Content,
		ImageURL: input.ImageURL,
	}
	if existing != nil {
		page.ID = existing.ID
		if existing.ImageURL != nil {
			oldURL = *existing.ImageURL
		}
	}

	if err := s.repo.Upsert(ctx, page); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save about page")
	}

	newURL := ""
	if input.ImageURL != nil {
		newURL = *input.ImageURL
	}
	if s.media != nil && oldURL != newURL {
		if oldURL != "" {
			if err := s.media.Detach(ctx, oldURL); err != nil && s.logg != nil {
				s.logg.Warn(s.logg.WithField(ctx, "url", oldURL), "media.detach_failed")
			}
		}
		if newURL != "" {
			if err := s.media.Attach(ctx, newURL); err != nil && s.logg != nil {
				s.logg.Warn(s.logg.WithField(ctx, "url", newURL), "media.attach_failed")
			}
		}
	}
	return page, nil
}
