package shops

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/mlefevre-dev/vitrine-backend/internal/media"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
	"github.com/mlefevre-dev/vitrine-backend/pkg/enums"
	pkgerrors "github.com/mlefevre-dev/vitrine-backend/pkg/errors"
	"github.com/mlefevre-dev/vitrine-backend/pkg/logger"
)

type shopRepository interface {
	List(ctx context.Context, location *enums.ShopLocation) ([]models.Shop, error)
	FindByID(ctx context.Context, id uint) (*models.Shop, error)
	FindBySlug(ctx context.Context, slug string) (*models.Shop, error)
	SlugTaken(ctx context.Context, slug string, excludeID uint) (bool, error)
	Create(ctx context.Context, shop *models.Shop) error
	Update(ctx context.Context, shop *models.Shop) error
	Delete(ctx context.Context, id uint) (int64, error)
	FindStaff(ctx context.Context, shopID, staffID uint) (*models.StaffMember, error)
	CreateStaff(ctx context.Context, staff *models.StaffMember) error
	UpdateStaff(ctx context.Context, staff *models.StaffMember) error
	DeleteStaff(ctx context.Context, shopID, staffID uint) (int64, error)
}

// Service exposes shop and staff management.
type Service interface {
	List(ctx context.Context, location *enums.ShopLocation) ([]models.Shop, error)
	GetByID(ctx context.Context, id uint) (*models.Shop, error)
	GetBySlug(ctx context.Context, slug string) (*models.Shop, error)
	Create(ctx context.Context, input ShopInput) (*models.Shop, error)
	Update(ctx context.Context, id uint, input ShopInput) (*models.Shop, error)
	Delete(ctx context.Context, id uint) error
	AddStaff(ctx context.Context, shopID uint, input StaffInput) (*models.StaffMember, error)
	UpdateStaff(ctx context.Context, shopID, staffID uint, input StaffInput) (*models.StaffMember, error)
	RemoveStaff(ctx context.Context, shopID, staffID uint) error
}

// ShopInput is the full shop payload, used by both create and replace.
type ShopInput struct {
	Name            string
	Slug            string
	Address         string
	Description     string
	LongDescription *string
	Images          []string
	Hours           string
	Phone           string
	Email           string
	Features        []string
	Location        enums.ShopLocation
	Active          *bool
	Staff           []StaffInput
}

// StaffInput is one staff member payload.
type StaffInput struct {
	Name     string
	Role     string
	PhotoURL *string
}

type service struct {
	repo  shopRepository
	media media.Service
	logg  *logger.Logger
}

// NewService constructs the shops service.
func NewService(repo shopRepository, mediaSvc media.Service, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shops repository required")
	}
	return &service{repo: repo, media: mediaSvc, logg: logg}, nil
}

func (s *service) List(ctx context.Context, location *enums.ShopLocation) ([]models.Shop, error) {
	shops, err := s.repo.List(ctx, location)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list shops")
	}
	return shops, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*models.Shop, error) {
	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err, "shop")
	}
	return shop, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*models.Shop, error) {
	shop, err := s.repo.FindBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, notFoundOrInternal(err, "shop")
	}
	return shop, nil
}

func (s *service) Create(ctx context.Context, input ShopInput) (*models.Shop, error) {
	slug, err := s.resolveSlug(ctx, input, 0)
	if err != nil {
		return nil, err
	}

	shop := shopFromInput(input, slug)
	if err := s.repo.Create(ctx, shop); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create shop")
	}

	s.attachAll(ctx, shopMediaURLs(shop))
	return shop, nil
}

func (s *service) Update(ctx context.Context, id uint, input ShopInput) (*models.Shop, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err, "shop")
	}

	slug, err := s.resolveSlug(ctx, input, id)
	if err != nil {
		return nil, err
	}

	before := shopMediaURLs(existing)

	updated := shopFromInput(input, slug)
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	// replace semantics: staff rows are not touched by a shop PUT
	updated.Staff = nil
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update shop")
	}

	updated.Staff = existing.Staff
	s.syncMedia(ctx, before, shopMediaURLs(updated))
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notFoundOrInternal(err, "shop")
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete shop")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "shop not found")
	}

	urls := shopMediaURLs(existing)
	for _, member := range existing.Staff {
		if member.PhotoURL != nil && *member.PhotoURL != "" {
			urls = append(urls, *member.PhotoURL)
		}
	}
	s.detachAll(ctx, urls)
	return nil
}

func (s *service) AddStaff(ctx context.Context, shopID uint, input StaffInput) (*models.StaffMember, error) {
	if _, err := s.repo.FindByID(ctx, shopID); err != nil {
		return nil, notFoundOrInternal(err, "shop")
	}

	staff := &models.StaffMember{
		ShopID:   shopID,
		Name:     input.Name,
		Role:     input.Role,
		PhotoURL: input.PhotoURL,
	}
	if err := s.repo.CreateStaff(ctx, staff); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create staff member")
	}
	if input.PhotoURL != nil {
		s.attachAll(ctx, []string{*input.PhotoURL})
	}
	return staff, nil
}

func (s *service) UpdateStaff(ctx context.Context, shopID, staffID uint, input StaffInput) (*models.StaffMember, error) {
	staff, err := s.repo.FindStaff(ctx, shopID, staffID)
	if err != nil {
		return nil, notFoundOrInternal(err, "staff member")
	}

	var before []string
	if staff.PhotoURL != nil && *staff.PhotoURL != "" {
		before = append(before, *staff.PhotoURL)
	}

	staff.Name = input.Name
	staff.Role = input.Role
	staff.PhotoURL = input.PhotoURL
	if err := s.repo.UpdateStaff(ctx, staff); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update staff member")
	}

	var after []string
	if input.PhotoURL != nil && *input.PhotoURL != "" {
		after = append(after, *input.PhotoURL)
	}
	s.syncMedia(ctx, before, after)
	return staff, nil
}

func (s *service) RemoveStaff(ctx context.Context, shopID, staffID uint) error {
	staff, err := s.repo.FindStaff(ctx, shopID, staffID)
	if err != nil {
		return notFoundOrInternal(err, "staff member")
	}

	affected, err := s.repo.DeleteStaff(ctx, shopID, staffID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete staff member")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "staff member not found")
	}
	if staff.PhotoURL != nil && *staff.PhotoURL != "" {
		s.detachAll(ctx, []string{*staff.PhotoURL})
	}
	return nil
}

func (s *service) resolveSlug(ctx context.Context, input ShopInput, excludeID uint) (string, error) {
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(input.Name)
	} else {
		slug = Slugify(slug)
	}
	if slug == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "shop name must produce a usable slug")
	}

	taken, err := s.repo.SlugTaken(ctx, slug, excludeID)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check slug")
	}
	if taken {
		return "", pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("slug %q is already in use", slug)).
			WithDetails(map[string]any{"slug": slug})
	}
	return slug, nil
}

func shopFromInput(input ShopInput, slug string) *models.Shop {
	active := true
	if input.Active != nil {
		active = *input.Active
	}
	shop := &models.Shop{
		Name:            strings.TrimSpace(input.Name),
		Slug:            slug,
		Address:         input.Address,
		Description:     input.Description,
		LongDescription: input.LongDescription,
		Images:          input.Images,
		Hours:           input.Hours,
		Phone:           input.Phone,
		Email:           input.Email,
		Features:        input.Features,
		Location:        input.Location,
		Active:          active,
	}
	for _, member := range input.Staff {
		shop.Staff = append(shop.Staff, models.StaffMember{
			Name:     member.Name,
			Role:     member.Role,
			PhotoURL: member.PhotoURL,
		})
	}
	return shop
}

func shopMediaURLs(shop *models.Shop) []string {
	var urls []string
	for _, url := range shop.Images {
		if url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

func (s *service) syncMedia(ctx context.Context, before, after []string) {
	seen := map[string]bool{}
	for _, url := range after {
		seen[url] = true
	}
	for _, url := range before {
		if !seen[url] {
			s.detachAll(ctx, []string{url})
		}
	}
	s.attachAll(ctx, after)
}

func (s *service) attachAll(ctx context.Context, urls []string) {
	if s.media == nil {
		return
	}
	for _, url := range urls {
		if err := s.media.Attach(ctx, url); err != nil && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "url", url), "media.attach_failed")
		}
	}
}

func (s *service) detachAll(ctx context.Context, urls []string) {
	if s.media == nil {
		return
	}
	for _, url := range urls {
		if err := s.media.Detach(ctx, url); err != nil && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "url", url), "media.detach_failed")
		}
	}
}

func notFoundOrInternal(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("%s not found", what))
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("load %s", what))
}

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

var slugReplacer = strings.NewReplacer(
	"à", "a", "â", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"î", "i", "ï", "i",
	"ô", "o", "ö", "o",
	"ù", "u", "û", "u", "ü", "u",
	"ç", "c", "œ", "oe", "æ", "ae",
)

// Slugify turns a display name into a URL slug, folding the accented
// characters French shop names actually contain.
func Slugify(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	lower = slugReplacer.Replace(lower)
	lower = slugStripRe.ReplaceAllString(lower, "-")
	return strings.Trim(lower, "-")
}
