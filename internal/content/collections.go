package content

import (
	"gorm.io/gorm"

	"github.com/mlefevre-dev/vitrine-backend/internal/media"
	"github.com/mlefevre-dev/vitrine-backend/internal/ordering"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
	"github.com/mlefevre-dev/vitrine-backend/pkg/logger"
)

// Services bundles the ordered content collections of the storefront.
type Services struct {
	Carousel   *Collection[models.CarouselImage, *models.CarouselImage]
	Team       *Collection[models.TeamMember, *models.TeamMember]
	Faq        *Collection[models.FaqItem, *models.FaqItem]
	Values     *Collection[models.CompanyValue, *models.CompanyValue]
	Milestones *Collection[models.Milestone, *models.Milestone]
	Contact    *Collection[models.ContactItem, *models.ContactItem]
	Publicite  *Collection[models.PubliciteVideo, *models.PubliciteVideo]
}

// NewServices wires every collection against the shared DB and media service.
// Deleting from any of them renumbers the survivors so carousels and lists
// never show gaps.
func NewServices(db *gorm.DB, mediaSvc media.Service, logg *logger.Logger) *Services {
	return &Services{
		Carousel: NewCollection[models.CarouselImage, *models.CarouselImage](
			db, ordering.Config{Name: "carousel", ReindexOnDelete: true}, mediaSvc,
			func(m *models.CarouselImage) []string { return nonEmpty(m.ImageURL) }, logg),
		Team: NewCollection[models.TeamMember, *models.TeamMember](
			db, ordering.Config{Name: "team", ReindexOnDelete: true}, mediaSvc,
			func(m *models.TeamMember) []string { return nonEmptyPtr(m.ImageURL) }, logg),
		Faq: NewCollection[models.FaqItem, *models.FaqItem](
			db, ordering.Config{Name: "faq", ReindexOnDelete: true}, nil, nil, logg),
		Values: NewCollection[models.CompanyValue, *models.CompanyValue](
			db, ordering.Config{Name: "values", ReindexOnDelete: true}, mediaSvc,
			func(m *models.CompanyValue) []string { return nonEmptyPtr(m.Icon) }, logg),
		Milestones: NewCollection[models.Milestone, *models.Milestone](
			db, ordering.Config{Name: "milestones", ReindexOnDelete: true}, nil, nil, logg),
		Contact: NewCollection[models.ContactItem, *models.ContactItem](
			db, ordering.Config{Name: "contact", ReindexOnDelete: true}, nil, nil, logg),
		Publicite: NewCollection[models.PubliciteVideo, *models.PubliciteVideo](
			db, ordering.Config{Name: "publicite", ReindexOnDelete: true}, mediaSvc,
			func(m *models.PubliciteVideo) []string {
				return append(nonEmpty(m.VideoURL), nonEmptyPtr(m.ThumbnailURL)...)
			}, logg),
	}
}

func nonEmpty(url string) []string {
	if url == "" {
		return nil
	}
	return []string{url}
}

func nonEmptyPtr(url *string) []string {
	if url == nil || *url == "" {
		return nil
	}
	return []string{*url}
}
