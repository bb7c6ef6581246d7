package content

import (
	"context"

	"gorm.io/gorm"

	"github.com/mlefevre-dev/vitrine-backend/internal/media"
	"github.com/mlefevre-dev/vitrine-backend/internal/ordering"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
	"github.com/mlefevre-dev/vitrine-backend/pkg/logger"
)

// Collection glues one ordered collection to the media lifecycle. Writes go
// through the ordering engine; any upload URL the row carries is attached on
// save and detached when the row drops or replaces it.
type Collection[T any, PT interface {
	models.Orderable
	*T
}] struct {
	mgr   *ordering.Manager[T, PT]
	media media.Service
	urls  func(*T) []string
	logg  *logger.Logger
}

// NewCollection builds the service for one collection. urls extracts the
// media URLs a row references; pass nil for collections without uploads.
func NewCollection[T any, PT interface {
	models.Orderable
	*T
}](db *gorm.DB, cfg ordering.Config, mediaSvc media.Service, urls func(*T) []string, logg *logger.Logger) *Collection[T, PT] {
	return &Collection[T, PT]{
		mgr:   ordering.NewManager[T, PT](db, cfg),
		media: mediaSvc,
		urls:  urls,
		logg:  logg,
	}
}

func (c *Collection[T, PT]) List(ctx context.Context) ([]T, error) {
	return c.mgr.List(ctx)
}

func (c *Collection[T, PT]) Get(ctx context.Context, id uint) (*T, error) {
	return c.mgr.Get(ctx, id)
}

func (c *Collection[T, PT]) Create(ctx context.Context, item PT) error {
	if err := c.mgr.Create(ctx, item); err != nil {
		return err
	}
	c.attachAll(ctx, c.extractURLs((*T)(item)))
	return nil
}

func (c *Collection[T, PT]) Update(ctx context.Context, item PT) error {
	before, err := c.mgr.Get(ctx, item.PrimaryID())
	if err != nil {
		return err
	}
	if err := c.mgr.Update(ctx, item); err != nil {
		return err
	}
	c.syncMedia(ctx, c.extractURLs(before), c.extractURLs((*T)(item)))
	return nil
}

// Patch forwards a partial update. Callers restrict fields to a column
// allow-list before handing them over; URL columns are excluded there so a
// patch never bypasses the media lifecycle.
func (c *Collection[T, PT]) Patch(ctx context.Context, id uint, fields map[string]any) (*T, error) {
	if err := c.mgr.Patch(ctx, id, fields); err != nil {
		return nil, err
	}
	return c.mgr.Get(ctx, id)
}

func (c *Collection[T, PT]) Move(ctx context.Context, id uint, dir ordering.Direction) ([]T, error) {
	return c.mgr.Move(ctx, id, dir)
}

func (c *Collection[T, PT]) Delete(ctx context.Context, id uint) error {
	before, err := c.mgr.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := c.mgr.Delete(ctx, id); err != nil {
		return err
	}
	c.detachAll(ctx, c.extractURLs(before))
	return nil
}

func (c *Collection[T, PT]) Reindex(ctx context.Context) error {
	return c.mgr.Reindex(ctx)
}

func (c *Collection[T, PT]) extractURLs(item *T) []string {
	if c.urls == nil || item == nil {
		return nil
	}
	return c.urls(item)
}

// syncMedia detaches URLs the update dropped and attaches the ones it added.
// Media bookkeeping is best effort; the reclaim job sweeps up anything missed.
func (c *Collection[T, PT]) syncMedia(ctx context.Context, before, after []string) {
	seen := map[string]bool{}
	for _, url := range after {
		seen[url] = true
	}
	for _, url := range before {
		if !seen[url] {
			c.detachAll(ctx, []string{url})
		}
	}
	c.attachAll(ctx, after)
}

func (c *Collection[T, PT]) attachAll(ctx context.Context, urls []string) {
	if c.media == nil {
		return
	}
	for _, url := range urls {
		if err := c.media.Attach(ctx, url); err != nil && c.logg != nil {
			c.logg.Warn(c.logg.WithField(ctx, "url", url), "media.attach_failed")
		}
	}
}

func (c *Collection[T, PT]) detachAll(ctx context.Context, urls []string) {
	if c.media == nil {
		return
	}
	for _, url := range urls {
		if err := c.media.Detach(ctx, url); err != nil && c.logg != nil {
			c.logg.Warn(c.logg.WithField(ctx, "url", url), "media.detach_failed")
		}
	}
}
