package content

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mlefevre-dev/vitrine-backend/internal/media"
	"github.com/mlefevre-dev/vitrine-backend/internal/ordering"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
)

type fakeMediaService struct {
	attached []string
	detached []string
}

func (f *fakeMediaService) Store(context.Context, media.StoreInput) (*models.Media, error) {
	return nil, nil
}

func (f *fakeMediaService) Attach(_ context.Context, url string) error {
	f.attached = append(f.attached, url)
	return nil
}

func (f *fakeMediaService) Detach(_ context.Context, url string) error {
	f.detached = append(f.detached, url)
	return nil
}

func (f *fakeMediaService) ReclaimOrphans(context.Context, time.Duration) (int, error) {
	return 0, nil
}

func openContentTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.CarouselImage{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func newCarouselCollection(t *testing.T) (*Collection[models.CarouselImage, *models.CarouselImage], *fakeMediaService) {
	t.Helper()
	mediaSvc := &fakeMediaService{}
	coll := NewCollection[models.CarouselImage, *models.CarouselImage](
		openContentTestDB(t),
		ordering.Config{Name: "carousel", ReindexOnDelete: true},
		mediaSvc,
		func(m *models.CarouselImage) []string {
			if m.ImageURL == "" {
				return nil
			}
			return []string{m.ImageURL}
		},
		nil,
	)
	return coll, mediaSvc
}

func TestCreateAttachesUploadURL(t *testing.T) {
	coll, mediaSvc := newCarouselCollection(t)

	item := &models.CarouselImage{ImageURL: "/uploads/carousel/a.png", Active: true}
	if err := coll.Create(context.Background(), item); err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Position != 1 {
		t.Fatalf("expected appended position 1, got %d", item.Position)
	}
	if len(mediaSvc.attached) != 1 || mediaSvc.attached[0] != "/uploads/carousel/a.png" {
		t.Fatalf("expected attach of upload url, got %v", mediaSvc.attached)
	}
}

func TestUpdateSwapsMediaReferences(t *testing.T) {
	coll, mediaSvc := newCarouselCollection(t)
	ctx := context.Background()

	item := &models.CarouselImage{ImageURL: "/uploads/carousel/old.png", Active: true}
	if err := coll.Create(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}

	item.ImageURL = "/uploads/carousel/new.png"
	if err := coll.Update(ctx, item); err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(mediaSvc.detached) != 1 || mediaSvc.detached[0] != "/uploads/carousel/old.png" {
		t.Fatalf("expected old url detached, got %v", mediaSvc.detached)
	}
	last := mediaSvc.attached[len(mediaSvc.attached)-1]
	if last != "/uploads/carousel/new.png" {
		t.Fatalf("expected new url attached, got %v", mediaSvc.attached)
	}
}

func TestDeleteDetachesAndReindexes(t *testing.T) {
	coll, mediaSvc := newCarouselCollection(t)
	ctx := context.Background()

	var ids []uint
	for _, url := range []string{"/uploads/carousel/1.png", "/uploads/carousel/2.png", "/uploads/carousel/3.png"} {
		item := &models.CarouselImage{ImageURL: url, Active: true}
		if err := coll.Create(ctx, item); err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, item.ID)
	}

	if err := coll.Delete(ctx, ids[0]); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if mediaSvc.detached[len(mediaSvc.detached)-1] != "/uploads/carousel/1.png" {
		t.Fatalf("expected deleted row's url detached, got %v", mediaSvc.detached)
	}

	items, err := coll.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, item := range items {
		if item.Position != i+1 {
			t.Fatalf("expected dense positions after delete, got %+v", items)
		}
	}
}
