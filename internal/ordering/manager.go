package ordering

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
	pkgerrors "github.com/mlefevre-dev/vitrine-backend/pkg/errors"
)

// Direction is a one-step move request.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// ParseDirection validates a raw move direction.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(raw))) {
	case DirectionUp:
		return DirectionUp, nil
	case DirectionDown:
		return DirectionDown, nil
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, "direction must be \"up\" or \"down\"")
}

// Config tunes one ordered collection.
type Config struct {
	// Name appears in error messages and log fields.
	Name string
	// ReindexOnDelete renumbers the survivors 1..N after a delete so
	// positions stay dense. On for every collection today.
	ReindexOnDelete bool
}

// Manager owns the position column of a single ordered collection. All
// multi-row mutations run inside one transaction; readers observe either the
// old arrangement or the new one, never a half-applied swap.
type Manager[T any, PT interface {
	models.Orderable
	*T
}] struct {
	db  *gorm.DB
	cfg Config
}

// NewManager builds the ordering engine for one collection.
func NewManager[T any, PT interface {
	models.Orderable
	*T
}](db *gorm.DB, cfg Config) *Manager[T, PT] {
	if cfg.Name == "" {
		cfg.Name = "collection"
	}
	return &Manager[T, PT]{db: db, cfg: cfg}
}

// List returns the whole collection ordered by position, with the row ID as
// a stable tie breaker.
func (m *Manager[T, PT]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := m.db.WithContext(ctx).
		Order("position ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("list %s", m.cfg.Name))
	}
	return items, nil
}

// Get loads one row by ID.
func (m *Manager[T, PT]) Get(ctx context.Context, id uint) (*T, error) {
	var item T
	if err := m.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("%s item not found", m.cfg.Name))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("get %s item", m.cfg.Name))
	}
	return &item, nil
}

// Create inserts a row. A zero position means "append at the end"; an
// explicit position must be free and within 1..N+1.
func (m *Manager[T, PT]) Create(ctx context.Context, item PT) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := m.count(tx)
		if err != nil {
			return err
		}

		switch rank := item.Rank(); {
		case rank == 0:
			item.SetRank(int(count) + 1)
		case rank < 0:
			return pkgerrors.New(pkgerrors.CodeValidation, "order must be at least 1")
		case rank > int(count)+1:
			return pkgerrors.New(pkgerrors.CodeValidation, "order is beyond the end of the collection").
				WithDetails(map[string]any{"max": count + 1})
		default:
			if err := m.ensureFree(tx, rank, 0); err != nil {
				return err
			}
		}

		if err := tx.Create(item).Error; err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("create %s item", m.cfg.Name))
		}
		return nil
	})
}

// Update persists a fully populated row. Position changes are validated the
// same way Create validates them.
func (m *Manager[T, PT]) Update(ctx context.Context, item PT) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current T
		if err := tx.First(&current, item.PrimaryID()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("%s item not found", m.cfg.Name))
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("load %s item", m.cfg.Name))
		}

		// Rank 0 on a full replace means "keep the current order".
		if item.Rank() == 0 {
			item.SetRank(PT(&current).Rank())
		}

		if rank := item.Rank(); rank != PT(&current).Rank() {
			count, err := m.count(tx)
			if err != nil {
				return err
			}
			if rank < 1 {
				return pkgerrors.New(pkgerrors.CodeValidation, "order must be at least 1")
			}
			if rank > int(count) {
				return pkgerrors.New(pkgerrors.CodeValidation, "order is beyond the end of the collection").
					WithDetails(map[string]any{"max": count})
			}
			if err := m.ensureFree(tx, rank, item.PrimaryID()); err != nil {
				return err
			}
		}

		// Rows are rebound from request payloads, so created_at arrives zero.
		if err := tx.Omit("created_at").Save(item).Error; err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("update %s item", m.cfg.Name))
		}
		return nil
	})
}

// Patch applies a partial column update. Callers own the allow-list; the
// engine only guards the position column.
func (m *Manager[T, PT]) Patch(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current T
		if err := tx.First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("%s item not found", m.cfg.Name))
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("load %s item", m.cfg.Name))
		}

		if raw, ok := fields["position"]; ok {
			rank, ok := raw.(int)
			if !ok {
				return pkgerrors.New(pkgerrors.CodeValidation, "order must be an integer")
			}
			if rank != PT(&current).Rank() {
				count, err := m.count(tx)
				if err != nil {
					return err
				}
				if rank < 1 || rank > int(count) {
					return pkgerrors.New(pkgerrors.CodeValidation, "order is out of range").
						WithDetails(map[string]any{"max": count})
				}
				if err := m.ensureFree(tx, rank, id); err != nil {
					return err
				}
			}
		}

		if err := tx.Model(new(T)).Where("id = ?", id).Updates(fields).Error; err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("patch %s item", m.cfg.Name))
		}
		return nil
	})
}

// Move swaps the row with its neighbor in the requested direction. Moving
// the first row up or the last row down is a no-op that touches nothing.
func (m *Manager[T, PT]) Move(ctx context.Context, id uint, dir Direction) ([]T, error) {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item T
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("%s item not found", m.cfg.Name))
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("load %s item", m.cfg.Name))
		}

		neighbor, err := m.neighbor(tx, PT(&item), dir)
		if err != nil {
			return err
		}
		if neighbor == nil {
			// already at the boundary
			return nil
		}

		itemRank := PT(&item).Rank()
		neighborRank := PT(neighbor).Rank()

		if err := tx.Model(new(T)).Where("id = ?", PT(neighbor).PrimaryID()).
			Update("position", itemRank).Error; err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("swap %s positions", m.cfg.Name))
		}
		if err := tx.Model(new(T)).Where("id = ?", id).
			Update("position", neighborRank).Error; err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("swap %s positions", m.cfg.Name))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m.List(ctx)
}

// Delete removes a row and, when configured, renumbers the survivors so the
// sequence stays 1..N without gaps.
func (m *Manager[T, PT]) Delete(ctx context.Context, id uint) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(new(T), id)
		if result.Error != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, fmt.Sprintf("delete %s item", m.cfg.Name))
		}
		if result.RowsAffected == 0 {
			return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("%s item not found", m.cfg.Name))
		}
		if m.cfg.ReindexOnDelete {
			return m.reindexTx(tx)
		}
		return nil
	})
}

// Reindex renumbers the whole collection 1..N preserving the current order.
func (m *Manager[T, PT]) Reindex(ctx context.Context) error {
	return m.db.WithContext(ctx).Transaction(m.reindexTx)
}

func (m *Manager[T, PT]) reindexTx(tx *gorm.DB) error {
	var items []T
	if err := tx.Order("position ASC, id ASC").Find(&items).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("reindex %s", m.cfg.Name))
	}
	for i := range items {
		want := i + 1
		row := PT(&items[i])
		if row.Rank() == want {
			continue
		}
		if err := tx.Model(new(T)).Where("id = ?", row.PrimaryID()).
			Update("position", want).Error; err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("reindex %s", m.cfg.Name))
		}
	}
	return nil
}

func (m *Manager[T, PT]) neighbor(tx *gorm.DB, item PT, dir Direction) (*T, error) {
	var neighbor T
	query := tx.Model(new(T))
	switch dir {
	case DirectionUp:
		query = query.Where("position < ?", item.Rank()).Order("position DESC, id DESC")
	case DirectionDown:
		query = query.Where("position > ?", item.Rank()).Order("position ASC, id ASC")
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "direction must be \"up\" or \"down\"")
	}
	if err := query.First(&neighbor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("find %s neighbor", m.cfg.Name))
	}
	return &neighbor, nil
}

func (m *Manager[T, PT]) count(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(new(T)).Count(&count).Error; err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("count %s", m.cfg.Name))
	}
	return count, nil
}

func (m *Manager[T, PT]) ensureFree(tx *gorm.DB, rank int, excludeID uint) error {
	var count int64
	query := tx.Model(new(T)).Where("position = ?", rank)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("check %s order", m.cfg.Name))
	}
	if count > 0 {
		return pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("order %d is already taken", rank)).
			WithDetails(map[string]any{"order": rank})
	}
	return nil
}
