package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/mlefevre-dev/vitrine-backend/pkg/enums"
)

// Media captures metadata for every uploaded file. The row exists so that
// orphaned uploads (files whose URL never reached an entity row) stay
// discoverable and reclaimable.
type Media struct {
	ID        uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Kind      enums.MediaKind   `gorm:"column:kind;not null" json:"kind"`
	Status    enums.MediaStatus `gorm:"column:status;not null;default:'pending';index" json:"status"`
	FileName  string            `gorm:"column:file_name;not null" json:"file_name"`
	MimeType  string            `gorm:"column:mime_type;not null" json:"mime_type"`
	SizeBytes int64             `gorm:"column:size_bytes;not null" json:"size_bytes"`
	URL       string            `gorm:"column:url;not null;uniqueIndex" json:"url"`
	DiskPath  string            `gorm:"column:disk_path;not null" json:"-"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
