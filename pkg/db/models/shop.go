package models

import (
	"time"

	"github.com/lib/pq"

	"github.com/mlefevre-dev/vitrine-backend/pkg/enums"
)

// Shop is one physical point of sale, local or international.
type Shop struct {
	ID              uint               `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string             `gorm:"column:name;not null" json:"name"`
	Slug            string             `gorm:"column:slug;not null;unique" json:"slug"`
	Address         string             `gorm:"column:address;not null" json:"address"`
	Description     string             `gorm:"column:description;not null" json:"description"`
	LongDescription *string            `gorm:"column:long_description" json:"long_description,omitempty"`
	Images          pq.StringArray     `gorm:"column:images;type:text[]" json:"images"`
	Hours           string             `gorm:"column:hours;not null" json:"hours"`
	Phone           string             `gorm:"column:phone;not null" json:"phone"`
	Email           string             `gorm:"column:email;not null" json:"email"`
	Features        pq.StringArray     `gorm:"column:features;type:text[]" json:"features"`
	Location        enums.ShopLocation `gorm:"column:location;not null" json:"location"`
	Active          bool               `gorm:"column:active;not null;default:true" json:"active"`
	Staff           []StaffMember      `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE" json:"staff,omitempty"`
	CreatedAt       time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
