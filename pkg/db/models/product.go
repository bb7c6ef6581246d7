package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one catalog entry. Prices are EUR amounts stored as exact
// decimals, never floats.
type Product struct {
	ID          uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"column:name;not null" json:"name"`
	Description string          `gorm:"column:description;not null" json:"description"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	Category    string          `gorm:"column:category;not null;index" json:"category"`
	ImageURL    *string         `gorm:"column:image_url" json:"image_url,omitempty"`
	Active      bool            `gorm:"column:active;not null;default:true" json:"active"`
	Featured    bool            `gorm:"column:featured;not null;default:false" json:"featured"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
