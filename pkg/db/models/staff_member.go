package models

import "time"

// StaffMember belongs to exactly one shop and is removed with it.
type StaffMember struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ShopID    uint      `gorm:"column:shop_id;not null;index" json:"shop_id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Role      string    `gorm:"column:role;not null" json:"role"`
	PhotoURL  *string   `gorm:"column:photo_url" json:"photo_url,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
