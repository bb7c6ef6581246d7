package models

import "time"

// ContactItem is one row of the contact page (phone, email, address, ...).
type ContactItem struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Type      string    `gorm:"column:type;not null" json:"type"`
	Value     string    `gorm:"column:value;not null" json:"value"`
	Icon      string    `gorm:"column:icon;not null" json:"icon"`
	Position  int       `gorm:"column:position;not null" json:"order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (m ContactItem) PrimaryID() uint { return m.ID }

func (m ContactItem) Rank() int { return m.Position }

func (m *ContactItem) SetRank(position int) { m.Position = position }
