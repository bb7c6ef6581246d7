package models

import "time"

// CompanyValue is one entry of the "nos valeurs" block.
type CompanyValue struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	Icon        *string   `gorm:"column:icon" json:"icon,omitempty"`
	Position    int       `gorm:"column:position;not null" json:"order"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (m CompanyValue) PrimaryID() uint { return m.ID }

func (m CompanyValue) Rank() int { return m.Position }

func (m *CompanyValue) SetRank(position int) { m.Position = position }
