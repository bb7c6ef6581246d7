package models

import "time"

// Milestone is one dated entry of the company history timeline.
type Milestone struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Year        int       `gorm:"column:year;not null" json:"year"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	Position    int       `gorm:"column:position;not null" json:"order"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (m Milestone) PrimaryID() uint { return m.ID }

func (m Milestone) Rank() int { return m.Position }

func (m *Milestone) SetRank(position int) { m.Position = position }
