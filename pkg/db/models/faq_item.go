package models

import "time"

// FaqItem is one question/answer pair, grouped by category.
type FaqItem struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Question  string    `gorm:"column:question;not null" json:"question"`
	Answer    string    `gorm:"column:answer;not null" json:"answer"`
	Category  string    `gorm:"column:category;not null" json:"category"`
	Position  int       `gorm:"column:position;not null" json:"order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (m FaqItem) PrimaryID() uint { return m.ID }

func (m FaqItem) Rank() int { return m.Position }

func (m *FaqItem) SetRank(position int) { m.Position = position }
