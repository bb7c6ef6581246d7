package models

import "time"

// CarouselImage is one slide of the landing page carousel.
type CarouselImage struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     *string   `gorm:"column:title" json:"title,omitempty"`
	Subtitle  *string   `gorm:"column:subtitle" json:"subtitle,omitempty"`
	ImageURL  string    `gorm:"column:image_url;not null" json:"image_url"`
	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	Position  int       `gorm:"column:position;not null" json:"order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (m CarouselImage) PrimaryID() uint { return m.ID }

func (m CarouselImage) Rank() int { return m.Position }

func (m *CarouselImage) SetRank(position int) { m.Position = position }
