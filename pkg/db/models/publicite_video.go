package models

import "time"

// PubliciteVideo is one promotional video managed from the admin panel.
// Videos are an ordered collection so the display sequence is operator
// controlled, same engine as the image collections.
type PubliciteVideo struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"column:title;not null" json:"title"`
	VideoURL     string    `gorm:"column:video_url;not null" json:"video_url"`
	ThumbnailURL *string   `gorm:"column:thumbnail_url" json:"thumbnail_url,omitempty"`
	Active       bool      `gorm:"column:active;not null;default:true" json:"active"`
	Position     int       `gorm:"column:position;not null" json:"order"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (m PubliciteVideo) PrimaryID() uint { return m.ID }

func (m PubliciteVideo) Rank() int { return m.Position }

func (m *PubliciteVideo) SetRank(position int) { m.Position = position }
