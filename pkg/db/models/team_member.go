package models

import "time"

// TeamMember is one person on the company page. JobTitle serializes as
// "position" for the admin UI; the ordering rank serializes as "order".
type TeamMember struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	JobTitle  string    `gorm:"column:job_title;not null" json:"position"`
	Bio       *string   `gorm:"column:bio" json:"bio,omitempty"`
	ImageURL  *string   `gorm:"column:image_url" json:"image_url,omitempty"`
	Position  int       `gorm:"column:position;not null" json:"order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (m TeamMember) PrimaryID() uint { return m.ID }

func (m TeamMember) Rank() int { return m.Position }

func (m *TeamMember) SetRank(position int) { m.Position = position }
