package models

import "time"

// Link is a labeled URL. UserID is nil for the global promotional links and
// set for per-user external links.
type Link struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	Label     string    `json:"label"`
	URL       string    `gorm:"not null" json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

func (Link) TableName() string {
	return "links"
}
