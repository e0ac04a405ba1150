package models

import "time"

// Content is an admin-managed text block for the academy section. The table
// is persisted and listable even though the menu currently renders static
// text.
type Content struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `gorm:"not null;type:text" json:"body"`
	Category  string    `json:"category"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	Published bool      `gorm:"default:false" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Content) TableName() string {
	return "contents"
}
