package models

import "time"

// User is one row per remote Telegram identity, created lazily on first
// contact and looked up by telegram_id on every interaction.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// int64 on purpose: Telegram ids no longer fit in 32 bits.
	TelegramID int64 `gorm:"uniqueIndex;not null" json:"telegram_id"`

	Username       string    `json:"username"`
	IsAdmin        bool      `gorm:"default:false" json:"is_admin"`
	PasswordHash   string    `json:"-"`
	ActiveSessions int       `gorm:"default:0" json:"active_sessions"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
