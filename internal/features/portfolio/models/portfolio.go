package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	usermodels "slh-ecosystem-backend/internal/features/user/models"
)

type PortfolioStatus string

const (
	StatusDraft     PortfolioStatus = "draft"
	StatusPublished PortfolioStatus = "published"
	StatusArchived  PortfolioStatus = "archived"
)

// LabeledLink is one external reference attached to a portfolio.
type LabeledLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// LinkList stores labeled links as a JSON text column.
type LinkList []LabeledLink

func (l LinkList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *LinkList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported link list column type %T", value)
	}
}

// Portfolio is a free-text investor inquiry owned by a user and
// cascade-deleted with it.
type Portfolio struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	User usermodels.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Title       string          `json:"title"`
	Description string          `json:"description"`
	Links       LinkList        `gorm:"type:text" json:"links,omitempty"`
	Status      PortfolioStatus `gorm:"type:varchar(16);default:'draft'" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}
