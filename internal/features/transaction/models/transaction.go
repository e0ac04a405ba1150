package models

import (
	"time"

	usermodels "slh-ecosystem-backend/internal/features/user/models"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
	StatusRefunded  TransactionStatus = "refunded"
)

type TransactionType string

const (
	TypeInvestment   TransactionType = "investment"
	TypePayment      TransactionType = "payment"
	TypeFee          TransactionType = "fee"
	TypeSubscription TransactionType = "subscription"
)

// Transaction records a claimed payment or investment. The contract hash is
// a display fingerprint only; nothing ever verifies it.
type Transaction struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	User usermodels.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Amount       float64           `gorm:"not null" json:"amount"`
	Currency     string            `gorm:"type:varchar(8);default:'ILS'" json:"currency"`
	Status       TransactionStatus `gorm:"type:varchar(16);default:'pending';index" json:"status"`
	Type         TransactionType   `gorm:"type:varchar(16)" json:"type"`
	Description  string            `json:"description"`
	ContractHash string            `gorm:"type:varchar(64)" json:"contract_hash"`
	CreatedAt    time.Time         `json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
