package repository

import (
	"context"
	"errors"

	"slh-ecosystem-backend/internal/features/transaction/models"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	RecentByUser(ctx context.Context, userID uint, limit int) ([]*models.Transaction, error)
	CompletedTotal(ctx context.Context, userID uint) (float64, error)

	// UpdateStatus is the extension point for an admin approval workflow;
	// no bot flow drives it yet.
	UpdateStatus(ctx context.Context, id uint, status models.TransactionStatus) error
}
