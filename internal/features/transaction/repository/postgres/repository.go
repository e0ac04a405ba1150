package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"slh-ecosystem-backend/internal/features/transaction/models"
	"slh-ecosystem-backend/internal/features/transaction/repository"
)

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) repository.TransactionRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, tx *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *postgresRepository) RecentByUser(ctx context.Context, userID uint, limit int) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}
	return txs, nil
}

func (r *postgresRepository) CompletedTotal(ctx context.Context, userID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("user_id = ? AND status = ?", userID, models.StatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum completed transactions: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uint, status models.TransactionStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}
	return nil
}
