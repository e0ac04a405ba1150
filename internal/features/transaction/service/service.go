package service

import (
	"context"
	"fmt"

	apperrors "slh-ecosystem-backend/internal/common/errors"
	"slh-ecosystem-backend/internal/common/logger"
	"slh-ecosystem-backend/internal/features/transaction/models"
	"slh-ecosystem-backend/internal/features/transaction/repository"
)

// Page size for the investment panel listing.
const RecentPageSize = 10

type TransactionService interface {
	// Record validates and persists a claimed payment or investment.
	// Amount must be strictly positive; status defaults to pending.
	Record(ctx context.Context, userID uint, amount float64, txType models.TransactionType, description string) (*models.Transaction, error)

	// RecentByUser returns the newest transactions first, bounded to one page.
	RecentByUser(ctx context.Context, userID uint) ([]*models.Transaction, error)

	// CompletedTotal sums the user's completed transaction amounts.
	CompletedTotal(ctx context.Context, userID uint) float64
}

type transactionService struct {
	repo   repository.TransactionRepository
	secret string
}

func NewTransactionService(repo repository.TransactionRepository, secret string) TransactionService {
	return &transactionService{repo: repo, secret: secret}
}

func (s *transactionService) Record(ctx context.Context, userID uint, amount float64, txType models.TransactionType, description string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.NewValidationError("amount", "must be strictly positive")
	}

	tx := &models.Transaction{
		UserID:       userID,
		Amount:       amount,
		Status:       models.StatusPending,
		Type:         txType,
		Description:  description,
		ContractHash: contractHash(userID, amount, string(txType), description, s.secret),
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		logger.Error().Err(err).Uint("user_id", userID).Msg("failed to record transaction")
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	logger.Info().
		Uint("user_id", userID).
		Uint("transaction_id", tx.ID).
		Float64("amount", amount).
		Str("type", string(txType)).
		Msg("transaction recorded")

	return tx, nil
}

func (s *transactionService) RecentByUser(ctx context.Context, userID uint) ([]*models.Transaction, error) {
	txs, err := s.repo.RecentByUser(ctx, userID, RecentPageSize)
	if err != nil {
		logger.Error().Err(err).Uint("user_id", userID).Msg("failed to fetch recent transactions")
		return []*models.Transaction{}, nil
	}
	return txs, nil
}

func (s *transactionService) CompletedTotal(ctx context.Context, userID uint) float64 {
	total, err := s.repo.CompletedTotal(ctx, userID)
	if err != nil {
		logger.Warn().Err(err).Uint("user_id", userID).Msg("failed to sum completed transactions")
		return 0
	}
	return total
}
