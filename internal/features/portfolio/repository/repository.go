package repository

import (
	"context"

	"slh-ecosystem-backend/internal/features/portfolio/models"
)

type PortfolioRepository interface {
	Create(ctx context.Context, portfolio *models.Portfolio) error
	ListByUser(ctx context.Context, userID uint) ([]*models.Portfolio, error)
}
