package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"slh-ecosystem-backend/internal/features/portfolio/models"
	"slh-ecosystem-backend/internal/features/portfolio/repository"
)

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) repository.PortfolioRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, portfolio *models.Portfolio) error {
	if err := r.db.WithContext(ctx).Create(portfolio).Error; err != nil {
		return fmt.Errorf("failed to create portfolio: %w", err)
	}
	return nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Portfolio, error) {
	var portfolios []*models.Portfolio
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&portfolios).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	return portfolios, nil
}
