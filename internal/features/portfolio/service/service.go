package service

import (
	"context"
	"fmt"

	"slh-ecosystem-backend/internal/common/logger"
	"slh-ecosystem-backend/internal/features/portfolio/models"
	"slh-ecosystem-backend/internal/features/portfolio/repository"
)

// Every inquiry gets the same generic title; the interesting part is the
// verbatim free text in the description.
const inquiryTitle = "Investor inquiry"

type PortfolioService interface {
	// RecordInquiry persists an inbound private free-text message verbatim.
	RecordInquiry(ctx context.Context, userID uint, text string) (*models.Portfolio, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Portfolio, error)
}

type portfolioService struct {
	repo repository.PortfolioRepository
}

func NewPortfolioService(repo repository.PortfolioRepository) PortfolioService {
	return &portfolioService{repo: repo}
}

func (s *portfolioService) RecordInquiry(ctx context.Context, userID uint, text string) (*models.Portfolio, error) {
	portfolio := &models.Portfolio{
		UserID:      userID,
		Title:       inquiryTitle,
		Description: text,
		Status:      models.StatusDraft,
	}

	if err := s.repo.Create(ctx, portfolio); err != nil {
		logger.Error().Err(err).Uint("user_id", userID).Msg("failed to record inquiry")
		return nil, fmt.Errorf("failed to record inquiry: %w", err)
	}

	logger.Info().Uint("user_id", userID).Uint("portfolio_id", portfolio.ID).Msg("inquiry recorded")
	return portfolio, nil
}

func (s *portfolioService) ListByUser(ctx context.Context, userID uint) ([]*models.Portfolio, error) {
	portfolios, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Uint("user_id", userID).Msg("failed to list portfolios")
		return []*models.Portfolio{}, nil
	}
	return portfolios, nil
}
