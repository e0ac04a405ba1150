package service

import (
	"context"

	"slh-ecosystem-backend/internal/features/stats/models"
	"slh-ecosystem-backend/internal/features/stats/repository"
)

type StatsService interface {
	Collect(ctx context.Context) *models.Stats
}

type statsService struct {
	repo repository.StatsRepository
}

func NewStatsService(repo repository.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) Collect(ctx context.Context) *models.Stats {
	return s.repo.Collect(ctx)
}
