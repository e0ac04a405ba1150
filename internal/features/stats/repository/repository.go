package repository

import (
	"context"

	"slh-ecosystem-backend/internal/features/stats/models"
)

type StatsRepository interface {
	// Collect gathers the aggregate metrics. Each metric is individually
	// fault-tolerant: a failed query yields a zero value, never an error.
	Collect(ctx context.Context) *models.Stats
}
