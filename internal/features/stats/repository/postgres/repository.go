package postgres

import (
	"context"

	"gorm.io/gorm"

	"slh-ecosystem-backend/internal/common/logger"
	"slh-ecosystem-backend/internal/features/stats/models"
	"slh-ecosystem-backend/internal/features/stats/repository"
	txmodels "slh-ecosystem-backend/internal/features/transaction/models"
	usermodels "slh-ecosystem-backend/internal/features/user/models"
)

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) repository.StatsRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Collect(ctx context.Context) *models.Stats {
	stats := &models.Stats{}

	stats.TotalUsers = r.count(ctx, "total_users",
		r.db.Model(&usermodels.User{}))
	stats.ActiveUsers = r.count(ctx, "active_users",
		r.db.Model(&usermodels.User{}).Where("active_sessions > 0"))
	stats.TotalTransactions = r.count(ctx, "total_transactions",
		r.db.Model(&txmodels.Transaction{}))
	stats.PendingTransactions = r.count(ctx, "pending_transactions",
		r.db.Model(&txmodels.Transaction{}).Where("status = ?", txmodels.StatusPending))
	stats.CompletedTransactions = r.count(ctx, "completed_transactions",
		r.db.Model(&txmodels.Transaction{}).Where("status = ?", txmodels.StatusCompleted))

	stats.TotalRevenue = r.sum(ctx, "total_revenue",
		r.db.Model(&txmodels.Transaction{}).
			Where("status = ?", txmodels.StatusCompleted).
			Select("COALESCE(SUM(amount), 0)"))
	stats.AverageTransaction = r.sum(ctx, "average_transaction",
		r.db.Model(&txmodels.Transaction{}).
			Select("COALESCE(AVG(amount), 0)"))

	return stats
}

func (r *postgresRepository) count(ctx context.Context, metric string, query *gorm.DB) int64 {
	var n int64
	if err := query.WithContext(ctx).Count(&n).Error; err != nil {
		logger.Warn().Err(err).Str("metric", metric).Msg("stats metric failed, defaulting to zero")
		return 0
	}
	return n
}

func (r *postgresRepository) sum(ctx context.Context, metric string, query *gorm.DB) float64 {
	var v float64
	if err := query.WithContext(ctx).Scan(&v).Error; err != nil {
		logger.Warn().Err(err).Str("metric", metric).Msg("stats metric failed, defaulting to zero")
		return 0
	}
	return v
}
