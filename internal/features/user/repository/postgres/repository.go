package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"slh-ecosystem-backend/internal/features/user/models"
	"slh-ecosystem-backend/internal/features/user/repository"
)

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) repository.UserRepository {
	return &postgresRepository{db: db}
}

// Create inserts a new user row. A concurrent first contact can race here;
// gorm.ErrDuplicatedKey is passed through untouched so the service layer can
// recover by re-fetching the winner's row.
func (r *postgresRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("telegram_id = ?", telegramID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by telegram id: %w", err)
	}
	return &user, nil
}

func (r *postgresRepository) UpdateUsername(ctx context.Context, telegramID int64, username string) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("telegram_id = ?", telegramID).
		Update("username", username)
	if result.Error != nil {
		return fmt.Errorf("failed to update username: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) SetAdmin(ctx context.Context, telegramID int64, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("telegram_id = ?", telegramID).
		Updates(map[string]interface{}{
			"is_admin":      true,
			"password_hash": passwordHash,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to set admin flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) IncrementSessions(ctx context.Context, telegramID int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("telegram_id = ?", telegramID).
		Update("active_sessions", gorm.Expr("active_sessions + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment sessions: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}
	return nil
}
