package repository

import (
	"context"
	"errors"

	"slh-ecosystem-backend/internal/features/user/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	UpdateUsername(ctx context.Context, telegramID int64, username string) error
	SetAdmin(ctx context.Context, telegramID int64, passwordHash string) error
	IncrementSessions(ctx context.Context, telegramID int64) error
}
