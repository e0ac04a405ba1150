package service

import (
	"context"

	"slh-ecosystem-backend/internal/features/user/models"
)

type UserService interface {
	// GetUser is a pure lookup; returns repository.ErrUserNotFound when absent.
	GetUser(ctx context.Context, telegramID int64) (*models.User, error)

	// GetOrCreate returns the row for the Telegram identity, creating it on
	// first contact. Safe under concurrent first contacts: the loser of the
	// unique-constraint race re-fetches and returns the winner's row.
	GetOrCreate(ctx context.Context, telegramID int64, username string) (*models.User, error)

	// PromoteToAdmin sets the admin flag and stores a salted password hash.
	// Fails silently (logged, no effect) when the user does not exist;
	// callers create the user first.
	PromoteToAdmin(ctx context.Context, telegramID int64, password string)

	// VerifyPassword checks a login attempt against the stored hash.
	VerifyPassword(ctx context.Context, telegramID int64, password string) bool

	// RecordLogin bumps the session counter after a successful login.
	RecordLogin(ctx context.Context, telegramID int64)
}

// UserCache is the optional read-through cache in front of the repository.
type UserCache interface {
	Get(ctx context.Context, telegramID int64) (*models.User, error)
	Set(ctx context.Context, u *models.User) error
	Invalidate(ctx context.Context, telegramID int64) error
}
