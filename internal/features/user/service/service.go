package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"slh-ecosystem-backend/internal/common/logger"
	"slh-ecosystem-backend/internal/features/user/models"
	"slh-ecosystem-backend/internal/features/user/repository"
)

type userService struct {
	repo  repository.UserRepository
	cache UserCache
}

// NewUserService builds the user service. cache may be nil.
func NewUserService(repo repository.UserRepository, cache UserCache) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) GetUser(ctx context.Context, telegramID int64) (*models.User, error) {
	if s.cache != nil {
		if u, err := s.cache.Get(ctx, telegramID); err == nil {
			return u, nil
		}
	}

	user, err := s.repo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, user)
	return user, nil
}

func (s *userService) GetOrCreate(ctx context.Context, telegramID int64, username string) (*models.User, error) {
	user, err := s.repo.GetByTelegramID(ctx, telegramID)
	if err == nil {
		if username != "" && user.Username != username {
			if err := s.repo.UpdateUsername(ctx, telegramID, username); err != nil {
				logger.Warn().Err(err).Int64("telegram_id", telegramID).Msg("failed to refresh username")
			} else {
				user.Username = username
			}
			s.cacheInvalidate(ctx, telegramID)
		}
		s.cacheSet(ctx, user)
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user %d: %w", telegramID, err)
	}

	user = &models.User{TelegramID: telegramID, Username: username}
	err = s.repo.Create(ctx, user)
	if err == nil {
		logger.Info().Int64("telegram_id", telegramID).Msg("user created on first contact")
		s.cacheSet(ctx, user)
		return user, nil
	}

	// Two near-simultaneous first contacts can race on the unique
	// telegram_id; the loser recovers by reading the winner's row.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		logger.Debug().Int64("telegram_id", telegramID).Msg("user create raced, re-fetching")
		existing, getErr := s.repo.GetByTelegramID(ctx, telegramID)
		if getErr != nil {
			return nil, fmt.Errorf("failed to recover raced user create: %w", getErr)
		}
		return existing, nil
	}

	return nil, fmt.Errorf("failed to create user %d: %w", telegramID, err)
}

func (s *userService) PromoteToAdmin(ctx context.Context, telegramID int64, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("failed to hash admin password")
		return
	}

	if err := s.repo.SetAdmin(ctx, telegramID, string(hash)); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.Warn().Int64("telegram_id", telegramID).Msg("cannot promote unknown user to admin")
		} else {
			logger.Error().Err(err).Int64("telegram_id", telegramID).Msg("failed to promote user to admin")
		}
		return
	}

	s.cacheInvalidate(ctx, telegramID)
	logger.Info().Int64("telegram_id", telegramID).Msg("user promoted to admin")
}

func (s *userService) VerifyPassword(ctx context.Context, telegramID int64, password string) bool {
	// Straight to the repository: the cached JSON form drops the hash.
	user, err := s.repo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return false
	}
	if user.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

func (s *userService) RecordLogin(ctx context.Context, telegramID int64) {
	if err := s.repo.IncrementSessions(ctx, telegramID); err != nil {
		logger.Warn().Err(err).Int64("telegram_id", telegramID).Msg("failed to bump session counter")
		return
	}
	s.cacheInvalidate(ctx, telegramID)
}

func (s *userService) cacheSet(ctx context.Context, u *models.User) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, u); err != nil {
		logger.Debug().Err(err).Int64("telegram_id", u.TelegramID).Msg("user cache set failed")
	}
}

func (s *userService) cacheInvalidate(ctx context.Context, telegramID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, telegramID); err != nil {
		logger.Debug().Err(err).Int64("telegram_id", telegramID).Msg("user cache invalidate failed")
	}
}
