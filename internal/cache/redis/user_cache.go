package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"slh-ecosystem-backend/internal/features/user/models"
)

// UserCache keeps recently seen users in Redis so the webhook hot path does
// not hit Postgres on every chat turn. Optional: the user service runs
// identically without it.
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewUserCache(client *redis.Client, ttl time.Duration) *UserCache {
	return &UserCache{client: client, ttl: ttl}
}

func (c *UserCache) key(telegramID int64) string {
	return fmt.Sprintf("user:tg:%d", telegramID)
}

func (c *UserCache) Get(ctx context.Context, telegramID int64) (*models.User, error) {
	b, err := c.client.Get(ctx, c.key(telegramID)).Bytes()
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *UserCache) Set(ctx context.Context, u *models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(u.TelegramID), b, c.ttl).Err()
}

func (c *UserCache) Invalidate(ctx context.Context, telegramID int64) error {
	return c.client.Del(ctx, c.key(telegramID)).Err()
}
