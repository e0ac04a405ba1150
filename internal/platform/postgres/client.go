package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"slh-ecosystem-backend/internal/config"
)

// Client wraps the gorm handle plus pool management for the relational store.
type Client struct {
	db *gorm.DB
}

func NewClient(cfg *config.Config) (*Client, error) {
	logLevel := gormlogger.Warn
	if cfg.Debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
		// Surfaces unique-constraint races as gorm.ErrDuplicatedKey so the
		// user service can recover by re-fetching the winner's row.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{db: db}, nil
}

func (c *Client) DB() *gorm.DB {
	return c.db
}

func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (c *Client) HealthCheck(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Migrate creates or extends the schema. Idempotent; never drops data.
func (c *Client) Migrate(models ...interface{}) error {
	if err := c.db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Reset drops and recreates the schema. Only reachable when the
// POSTGRES_RESET_SCHEMA flag is set; never in a deployed environment.
func (c *Client) Reset(models ...interface{}) error {
	if err := c.db.Migrator().DropTable(models...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return c.Migrate(models...)
}
