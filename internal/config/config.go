package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`

		// Public base URL the Telegram webhook is registered against,
		// e.g. https://slh.example.app
		WebhookBaseURL string `env:"WEBHOOK_BASE_URL,required"`

		// Inbound webhook bodies above this size are rejected with 413.
		MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	}

	Postgres struct {
		Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
		Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
		User     string `env:"POSTGRES_USER" envDefault:"postgres"`
		Password string `env:"POSTGRES_PASSWORD" envDefault:""`
		Database string `env:"POSTGRES_DB" envDefault:"slh"`
		SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

		MaxOpenConns    int           `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"20"`
		MaxIdleConns    int           `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"5"`
		ConnMaxLifetime time.Duration `env:"POSTGRES_CONN_MAX_LIFETIME" envDefault:"30m"`

		// Destroys and recreates the schema on startup. Development only.
		ResetSchema bool `env:"POSTGRES_RESET_SCHEMA" envDefault:"false"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:""`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`

		UserCacheTTL time.Duration `env:"REDIS_USER_CACHE_TTL" envDefault:"5m"`
	}

	Telegram struct {
		BotToken         string `env:"BOT_TOKEN,required"`
		AdminUserID      int64  `env:"ADMIN_USER_ID,required"`
		PaymentGroupID   int64  `env:"PAYMENT_GROUP_ID" envDefault:"0"`
		CommunityGroupID int64  `env:"COMMUNITY_GROUP_ID" envDefault:"0"`

		// Password the configured admin identity is bootstrapped with on
		// first contact. Rotated through /login afterwards.
		AdminBootstrapPassword string `env:"ADMIN_BOOTSTRAP_PASSWORD" envDefault:"change-me"`

		RequestTimeout time.Duration `env:"TELEGRAM_REQUEST_TIMEOUT" envDefault:"10s"`
	}

	// Secret mixed into contract-hash fingerprints.
	SecretKey string `env:"SECRET_KEY" envDefault:"your-secret-key-change-in-production"`

	SiteURL string `env:"SITE_URL" envDefault:"https://slh-ecosystem.github.io/"`

	RateLimit struct {
		Enabled bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
		Events  int           `env:"RATE_LIMIT_EVENTS" envDefault:"20"`
		Window  time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"10s"`
	}
}

func Load() (*Config, error) {
	// Ignore a missing .env file; in production the variables are set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

// RedisEnabled reports whether the optional Redis cache is configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Postgres.Host, c.Postgres.Port, c.Postgres.User,
		c.Postgres.Password, c.Postgres.Database, c.Postgres.SSLMode)
}
