package main

import (
	"context"
	"fmt"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slh-ecosystem-backend/internal/bot"
	redisCache "slh-ecosystem-backend/internal/cache/redis"
	"slh-ecosystem-backend/internal/common/logger"
	"slh-ecosystem-backend/internal/config"
	contentModels "slh-ecosystem-backend/internal/features/content/models"
	contentRepo "slh-ecosystem-backend/internal/features/content/repository/postgres"
	contentService "slh-ecosystem-backend/internal/features/content/service"
	portfolioModels "slh-ecosystem-backend/internal/features/portfolio/models"
	portfolioRepo "slh-ecosystem-backend/internal/features/portfolio/repository/postgres"
	portfolioService "slh-ecosystem-backend/internal/features/portfolio/service"
	statsRepo "slh-ecosystem-backend/internal/features/stats/repository/postgres"
	statsService "slh-ecosystem-backend/internal/features/stats/service"
	transactionModels "slh-ecosystem-backend/internal/features/transaction/models"
	transactionRepo "slh-ecosystem-backend/internal/features/transaction/repository/postgres"
	transactionService "slh-ecosystem-backend/internal/features/transaction/service"
	userModels "slh-ecosystem-backend/internal/features/user/models"
	userRepo "slh-ecosystem-backend/internal/features/user/repository/postgres"
	userService "slh-ecosystem-backend/internal/features/user/service"
	"slh-ecosystem-backend/internal/http"
	"slh-ecosystem-backend/internal/platform/postgres"
	platformRedis "slh-ecosystem-backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger.Init("slh-ecosystem-backend", cfg.Debug)
	logger.Info().Bool("debug", cfg.Debug).Msg("starting SLH ecosystem backend")

	postgresClient, err := postgres.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer postgresClient.Close()

	schema := []interface{}{
		&userModels.User{},
		&portfolioModels.Portfolio{},
		&transactionModels.Transaction{},
		&contentModels.Link{},
		&contentModels.Content{},
	}
	if cfg.Postgres.ResetSchema {
		logger.Warn().Msg("POSTGRES_RESET_SCHEMA set, dropping and recreating schema")
		err = postgresClient.Reset(schema...)
	} else {
		err = postgresClient.Migrate(schema...)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare schema")
	}
	logger.Info().Msg("schema ready")

	var userCache userService.UserCache
	var redisHealth func(ctx context.Context) error
	if cfg.RedisEnabled() {
		redisClient, err := platformRedis.NewClient(cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		userCache = redisCache.NewUserCache(redisClient, cfg.Redis.UserCacheTTL)
		redisHealth = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
		logger.Info().Msg("redis user cache enabled")
	}

	db := postgresClient.DB()
	users := userService.NewUserService(userRepo.NewPostgresRepository(db), userCache)
	portfolios := portfolioService.NewPortfolioService(portfolioRepo.NewPostgresRepository(db))
	transactions := transactionService.NewTransactionService(transactionRepo.NewPostgresRepository(db), cfg.SecretKey)
	stats := statsService.NewStatsService(statsRepo.NewPostgresRepository(db))
	content := contentService.NewContentService(contentRepo.NewPostgresRepository(db))

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := content.SeedLinks(seedCtx); err != nil {
		logger.Warn().Err(err).Msg("failed to seed promotional links")
	}
	cancelSeed()

	botClient, err := bot.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
	}

	dispatcher := bot.NewDispatcher(cfg, botClient, users, portfolios, transactions, stats, content)

	router := http.NewRouter(http.Dependencies{
		Cfg:            cfg,
		Dispatcher:     dispatcher,
		Stats:          stats,
		StorageHealth:  postgresClient.HealthCheck,
		RedisHealth:    redisHealth,
		TelegramHealth: botClient.Healthy,
	})

	server := &nethttp.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	if err := botClient.EnsureWebhook(); err != nil {
		logger.Error().Err(err).Msg("failed to ensure webhook registration")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	botClient.RemoveWebhook()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}
