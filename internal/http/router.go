package http

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"slh-ecosystem-backend/internal/common/middleware"
	"slh-ecosystem-backend/internal/config"
	statsservice "slh-ecosystem-backend/internal/features/stats/service"
)

// UpdateHandler is what the gateway needs from the bot dispatcher.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update *tgbotapi.Update)
}

// Dependencies carries everything the router wires together. Health check
// funcs may be nil when the corresponding backend is not configured.
type Dependencies struct {
	Cfg        *config.Config
	Dispatcher UpdateHandler
	Stats      statsservice.StatsService

	StorageHealth  func(ctx context.Context) error
	RedisHealth    func(ctx context.Context) error
	TelegramHealth func() bool
}

func NewRouter(deps Dependencies) *gin.Engine {
	if !deps.Cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{deps.Cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	router.POST("/webhook/:token", webhookHandler(deps.Cfg, deps.Dispatcher))
	router.GET("/health", healthHandler(deps))
	router.GET("/api/stats", statsHandler(deps.Stats))
	router.GET("/", func(c *gin.Context) {
		c.Redirect(302, deps.Cfg.SiteURL)
	})

	return router
}
