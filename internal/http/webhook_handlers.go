package http

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"slh-ecosystem-backend/internal/common/logger"
	"slh-ecosystem-backend/internal/common/middleware"
	"slh-ecosystem-backend/internal/config"
)

// webhookHandler is the Telegram ingress. The bot token in the path is the
// access control (an acknowledged weakness inherited from the platform's
// webhook model); bodies are size-capped and parse failures answer 4xx so
// the platform's retry logic sees a clear verdict.
func webhookHandler(cfg *config.Config, dispatcher UpdateHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")
		if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Telegram.BotToken)) != 1 {
			c.Status(http.StatusNotFound)
			return
		}

		body := http.MaxBytesReader(c.Writer, c.Request.Body, cfg.Server.MaxBodyBytes)
		data, err := io.ReadAll(body)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				logger.Warn().
					Str("request_id", c.GetString(middleware.RequestIDKey)).
					Int64("limit", cfg.Server.MaxBodyBytes).
					Msg("webhook payload too large")
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
			return
		}

		var update tgbotapi.Update
		if err := json.Unmarshal(data, &update); err != nil {
			logger.Warn().
				Err(err).
				Str("request_id", c.GetString(middleware.RequestIDKey)).
				Msg("failed to parse webhook payload")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update payload"})
			return
		}

		dispatcher.HandleUpdate(c.Request.Context(), &update)
		c.Status(http.StatusOK)
	}
}
