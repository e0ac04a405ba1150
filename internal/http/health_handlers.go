package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthHandler is a liveness probe. Downstream unavailability is reported
// in the component flags but never fails the probe hard; the process keeps
// serving.
func healthHandler(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		components := gin.H{}

		if deps.StorageHealth != nil {
			if err := deps.StorageHealth(ctx); err != nil {
				status = "degraded"
				components["database"] = false
			} else {
				components["database"] = true
			}
		}

		if deps.RedisHealth != nil {
			if err := deps.RedisHealth(ctx); err != nil {
				status = "degraded"
				components["redis"] = false
			} else {
				components["redis"] = true
			}
		}

		if deps.TelegramHealth != nil {
			ok := deps.TelegramHealth()
			components["telegram"] = ok
			if !ok {
				status = "degraded"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     status,
			"service":    "slh-ecosystem-backend",
			"timestamp":  time.Now().UTC(),
			"components": components,
		})
	}
}
