package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	statsservice "slh-ecosystem-backend/internal/features/stats/service"
)

// statsHandler exposes the aggregate stats as JSON. Metric collection is
// individually fault-tolerant, so this always answers 200.
func statsHandler(stats statsservice.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, stats.Collect(c.Request.Context()))
	}
}
