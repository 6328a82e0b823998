package handlers

import (
	"net/http"
	"time"

	"github.com/flortune/app-settings/internal/config"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthCheck godoc
// @Summary Health check
// @Description Reports service and backing store health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	response := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	}

	redisStatus := "down"
	if config.Redis != nil {
		if err := config.Redis.Ping(ctx).Err(); err == nil {
			redisStatus = "up"
		}
		stats := config.Redis.PoolStats()
		response["redis_pool"] = gin.H{
			"total_conns": stats.TotalConns,
			"idle_conns":  stats.IdleConns,
			"hits":        stats.Hits,
			"misses":      stats.Misses,
		}
	}
	response["redis"] = redisStatus

	mongoStatus := "down"
	if config.MongoDB != nil {
		if err := config.MongoDB.Client().Ping(ctx, readpref.Primary()); err == nil {
			mongoStatus = "up"
		}
	}
	response["mongodb"] = mongoStatus

	c.JSON(http.StatusOK, response)
}
