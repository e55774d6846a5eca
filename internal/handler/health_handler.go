package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuneelHaider/NeuroFusion-sub000/pkg/database"
	pkgredis "github.com/MuneelHaider/NeuroFusion-sub000/pkg/redis"
)

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	db    *database.PostgresDB
	redis *pkgredis.Client
}

// NewHealthHandler creates a new HealthHandler. The redis client may be nil
// when the rate limiter is disabled.
func NewHealthHandler(db *database.PostgresDB, redis *pkgredis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

// Health returns basic health status
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "neurofusion-api",
	})
}

// Ready checks if the service is ready to accept traffic
// GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "not_ready",
			"service":  "neurofusion-api",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}

	redisStatus := "disabled"
	if h.redis != nil {
		redisStatus = "connected"
		if err := h.redis.Ping(c.Request.Context()); err != nil {
			// Rate limiting fails open, so a down Redis degrades but
			// does not block readiness.
			redisStatus = "disconnected"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "neurofusion-api",
		"database": "connected",
		"redis":    redisStatus,
	})
}
