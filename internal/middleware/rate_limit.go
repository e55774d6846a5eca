package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	pkgredis "github.com/MuneelHaider/NeuroFusion-sub000/pkg/redis"
	"github.com/MuneelHaider/NeuroFusion-sub000/pkg/response"
)

// LoginRateLimitConfig holds credential-endpoint throttling configuration
type LoginRateLimitConfig struct {
	// Attempts allowed per client IP within the window (0 = unlimited)
	Attempts int
	// Window is the fixed counting window
	Window time.Duration
	// KeyPrefix for Redis keys
	KeyPrefix string
}

// DefaultLoginRateLimitConfig returns sensible defaults
func DefaultLoginRateLimitConfig() LoginRateLimitConfig {
	return LoginRateLimitConfig{
		Attempts:  10,
		Window:    time.Minute,
		KeyPrefix: "login_attempts:",
	}
}

// LoginRateLimiter throttles credential endpoints with a Redis fixed-window
// counter keyed by client IP. Fails open: when Redis is unavailable the
// request proceeds.
func LoginRateLimiter(client *pkgredis.Client, config LoginRateLimitConfig) gin.HandlerFunc {
	if client == nil || config.Attempts <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("%s%s", config.KeyPrefix, c.ClientIP())

		count, err := client.Client().Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			client.Client().Expire(ctx, key, config.Window)
		}

		if count > int64(config.Attempts) {
			c.Header("Retry-After", fmt.Sprintf("%.0f", config.Window.Seconds()))
			response.TooManyRequests(c, "Too many attempts. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
