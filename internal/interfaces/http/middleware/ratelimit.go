package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vendora/internal/infrastructure/ratelimit"
	"vendora/internal/shared/utils"
)

// RateLimit enforces the shared limiter per client IP. When the limiter
// backend is unreachable the request passes, so an outage never blocks
// all traffic.
func RateLimit(limiter ratelimit.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
