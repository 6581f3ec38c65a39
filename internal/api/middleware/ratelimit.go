package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit bounds concurrent load on expensive endpoints. Throttled callers
// wait rather than fail, up to the queuing timeout.
func RateLimit(rps float64, burst int, queueTimeout time.Duration) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), queueTimeout)
		defer cancel()

		if err := limiter.Wait(ctx); err != nil {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":   "Error",
				"message":  "too many requests",
				"response": nil,
			})
			return
		}

		c.Next()
	}
}
