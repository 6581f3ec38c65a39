package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextRequestID = "request_id"
	ContextIPAddress = "ip_address"
	ContextUserAgent = "user_agent"
)

// AuditMiddleware tags every request with an id and client metadata, and
// writes an operator-side access log line on completion.
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		// Extract IP address - check X-Forwarded-For first (for proxies)
		ipAddress := c.GetHeader("X-Forwarded-For")
		if ipAddress == "" {
			ipAddress = c.GetHeader("X-Real-IP")
		}
		if ipAddress == "" {
			ipAddress = c.ClientIP()
		}
		// Handle comma-separated IPs (take the first one)
		if idx := strings.Index(ipAddress, ","); idx != -1 {
			ipAddress = strings.TrimSpace(ipAddress[:idx])
		}

		c.Set(ContextRequestID, requestID)
		c.Set(ContextIPAddress, ipAddress)
		c.Set(ContextUserAgent, c.GetHeader("User-Agent"))
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		log.Printf("request_id=%s method=%s path=%s status=%d ip=%s duration=%s",
			requestID, c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), ipAddress, time.Since(start))
	}
}

// GetRequestID retrieves the request id from context.
func GetRequestID(c *gin.Context) string {
	return contextString(c, ContextRequestID)
}

// GetIPAddress retrieves the client IP address from context.
func GetIPAddress(c *gin.Context) string {
	return contextString(c, ContextIPAddress)
}

// GetUserAgent retrieves the client user agent from context.
func GetUserAgent(c *gin.Context) string {
	return contextString(c, ContextUserAgent)
}

func contextString(c *gin.Context, key string) string {
	val, exists := c.Get(key)
	if !exists {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
