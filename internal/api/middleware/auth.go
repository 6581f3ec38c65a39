package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rosterdb/rosterdb/config"
)

const (
	ContextAuthenticated = "authenticated"
	ContextSubject       = "subject"
)

// AuthMiddleware verifies credentials issued elsewhere: HS256 bearer tokens
// signed by the external identity provider, or the service API key. It holds
// no identity or session state of its own.
type AuthMiddleware struct {
	secret     []byte
	apiKeyHash []byte
}

func NewAuthMiddleware(cfg *config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{
		secret:     []byte(cfg.Secret),
		apiKeyHash: []byte(cfg.APIKeyHash),
	}
}

// Authenticate rejects requests that carry neither a valid bearer token nor
// the service API key.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader("X-API-Key"); key != "" && len(m.apiKeyHash) > 0 {
			if err := bcrypt.CompareHashAndPassword(m.apiKeyHash, []byte(key)); err == nil {
				c.Set(ContextAuthenticated, true)
				c.Set(ContextSubject, "api-key")
				c.Next()
				return
			}
			abortUnauthorized(c, "invalid API key")
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "authentication required")
			return
		}

		subject, err := m.verifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(ContextAuthenticated, true)
		c.Set(ContextSubject, subject)
		c.Next()
	}
}

func (m *AuthMiddleware) verifyToken(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}

	return token.Claims.GetSubject()
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":   "Error",
		"message":  message,
		"response": nil,
	})
}

// IsAuthenticated reports the caller-identity fact the auth provider
// established for this request.
func IsAuthenticated(c *gin.Context) bool {
	val, exists := c.Get(ContextAuthenticated)
	if !exists {
		return false
	}
	authed, ok := val.(bool)
	return ok && authed
}

// GetSubject retrieves the verified caller subject from context.
func GetSubject(c *gin.Context) string {
	val, exists := c.Get(ContextSubject)
	if !exists {
		return ""
	}
	if subject, ok := val.(string); ok {
		return subject
	}
	return ""
}
