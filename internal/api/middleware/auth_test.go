package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rosterdb/rosterdb/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "test-secret"

func newTestAuth(t *testing.T) *AuthMiddleware {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("service-key"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing api key failed: %v", err)
	}
	return NewAuthMiddleware(&config.AuthConfig{
		Secret:     testSecret,
		APIKeyHash: string(hash),
	})
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token failed: %v", err)
	}
	return signed
}

func runAuth(m *AuthMiddleware, header, value string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/players", nil)
	if header != "" {
		c.Request.Header.Set(header, value)
	}
	m.Authenticate()(c)
	return c, w
}

func TestAuthenticate_ValidBearerToken(t *testing.T) {
	m := newTestAuth(t)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "ops@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	c, w := runAuth(m, "Authorization", "Bearer "+token)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want pass-through", w.Code)
	}
	if !IsAuthenticated(c) {
		t.Error("caller should be marked authenticated")
	}
	if GetSubject(c) != "ops@example.com" {
		t.Errorf("subject = %q", GetSubject(c))
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	m := newTestAuth(t)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "ops@example.com",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, w := runAuth(m, "Authorization", "Bearer "+token)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	m := newTestAuth(t)
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "ops@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, w := runAuth(m, "Authorization", "Bearer "+token)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthenticate_MissingCredentials(t *testing.T) {
	m := newTestAuth(t)

	c, w := runAuth(m, "", "")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if IsAuthenticated(c) {
		t.Error("caller must not be marked authenticated")
	}
}

func TestAuthenticate_ValidAPIKey(t *testing.T) {
	m := newTestAuth(t)

	c, w := runAuth(m, "X-API-Key", "service-key")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want pass-through", w.Code)
	}
	if GetSubject(c) != "api-key" {
		t.Errorf("subject = %q", GetSubject(c))
	}
}

func TestAuthenticate_WrongAPIKey(t *testing.T) {
	m := newTestAuth(t)

	_, w := runAuth(m, "X-API-Key", "not-the-key")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
