package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-for-jwt-middleware"

func init() {
	gin.SetMode(gin.TestMode)
}

func generateTestToken(claims jwt.MapClaims, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(secret))
	return tokenString
}

func setupTestRouter(config *JWTConfig) *gin.Engine {
	router := gin.New()
	router.Use(JWTMiddleware(config))
	router.GET("/protected", func(c *gin.Context) {
		userID, _ := GetUserID(c)
		email, _ := GetEmail(c)
		role, _ := GetRole(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id": userID,
			"email":   email,
			"role":    role,
		})
	})
	router.GET("/skip", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "skipped"})
	})
	return router
}

func TestJWTMiddleware(t *testing.T) {
	config := &JWTConfig{
		Secret:    testSecret,
		SkipPaths: []string{"/skip"},
	}

	t.Run("valid token", func(t *testing.T) {
		router := setupTestRouter(config)
		token := generateTestToken(jwt.MapClaims{
			"user_id": "user-123",
			"email":   "imam@masjid.example",
			"role":    "mosque_admin",
			"exp":     time.Now().Add(time.Hour).Unix(),
		}, testSecret)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		router := setupTestRouter(config)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		router := setupTestRouter(config)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc123")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		router := setupTestRouter(config)
		token := generateTestToken(jwt.MapClaims{
			"user_id": "user-123",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		}, testSecret)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		router := setupTestRouter(config)
		token := generateTestToken(jwt.MapClaims{
			"user_id": "user-123",
			"exp":     time.Now().Add(time.Hour).Unix(),
		}, "other-secret")

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})

	t.Run("skip path", func(t *testing.T) {
		router := setupTestRouter(config)
		req := httptest.NewRequest(http.MethodGet, "/skip", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(ContextKeyRole, "mosque_admin")
		c.Next()
	})
	router.GET("/admin", RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/staff", RequireRole("admin", "mosque_admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("role not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
		}
	})

	t.Run("role allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})
}
