package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/feedbackhq/feedbackhq/internal/config"
	"github.com/feedbackhq/feedbackhq/internal/security"
	"github.com/gin-gonic/gin"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", TokenTTL: time.Hour}
}

func runAuthMiddlewareRequest(t *testing.T, method, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AdminAuthMiddleware(testJWTConfig()))
	handle := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"adminID": c.GetUint64(ContextAdminIDKey)})
	}
	router.GET("/protected", handle)
	router.OPTIONS("/protected", handle)

	responseRecorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(responseRecorder, req)
	return responseRecorder
}

func TestAdminAuthMiddlewareMissingHeader(t *testing.T) {
	t.Parallel()

	rec := runAuthMiddlewareRequest(t, http.MethodGet, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestAdminAuthMiddlewareNonBearerScheme(t *testing.T) {
	t.Parallel()

	rec := runAuthMiddlewareRequest(t, http.MethodGet, "Basic abc123")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestAdminAuthMiddlewareInvalidToken(t *testing.T) {
	t.Parallel()

	rec := runAuthMiddlewareRequest(t, http.MethodGet, "Bearer not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestAdminAuthMiddlewareExpiredToken(t *testing.T) {
	t.Parallel()

	token, errGen := security.GenerateAdminToken("test-secret", 1, "a@example.com", -time.Minute)
	if errGen != nil {
		t.Fatalf("generate token: %v", errGen)
	}
	rec := runAuthMiddlewareRequest(t, http.MethodGet, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestAdminAuthMiddlewareValidToken(t *testing.T) {
	t.Parallel()

	token, errGen := security.GenerateAdminToken("test-secret", 7, "a@example.com", time.Hour)
	if errGen != nil {
		t.Fatalf("generate token: %v", errGen)
	}
	rec := runAuthMiddlewareRequest(t, http.MethodGet, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestAdminAuthMiddlewarePreflightBypass(t *testing.T) {
	t.Parallel()

	rec := runAuthMiddlewareRequest(t, http.MethodOptions, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected preflight to bypass auth, got %d", rec.Code)
	}
}
