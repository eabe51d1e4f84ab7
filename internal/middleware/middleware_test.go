package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/middleware"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(testSecret))
	r.GET("/whoami", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		token, _ := middleware.BearerTokenFromCtx(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"userID": userID, "token": token})
	})
	return r
}

func serveWithAuth(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := newAuthRouter()
	userID := uuid.NewString()
	token, err := utils.GenerateJWT(userID, testSecret, time.Hour, "test")
	require.NoError(t, err)

	w := serveWithAuth(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID)
	assert.Contains(t, w.Body.String(), token, "the raw token is kept for forwarding")
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	r := newAuthRouter()
	expired, err := utils.GenerateJWT("u-1", testSecret, -time.Minute, "test")
	require.NoError(t, err)
	wrongKey, err := utils.GenerateJWT("u-1", "another-secret", time.Hour, "test")
	require.NoError(t, err)
	noSubject, err := utils.GenerateJWT("", testSecret, time.Hour, "test")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{"missing header", "", "Authorization header required"},
		{"wrong scheme", "Basic abc", "Authorization header format must be Bearer {token}"},
		{"empty token", "Bearer ", "Authorization header format must be Bearer {token}"},
		{"garbage", "Bearer not-a-jwt", "Invalid token"},
		{"expired", "Bearer " + expired, "Token has expired"},
		{"wrong key", "Bearer " + wrongKey, "Invalid token"},
		{"no subject", "Bearer " + noSubject, "Invalid token claims"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveWithAuth(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"`+tt.wantMsg+`"}`, w.Body.String())
		})
	}
}

func TestStructuredLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.GET("/ping", func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	incoming := uuid.NewString()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, incoming, w.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"`+incoming+`"`)
	assert.Contains(t, buf.String(), "inside handler")
	assert.Contains(t, buf.String(), "Request completed")

	req, _ = http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "not a uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	_, err := uuid.Parse(w.Header().Get(middleware.RequestIDHeader))
	assert.NoError(t, err, "invalid incoming ids are replaced")
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter, err := middleware.NewSubmitLimiter("1-M")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/submit", middleware.RateLimit(limiter), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	send := func() *httptest.ResponseRecorder {
		req, _ := http.NewRequest(http.MethodPost, "/submit", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	first := send()
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))

	second := send()
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"error":"Too many requests. Please try again later."}`, second.Body.String())
}

func TestNewSubmitLimiter_BadRate(t *testing.T) {
	_, err := middleware.NewSubmitLimiter("often")
	assert.Error(t, err)
}

func TestGetLoggerFromCtx_Fallback(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, slog.Default(), middleware.GetLoggerFromCtx(req.Context()))
}
