package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotienthq/quotient-api/internal/logger"
	"github.com/quotienthq/quotient-api/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test")
}

func TestCorrelationIDMiddleware_GeneratesID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.CorrelationIDMiddleware())
	router.GET("/test", func(c *gin.Context) {
		assert.NotEmpty(t, middleware.GetCorrelationID(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	header := w.Header().Get(middleware.CorrelationIDHeader)
	require.NotEmpty(t, header)
	_, err := uuid.Parse(header)
	assert.NoError(t, err)
}

func TestCorrelationIDMiddleware_PreservesClientID(t *testing.T) {
	router := gin.New()
	router.Use(middleware.CorrelationIDMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middleware.CorrelationIDHeader, "client-supplied-id")
	router.ServeHTTP(w, req)

	assert.Equal(t, "client-supplied-id", w.Header().Get(middleware.CorrelationIDHeader))
}

func TestRateLimiter_EnforcesBurst(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, 3)

	router := gin.New()
	router.POST("/webhooks/stripe", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	statuses := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	// Burst of 3 passes, the rest are limited.
	assert.Equal(t, []int{200, 200, 200, 429, 429}, statuses)
}

func TestRateLimiter_SeparatesClients(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, 1)

	router := gin.New()
	router.POST("/webhooks/stripe", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", nil)
		req.Header.Set("X-Forwarded-For", ip)
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.1"))
	assert.Equal(t, http.StatusOK, send("198.51.100.2"))
}
