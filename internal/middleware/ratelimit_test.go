// File: internal/middleware/ratelimit_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"identity_kit_backend/internal/config"
)

func newRateLimitedRouter(t *testing.T, cfg *config.Config) (*gin.Engine, *RateLimiter) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(cfg, zap.NewNop())
	t.Cleanup(rl.Stop)

	router := gin.New()
	router.POST("/auth/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, rl
}

func doLogin(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	router, _ := newRateLimitedRouter(t, &config.Config{
		AuthRateLimitPerMinute: 60,
		AuthRateLimitBurst:     3,
	})

	for i := 0; i < 3; i++ {
		w := doLogin(router, "10.0.0.1")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	router, _ := newRateLimitedRouter(t, &config.Config{
		AuthRateLimitPerMinute: 1,
		AuthRateLimitBurst:     2,
	})

	assert.Equal(t, http.StatusOK, doLogin(router, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, doLogin(router, "10.0.0.1").Code)

	w := doLogin(router, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t,
		`{"error":"TooManyRequestsException","message":"Too many requests. Please try again later"}`,
		w.Body.String())
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	router, rl := newRateLimitedRouter(t, &config.Config{
		AuthRateLimitPerMinute: 1,
		AuthRateLimitBurst:     1,
	})

	assert.Equal(t, http.StatusOK, doLogin(router, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doLogin(router, "10.0.0.1").Code)

	// A different client has its own budget.
	assert.Equal(t, http.StatusOK, doLogin(router, "10.0.0.2").Code)

	assert.Equal(t, 2, rl.EntryCount())
}
