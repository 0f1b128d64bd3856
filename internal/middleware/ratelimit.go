// File: internal/middleware/ratelimit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"identity_kit_backend/internal/common"
	"identity_kit_backend/internal/config"
)

// clientLimiter holds a per-client limiter and its last access time for
// cleanup.
type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter applies a per-client-IP limit to the auth routes. The identity
// provider owns the real lockout semantics for its own operations; this is a
// transport-level backstop against brute forcing through this service.
type RateLimiter struct {
	perSecond rate.Limit
	burst     int
	logger    *zap.Logger

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopCh chan struct{}
}

// NewRateLimiter builds a limiter from the config knobs and starts the
// background cleanup of idle entries.
func NewRateLimiter(cfg *config.Config, logger *zap.Logger) *RateLimiter {
	perMinute := cfg.AuthRateLimitPerMinute
	if perMinute <= 0 {
		perMinute = 120
	}
	burst := cfg.AuthRateLimitBurst
	if burst <= 0 {
		burst = perMinute
	}

	rl := &RateLimiter{
		perSecond: rate.Limit(float64(perMinute) / 60.0),
		burst:     burst,
		logger:    logger,
		limiters:  make(map[string]*clientLimiter),
		stopCh:    make(chan struct{}),
	}

	go rl.cleanupLoop(5 * time.Minute)

	return rl
}

// Stop terminates the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// Middleware returns the Gin handler enforcing the limit.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.get(ip).Allow() {
			rl.logger.Warn("Rate limit exceeded", zap.String("ip", ip), zap.String("path", c.Request.URL.Path))
			common.RespondWithError(c, common.NewAPIError(http.StatusTooManyRequests,
				"TooManyRequestsException", "Too many requests. Please try again later"))
			return
		}
		c.Next()
	}
}

// EntryCount returns the number of tracked clients. For tests and metrics.
func (rl *RateLimiter) EntryCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.perSecond, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastAccess = time.Now()
	return cl.limiter
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-interval)
			rl.mu.Lock()
			for key, cl := range rl.limiters {
				if cl.lastAccess.Before(cutoff) {
					delete(rl.limiters, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
