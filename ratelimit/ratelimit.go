// Package ratelimit enforces a fixed-window request quota per
// (route, client) pair. The counter lives in a shared store keyed by
// "req:lim:<path>:<ip>"; the key expires a window after its first hit, so
// bursts exactly at a window boundary can admit up to twice the limit.
package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"accountservice/apperror"
)

// Counter is the shared counter store. Incr must be atomic under
// concurrent requests sharing a key.
type Counter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

type Limiter struct {
	counter Counter
	limit   int64
	window  time.Duration
	log     *zap.SugaredLogger
}

func NewLimiter(counter Counter, limit int64, window time.Duration, log *zap.SugaredLogger) *Limiter {
	return &Limiter{counter: counter, limit: limit, window: window, log: log}
}

// Middleware counts the request against its route+client key and rejects
// with 429 once the window's quota is spent. The counter is not rolled
// back on rejection; offenders keep incrementing until the key expires.
// Counter store failures fail open.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("req:lim:%s:%s", c.Request.URL.Path, c.ClientIP())

		count, err := l.counter.Incr(c.Request.Context(), key)
		if err != nil {
			l.log.Errorw("rate limit counter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		if count == 1 {
			// Only the request that created the key sets its expiry.
			if err := l.counter.Expire(c.Request.Context(), key, l.window); err != nil {
				l.log.Errorw("rate limit expire failed", "key", key, "error", err)
			}
		}

		if count > l.limit {
			l.log.Warnw("rate limit exceeded",
				"ip", c.ClientIP(), "try_count", count, "url", c.Request.URL.Path, "limit", l.limit)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":      apperror.CodeTooManyRequests,
				"message":   apperror.MsgRateLimiterFlow,
				"timestamp": time.Now(),
			})
			return
		}

		c.Next()
	}
}
