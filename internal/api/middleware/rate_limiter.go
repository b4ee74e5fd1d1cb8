package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL       = 10 * time.Minute
	limiterSweepInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// RateLimiter is a token bucket per client IP. Buckets idle for longer than
// limiterIdleTTL are dropped by a sweep that runs at most once per
// limiterSweepInterval, on the request path.
type RateLimiter struct {
	visitors  sync.Map // ip -> *visitor
	rate      rate.Limit
	burst     int
	now       func() time.Time
	lastSweep atomic.Int64
}

// NewRateLimiter allows requestsPerSecond with bursts of up to burst.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		rate:  rate.Limit(requestsPerSecond),
		burst: burst,
		now:   time.Now,
	}
	rl.lastSweep.Store(rl.now().UnixNano())
	return rl
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := rl.now()
	rl.maybeSweep(now)

	v, ok := rl.visitors.Load(key)
	if !ok {
		v, _ = rl.visitors.LoadOrStore(key, &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)})
	}
	vis := v.(*visitor)
	vis.lastSeen.Store(now.UnixNano())
	return vis.limiter
}

func (rl *RateLimiter) maybeSweep(now time.Time) {
	last := rl.lastSweep.Load()
	if now.UnixNano()-last < int64(limiterSweepInterval) {
		return
	}
	if !rl.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}
	cutoff := now.Add(-limiterIdleTTL).UnixNano()
	rl.visitors.Range(func(k, v any) bool {
		if v.(*visitor).lastSeen.Load() < cutoff {
			rl.visitors.Delete(k)
		}
		return true
	})
}

func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter := rl.getLimiter("ip:" + c.RealIP())
			c.Response().Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.burst))

			if !limiter.Allow() {
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "too many login attempts",
				})
			}

			c.Response().Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", int(limiter.Tokens())))
			return next(c)
		}
	}
}
