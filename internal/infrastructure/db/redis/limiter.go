package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// AttemptLimiter counts sign-in attempts per account in a fixed window.
// Key format: <prefix>login:attempts:<lowercased email>
type AttemptLimiter struct {
	client *redis.Client
	prefix string
	max    int64
	window time.Duration
}

// NewAttemptLimiter allows max attempts per subject within window.
func NewAttemptLimiter(client *redis.Client, prefix string, max int64, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{client: client, prefix: prefix, max: max, window: window}
}

// Allow records an attempt and reports whether it is within the limit. The
// window starts at the first attempt.
func (l *AttemptLimiter) Allow(ctx context.Context, subject string) (bool, error) {
	key := l.key(subject)
	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("attempt limiter: %w", err)
	}
	return incr.Val() <= l.max, nil
}

// Reset clears the counter after a successful sign-in.
func (l *AttemptLimiter) Reset(ctx context.Context, subject string) error {
	return l.client.Del(ctx, l.key(subject)).Err()
}

func (l *AttemptLimiter) key(subject string) string {
	return fmt.Sprintf("%slogin:attempts:%s", l.prefix, strings.ToLower(strings.TrimSpace(subject)))
}
