package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle counts failed login attempts per email in Redis.
// Key format: login_fail:<email>, expiring after the configured window so a
// quiet address resets itself.
type LoginThrottle struct {
	client *redis.Client
	max    int
	window time.Duration
}

// NewLoginThrottle creates a throttle allowing max failed attempts per window.
func NewLoginThrottle(client *redis.Client, max int, window time.Duration) *LoginThrottle {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginThrottle{client: client, max: max, window: window}
}

// TooMany reports whether the address has exhausted its attempt budget.
func (t *LoginThrottle) TooMany(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= int64(t.max), nil
}

// RecordFailure counts one failed attempt, starting the window on the first.
// INCR and EXPIRE run in one MULTI/EXEC so a counter can never be left
// without a window attached; ExpireNX keeps the window anchored to the first
// failure instead of sliding on every retry.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	key := t.key(email)
	_, err := t.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, t.window)
		return nil
	})
	if err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *LoginThrottle) key(email string) string {
	return fmt.Sprintf("login_fail:%s", email)
}
