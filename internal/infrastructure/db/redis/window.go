package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// WindowCounter implements a fixed-window counter backed by Redis,
// used for the global per-IP request ceiling.
// Key format: ratelimit:<ip>
type WindowCounter struct {
	client *redis.Client
}

// NewWindowCounter creates a WindowCounter wrapping the given Redis client.
func NewWindowCounter(client *redis.Client) *WindowCounter {
	return &WindowCounter{client: client}
}

// Incr increments the counter for key and returns the new count plus the
// time remaining in the current window. The first increment of a window
// arms the expiry.
func (w *WindowCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	count, err := w.client.Incr(ctx, w.key(key)).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("rate window incr: %w", err)
	}

	if count == 1 {
		if err := w.client.Expire(ctx, w.key(key), window).Err(); err != nil {
			return 0, 0, fmt.Errorf("rate window expire: %w", err)
		}
		return count, window, nil
	}

	ttl, err := w.client.TTL(ctx, w.key(key)).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("rate window ttl: %w", err)
	}
	if ttl < 0 {
		ttl = window
	}
	return count, ttl, nil
}

func (w *WindowCounter) key(k string) string {
	return "ratelimit:" + k
}
