package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-contacts/internal/logger"
)

// fixedWindow increments the counter and starts the window on first hit.
// It returns the new count and the remaining window in milliseconds.
var fixedWindow = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {current, ttl}
`)

// RateLimitRepository counts requests per key in Redis fixed windows.
type RateLimitRepository struct {
	client *redis.Client
}

// NewRateLimitRepository creates a new repository instance
func NewRateLimitRepository(client *redis.Client) *RateLimitRepository {
	return &RateLimitRepository{client: client}
}

// Allow records a hit for key and reports whether it is within limit for
// the current window, along with the time left until the window resets.
func (r *RateLimitRepository) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	redisKey := fmt.Sprintf("rate_limit:%s", key)

	res, err := fixedWindow.Run(ctx, r.client, []string{redisKey}, window.Milliseconds()).Int64Slice()

	logger.Log.Infow("rate limit hit",
		"key", redisKey,
		"limit", limit,
		"result", res,
		"error", err,
	)

	if err != nil {
		return false, 0, err
	}
	if len(res) != 2 {
		return false, 0, fmt.Errorf("unexpected rate limit reply %v", res)
	}

	retryAfter := time.Duration(res[1]) * time.Millisecond
	return res[0] <= int64(limit), retryAfter, nil
}
