package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces limiter counters in Redis.
const keyPrefix = "ratelimit:ip:"

// fixedWindowScript increments the counter for the current window and
// sets the window TTL on the first hit. Atomic, so concurrent requests
// never double-start a window.
var fixedWindowScript = redis.NewScript(`
	local key = KEYS[1]
	local window = tonumber(ARGV[1]) -- window size in seconds

	local count = redis.call('INCR', key)
	if count == 1 then
		redis.call('EXPIRE', key, window)
	end

	local ttl = redis.call('TTL', key)
	if ttl < 0 then
		ttl = window
	end

	return {count, ttl}
`)

// RedisLimiter keeps the fixed window in Redis, so the count survives
// restarts and is shared by every instance pointing at the same Redis.
type RedisLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewRedisLimiter connects to redisURL and returns a limiter allowing
// max requests per window. The connection is verified before returning.
func NewRedisLimiter(ctx context.Context, redisURL string, max int64, window time.Duration) (*RedisLimiter, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	// The limiter issues one short script call per request; a small
	// pool with warm idle connections covers that.
	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisLimiter{client: client, max: max, window: window}, nil
}

// Close releases the Redis connection pool.
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}

// Allow counts a request against the key's current window.
// Fails open on Redis errors: a broken limiter backend must not take
// the API down.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (*Result, error) {
	res, err := fixedWindowScript.Run(ctx, l.client,
		[]string{keyPrefix + key},
		int(l.window.Seconds()),
	).Int64Slice()
	if err != nil || len(res) != 2 {
		return &Result{
			Allowed:   true,
			Remaining: l.max,
			ResetAt:   time.Now().Add(l.window),
		}, nil
	}

	count, ttl := res[0], res[1]

	remaining := l.max - count
	if remaining < 0 {
		remaining = 0
	}

	result := &Result{
		Allowed:   count <= l.max,
		Remaining: remaining,
		ResetAt:   time.Now().Add(time.Duration(ttl) * time.Second),
	}
	if !result.Allowed {
		result.RetryAfter = time.Duration(ttl) * time.Second
	}
	return result, nil
}
