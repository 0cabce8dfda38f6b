// Package ratelimit provides the global fixed-window request limiter.
// One window (default 15 minutes, 100 requests) is tracked per client
// identity and shared across every route, health probes included.
package ratelimit

import (
	"context"
	"time"
)

// Result describes the outcome of a limiter check.
type Result struct {
	Allowed    bool
	Remaining  int64
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Limiter counts requests per client key within a fixed window.
// Implementations: MemoryLimiter (in-process) and RedisLimiter.
type Limiter interface {
	// Allow records one request for key and reports whether it fits in
	// the current window.
	Allow(ctx context.Context, key string) (*Result, error)
}
