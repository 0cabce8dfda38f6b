package ratelimit

import (
	"context"
	"sync"
	"time"
)

// window tracks one client's request count within the current window.
type window struct {
	count   int64
	startAt time.Time
}

// MemoryLimiter is an in-process fixed-window limiter. The clock is
// injected so window-reset behavior is testable without waiting out
// real windows.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	max     int64
	period  time.Duration
	now     func() time.Time
}

// NewMemoryLimiter creates a limiter allowing max requests per period.
// A nil clock defaults to time.Now.
func NewMemoryLimiter(max int, period time.Duration, now func() time.Time) *MemoryLimiter {
	if now == nil {
		now = time.Now
	}
	return &MemoryLimiter{
		windows: make(map[string]*window),
		max:     int64(max),
		period:  period,
		now:     now,
	}
}

// Allow records one request for key within the current fixed window.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (*Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.startAt) >= l.period {
		w = &window{startAt: now}
		l.windows[key] = w
	}

	w.count++
	resetAt := w.startAt.Add(l.period)

	remaining := l.max - w.count
	if remaining < 0 {
		remaining = 0
	}

	result := &Result{
		Allowed:   w.count <= l.max,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
	if !result.Allowed {
		result.RetryAfter = resetAt.Sub(now)
	}

	// Opportunistically drop stale windows so the map does not grow
	// unbounded across client churn.
	if len(l.windows)%1024 == 0 {
		l.prune(now)
	}

	return result, nil
}

func (l *MemoryLimiter) prune(now time.Time) {
	for key, w := range l.windows {
		if now.Sub(w.startAt) >= l.period {
			delete(l.windows, key)
		}
	}
}
