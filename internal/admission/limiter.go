// Package admission implements fixed-window admission control for the
// public ingestion endpoint.
package admission

import (
	"context"
	"fmt"
	"math"
	"time"
)

// CounterStore counts attempts per key in fixed windows.
type CounterStore interface {
	// Increment records one attempt for key at now. When the key's current
	// window began window or more before now, a new window starts at now.
	// It returns the post-increment count and the start of the window.
	Increment(ctx context.Context, key string, now time.Time, window time.Duration) (count int, windowStart time.Time, err error)
}

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter is the time left until the window resets, rounded up to whole
// seconds.
func (d Decision) RetryAfter(now time.Time) time.Duration {
	left := d.ResetAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return time.Duration(math.Ceil(left.Seconds())) * time.Second
}

// Limiter admits at most limit attempts per key per window. Every attempt
// is counted, including rejected ones.
type Limiter struct {
	store  CounterStore
	limit  int
	window time.Duration
	now    func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces the limiter's time source.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// NewLimiter creates a Limiter over store.
func NewLimiter(store CounterStore, limit int, window time.Duration, opts ...Option) *Limiter {
	l := &Limiter{store: store, limit: limit, window: window, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Limit returns the configured ceiling.
func (l *Limiter) Limit() int { return l.limit }

// Now returns the limiter's current time.
func (l *Limiter) Now() time.Time { return l.now() }

// Admit counts an attempt for key and decides whether it is allowed.
func (l *Limiter) Admit(ctx context.Context, key string) (Decision, error) {
	now := l.now()
	count, start, err := l.store.Increment(ctx, key, now, l.window)
	if err != nil {
		return Decision{}, fmt.Errorf("admission.Admit: %w", err)
	}
	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   start.Add(l.window),
	}, nil
}
