// Package ratelimit bounds how often a single creative's views are accepted.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Window is an in-process sliding-log limiter: a key is allowed at most
// limit times in any rolling window. Each key keeps at most limit
// timestamps, so memory per key is bounded; idle keys are only dropped by
// Sweep.
type Window struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu   sync.Mutex
	hits map[int64][]time.Time
}

// Option configures a Window.
type Option func(*Window)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(w *Window) { w.now = now }
}

// NewWindow creates a limiter allowing limit hits per window for each key.
func NewWindow(limit int, window time.Duration, opts ...Option) *Window {
	w := &Window{
		limit:  limit,
		window: window,
		now:    time.Now,
		hits:   make(map[int64][]time.Time),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Allow records a hit for creativeID and reports whether it is within the
// limit. Rejected hits are not recorded. The error is always nil.
func (w *Window) Allow(_ context.Context, creativeID int64) (bool, error) {
	now := w.now()
	cutoff := now.Add(-w.window)

	w.mu.Lock()
	defer w.mu.Unlock()

	log := w.hits[creativeID]
	i := 0
	for i < len(log) && !log[i].After(cutoff) {
		i++
	}
	log = log[i:]

	if len(log) >= w.limit {
		w.hits[creativeID] = log
		return false, nil
	}
	w.hits[creativeID] = append(log, now)
	return true, nil
}

// Sweep drops keys with no hit inside the current window and returns how
// many were removed.
func (w *Window) Sweep() int {
	cutoff := w.now().Add(-w.window)

	w.mu.Lock()
	defer w.mu.Unlock()

	removed := 0
	for key, log := range w.hits {
		if len(log) == 0 || !log[len(log)-1].After(cutoff) {
			delete(w.hits, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (w *Window) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.hits)
}
