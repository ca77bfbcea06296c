package rate

import (
	"sync"
	"time"
)

// WindowLimiter allows at most limit calls per key within a fixed window.
type WindowLimiter struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	entries     map[string]*windowEntry
	lastCleanup time.Time
}

type windowEntry struct {
	start time.Time
	count int
}

// NewWindowLimiter creates a limiter.
func NewWindowLimiter(limit int, window time.Duration) *WindowLimiter {
	return &WindowLimiter{
		limit:       limit,
		window:      window,
		entries:     make(map[string]*windowEntry),
		lastCleanup: time.Now(),
	}
}

// Allow reports whether another call for key fits in the current window.
func (l *WindowLimiter) Allow(key string) bool {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	l.maybeCleanup(now)

	entry, ok := l.entries[key]
	if !ok {
		l.entries[key] = &windowEntry{start: now, count: 1}
		return true
	}
	if now.Sub(entry.start) >= l.window {
		entry.start = now
		entry.count = 1
		return true
	}
	if entry.count >= l.limit {
		return false
	}
	entry.count++
	return true
}

// maybeCleanup drops expired entries at most once per window.
func (l *WindowLimiter) maybeCleanup(now time.Time) {
	if l.window <= 0 || now.Sub(l.lastCleanup) < l.window {
		return
	}
	for key, entry := range l.entries {
		if now.Sub(entry.start) >= l.window {
			delete(l.entries, key)
		}
	}
	l.lastCleanup = now
}
