package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a fixed-window token bucket keyed by caller identity
// (client IP on the public search/chat endpoints).
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   int           // requests allowed per window
	window  time.Duration // window length
	done    chan struct{}
}

type bucket struct {
	remaining   int
	windowStart time.Time
}

// New creates a Limiter allowing limit requests per window per key.
func New(limit int, window time.Duration) *Limiter {
	l := &Limiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
		done:    make(chan struct{}),
	}

	go l.evictStale()

	return l
}

// Close stops the background eviction goroutine.
func (l *Limiter) Close() {
	close(l.done)
}

// Allow reports whether a request for key fits in the current window
// and consumes a token if it does.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{remaining: l.limit, windowStart: now}
		l.buckets[key] = b
	}

	if now.Sub(b.windowStart) >= l.window {
		b.remaining = l.limit
		b.windowStart = now
	}

	if b.remaining > 0 {
		b.remaining--
		return true
	}

	return false
}

// RetryAfter returns how long the caller behind key must wait before the
// window resets. Zero when the key still has tokens.
func (l *Limiter) RetryAfter(key string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok || b.remaining > 0 {
		return 0
	}

	wait := l.window - time.Since(b.windowStart)
	if wait < 0 {
		return 0
	}
	return wait
}

// evictStale drops buckets idle for two windows.
func (l *Limiter) evictStale() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.mu.Lock()
			now := time.Now()
			for key, b := range l.buckets {
				if now.Sub(b.windowStart) > 2*l.window {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		case <-l.done:
			return
		}
	}
}
