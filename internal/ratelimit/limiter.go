package ratelimit

import (
	"sync"
	"time"
)

// Limiter enforces a per-client request quota over a sliding one-minute
// window. It keeps the timestamps of admitted requests per client id,
// prunes expired ones lazily on every call, and admits a request only
// while fewer than the limit remain. Denied requests are not recorded.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clients map[string][]time.Time
}

// New creates a Limiter admitting up to limit requests per client per
// minute. A background sweep removes clients whose windows have fully
// expired so the client map does not grow without bound.
func New(limit int) *Limiter {
	l := &Limiter{
		limit:   limit,
		window:  time.Minute,
		clients: make(map[string][]time.Time),
	}
	go l.sweep()
	return l
}

// Limit returns the configured per-minute quota.
func (l *Limiter) Limit() int {
	return l.limit
}

// Allow reports whether a request from clientID at time now is admitted.
// Pruning and appending happen under one lock so two simultaneous
// requests near the limit cannot both slip through.
func (l *Limiter) Allow(clientID string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := prune(l.clients[clientID], now.Add(-l.window))

	if len(kept) >= l.limit {
		l.clients[clientID] = kept
		return false
	}

	l.clients[clientID] = append(kept, now)
	return true
}

// AllowNow is Allow against the wall clock.
func (l *Limiter) AllowNow(clientID string) bool {
	return l.Allow(clientID, time.Now())
}

// prune drops timestamps at or before cutoff, reusing the backing array.
func prune(window []time.Time, cutoff time.Time) []time.Time {
	kept := window[:0]
	for _, ts := range window {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	return kept
}

func (l *Limiter) sweep() {
	for {
		time.Sleep(l.window)
		l.evict(time.Now())
	}
}

// evict removes clients whose windows contain only expired entries.
func (l *Limiter) evict(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	for id, window := range l.clients {
		expired := true
		for _, ts := range window {
			if ts.After(cutoff) {
				expired = false
				break
			}
		}
		if expired {
			delete(l.clients, id)
		}
	}
}
