// Package ratelimit implements a per-client fixed-window request limiter.
package ratelimit

import (
	"net/http"
	"sync"
	"time"
)

// Config tunes the limiter. Zero values fall back to the defaults.
type Config struct {
	RequestsPerMinute int
	CleanupInterval   time.Duration
}

func DefaultConfig() Config {
	return Config{
		RequestsPerMinute: 60,
		CleanupInterval:   5 * time.Minute,
	}
}

// bucket counts requests inside one fixed window.
type bucket struct {
	windowStart time.Time
	count       int
}

type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	limit   int
	done    chan struct{}
	once    sync.Once
	cleanup time.Duration
}

func NewLimiter(cfg Config) *Limiter {
	def := DefaultConfig()
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = def.RequestsPerMinute
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = def.CleanupInterval
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		limit:   cfg.RequestsPerMinute,
		done:    make(chan struct{}),
		cleanup: cfg.CleanupInterval,
	}
	go l.sweepLoop()
	return l
}

// Allow reports whether one more request from the client fits in the current
// one-minute window.
func (l *Limiter) Allow(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b := l.buckets[clientIP]
	if b == nil || now.Sub(b.windowStart) > time.Minute {
		l.buckets[clientIP] = &bucket{windowStart: now, count: 1}
		return true
	}

	b.count++
	return b.count <= l.limit
}

// ActiveClients returns the number of currently tracked clients.
func (l *Limiter) ActiveClients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Stop shuts down the sweep goroutine. Safe to call more than once.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.done) })
}

func (l *Limiter) sweepLoop() {
	ticker := time.NewTicker(l.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep(time.Now().Add(-10 * time.Minute))
		case <-l.done:
			return
		}
	}
}

// sweep drops buckets whose window started before the cutoff.
func (l *Limiter) sweep(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, b := range l.buckets {
		if b.windowStart.Before(cutoff) {
			delete(l.buckets, ip)
		}
	}
}

// Middleware rejects over-limit requests before they reach the handler.
// onLimit overrides the default 429 response when non-nil.
func (l *Limiter) Middleware(extractIP func(*http.Request) string, onLimit func(http.ResponseWriter, *http.Request)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l.Allow(extractIP(r)) {
				next.ServeHTTP(w, r)
				return
			}
			if onLimit != nil {
				onLimit(w, r)
				return
			}
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
		})
	}
}
