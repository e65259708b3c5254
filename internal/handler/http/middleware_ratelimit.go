package http

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// rateCleanupInterval is how often expired rate-limit entries are swept.
const rateCleanupInterval = time.Hour

// realIP extracts the client's real IP address, preferring X-Forwarded-For,
// and falling back to RemoteAddr.
func realIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// First IP in the chain is the original client
		if i := strings.IndexByte(xff, ','); i > 0 {
			return strings.TrimSpace(xff[:i])
		}
		return strings.TrimSpace(xff)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type rateEntry struct {
	count    int
	windowAt time.Time
}

// rateLimiter provides in-memory rate limiting keyed by client IP.
type rateLimiter struct {
	mu      sync.Mutex
	entries map[string]*rateEntry
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{
		entries: make(map[string]*rateEntry),
	}
}

// allow returns true if the key has not exceeded limit in the given window.
func (rl *rateLimiter) allow(key string, limit int, window time.Duration) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	e, ok := rl.entries[key]
	if !ok || now.After(e.windowAt) {
		rl.entries[key] = &rateEntry{count: 1, windowAt: now.Add(window)}
		return true
	}
	e.count++
	return e.count <= limit
}

// runCleanup sweeps expired entries on a ticker until ctx is cancelled.
// Without the sweep every distinct client IP would leave an entry behind
// forever.
func (rl *rateLimiter) runCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-ctx.Done():
			return
		}
	}
}

// cleanup removes expired entries.
func (rl *rateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, e := range rl.entries {
		if now.After(e.windowAt) {
			delete(rl.entries, key)
		}
	}
}

// withRateLimit rate-limits requests per client IP using the limit and
// window configured on the Handler. A zero limit disables the middleware.
func (h *Handler) withRateLimit(limiter *rateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if h.rateLimit <= 0 {
				next.ServeHTTP(w, r)
				return
			}
			if !limiter.allow(realIP(r), h.rateLimit, h.rateWindow) {
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
