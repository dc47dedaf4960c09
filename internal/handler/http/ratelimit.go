package http

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-posts/internal/logger"
	"golang.org/x/time/rate"
)

const (
	rateLimitIdleTTL      = 15 * time.Minute
	rateLimitCleanupEvery = 2 * time.Minute
	rateLimitRetryAfter   = time.Second
)

// rateLimiter keeps one token bucket per client address.
type rateLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry

	rps          rate.Limit
	burst        int
	idleTTL      time.Duration
	cleanupEvery time.Duration
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func newRateLimiter(rps float64, burst int) *rateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		entries:      make(map[string]*limiterEntry),
		rps:          rate.Limit(rps),
		burst:        burst,
		idleTTL:      rateLimitIdleTTL,
		cleanupEvery: rateLimitCleanupEvery,
	}
}

func (l *rateLimiter) get(key string) *rate.Limiter {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if ent, ok := l.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(l.rps, l.burst)
	l.entries[key] = &limiterEntry{lim: lim, lastSeen: now}
	return lim
}

// cleanup drops buckets unused for idleTTL and returns how many went.
func (l *rateLimiter) cleanup() int {
	cutoff := time.Now().Add(-l.idleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for k, ent := range l.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(l.entries, k)
			removed++
		}
	}
	return removed
}

func (l *rateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)

		if !h.limiter.get(key).Allow() {
			logger.FromRequest(r).Warn().Str("client", key).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(int(rateLimitRetryAfter.Seconds())))
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	remote := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(remote); err == nil && host != "" {
		return host
	}
	if remote != "" {
		return remote
	}
	return "unknown"
}
