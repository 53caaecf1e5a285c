package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"fintrack/internal/handler/http/respond"
)

// DefaultRateLimit is the per-client request budget for one window.
const DefaultRateLimit = 60

// DefaultRateWindow is the fixed window length.
const DefaultRateWindow = time.Minute

// sweepInterval bounds how often expired client records are evicted.
const sweepInterval = 10 * time.Minute

// clientRecord tracks one client's usage of the current window.
type clientRecord struct {
	count         int
	windowResetAt time.Time
}

// RateLimiter enforces a fixed-window request limit per client IP.
//
// Each client gets a counter that resets when its window expires. A request
// arriving after windowResetAt starts a fresh window anchored at that
// request's time; within a window the counter grows until it reaches the
// limit, after which requests are rejected with 429 and the counter is not
// advanced. Counting uses the injected Clock so the window arithmetic is
// testable without sleeping.
type RateLimiter struct {
	limit     int
	window    time.Duration
	clock     Clock
	extractor IPExtractor

	mu        sync.Mutex
	records   map[string]*clientRecord
	lastSweep time.Time
}

// NewRateLimiter creates a rate limiter with the given per-window limit.
// A nil clock defaults to the system clock, a nil extractor to header-based
// extraction without proxy validation.
func NewRateLimiter(limit int, window time.Duration, extractor IPExtractor, clock Clock) *RateLimiter {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if window <= 0 {
		window = DefaultRateWindow
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if extractor == nil {
		extractor = &HeaderIPExtractor{}
	}
	return &RateLimiter{
		limit:     limit,
		window:    window,
		clock:     clock,
		extractor: extractor,
		records:   make(map[string]*clientRecord),
		lastSweep: clock.Now(),
	}
}

// Middleware returns an HTTP middleware that rejects clients exceeding
// the configured limit with 429 Too Many Requests.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, err := rl.extractor.ExtractIP(r)
		if err != nil {
			slog.Warn("rate limiter: IP extraction failed, using RemoteAddr",
				slog.String("error", err.Error()),
				slog.String("remote_addr", r.RemoteAddr),
			)
			// RemoteAddr is unparseable only for exotic transports; fall
			// back to the raw value so those clients still share a bucket.
			ip = r.RemoteAddr
		}

		if !rl.Allow(ip) {
			rateLimitRejectedTotal.Inc()
			slog.Warn("rate limit exceeded",
				slog.String("ip", ip),
				slog.String("path", r.URL.Path),
				slog.Int("limit", rl.limit),
			)
			respond.JSON(w, http.StatusTooManyRequests, map[string]string{
				"error": "too many requests",
			})
			return
		}

		rateLimitAllowedTotal.Inc()
		next.ServeHTTP(w, r)
	})
}

// Allow records one request for the given client and reports whether it
// fits in the current window.
func (rl *RateLimiter) Allow(client string) bool {
	now := rl.clock.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) >= sweepInterval {
		rl.sweepLocked(now)
	}

	rec, ok := rl.records[client]
	if !ok {
		rl.records[client] = &clientRecord{count: 1, windowResetAt: now.Add(rl.window)}
		rateLimitActiveClients.Set(float64(len(rl.records)))
		return true
	}

	if now.After(rec.windowResetAt) {
		rec.count = 0
		rec.windowResetAt = now.Add(rl.window)
	}

	if rec.count >= rl.limit {
		return false
	}
	rec.count++
	return true
}

// sweepLocked drops records whose window ended more than one full window
// ago. Callers must hold mu.
func (rl *RateLimiter) sweepLocked(now time.Time) {
	for client, rec := range rl.records {
		if now.Sub(rec.windowResetAt) > rl.window {
			delete(rl.records, client)
		}
	}
	rl.lastSweep = now
	rateLimitActiveClients.Set(float64(len(rl.records)))
	slog.Debug("rate limiter: sweep completed",
		slog.Int("active_clients", len(rl.records)),
	)
}

// ActiveClients returns the number of tracked client records.
// Exposed for the readiness endpoint.
func (rl *RateLimiter) ActiveClients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.records)
}
