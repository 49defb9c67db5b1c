package apidoc

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig configures RateLimit.
type RateLimitConfig struct {
	Rate            float64                      // requests per second
	Burst           int                          // max burst
	KeyFunc         func(r *http.Request) string // default: remote IP
	CleanupInterval time.Duration                // default: 1m
	MaxIdle         time.Duration                // default: 5m
}

// RateLimit returns middleware applying a token bucket per key. Rejected
// requests get 429 with a Retry-After header.
func RateLimit(cfg RateLimitConfig) Middleware {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = remoteHost
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = time.Minute
	}
	if cfg.MaxIdle <= 0 {
		cfg.MaxIdle = 5 * time.Minute
	}

	set := &limiterSet{
		cfg:      cfg,
		limiters: make(map[string]*limiterEntry),
	}
	retryAfter := "1"
	if cfg.Rate > 0 && cfg.Rate < 1 {
		retryAfter = strconv.Itoa(int(math.Ceil(1 / cfg.Rate)))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !set.allow(cfg.KeyFunc(r), time.Now()) {
				w.Header().Set("Retry-After", retryAfter)
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet holds one limiter per key and prunes idle ones lazily.
type limiterSet struct {
	cfg RateLimitConfig

	mu          sync.Mutex
	limiters    map[string]*limiterEntry
	lastCleanup time.Time
}

func (s *limiterSet) allow(key string, now time.Time) bool {
	s.mu.Lock()
	if now.Sub(s.lastCleanup) >= s.cfg.CleanupInterval {
		for k, e := range s.limiters {
			if now.Sub(e.lastSeen) > s.cfg.MaxIdle {
				delete(s.limiters, k)
			}
		}
		s.lastCleanup = now
	}

	entry, ok := s.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(s.cfg.Rate), s.cfg.Burst)}
		s.limiters[key] = entry
	}
	entry.lastSeen = now
	s.mu.Unlock()

	return entry.limiter.AllowN(now, 1)
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
