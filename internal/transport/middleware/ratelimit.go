package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/recruitment-backend/internal/config"
)

// idleClientTTL is how long an unseen client keeps its limiter.
const idleClientTTL = 10 * time.Minute

// RateLimiter applies a per-IP token bucket to the public API.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client

	limit      rate.Limit
	burst      int
	retryAfter string
	now        func() time.Time
	stop       chan struct{}
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	perMinute := max(cfg.RequestsPerMinute, 1)
	rl := &RateLimiter{
		clients:    make(map[string]*client),
		limit:      rate.Limit(float64(perMinute) / 60),
		burst:      perMinute,
		retryAfter: strconv.Itoa((60 + perMinute - 1) / perMinute),
		now:        time.Now,
		stop:       make(chan struct{}),
	}
	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = time.Minute
	}
	go rl.cleanup(interval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Middleware rejects requests over the limit with 429 and a Retry-After hint.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(clientIP(r)) {
				w.Header().Set("Retry-After", rl.retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string) bool {
	now := rl.now()

	rl.mu.Lock()
	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	rl.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(rl.now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > idleClientTTL {
			delete(rl.clients, key)
		}
	}
}

// clientIP strips the port so that connections from one host share a bucket.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
