package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mergington/announcements-service/internal/metrics"
	"github.com/mergington/announcements-service/internal/repo"
)

const requestIDKey = "X-Request-ID"

// RequestID tags every request with an id: taken from the incoming header
// when present, generated otherwise. Echoed back on the response and
// attached to published events.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDKey)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDKey, id)
		c.Next()
	}
}

// Metrics feeds the prometheus collectors from every handled request.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.InFlight.Inc()
		start := time.Now()

		// deferred so a panicking handler (recovered further up the chain)
		// still releases the gauge and counts the request
		defer func() {
			metrics.InFlight.Dec()
			metrics.ReqDuration.WithLabelValues(route, c.Request.Method).
				Observe(time.Since(start).Seconds())
			metrics.RequestsTotal.WithLabelValues(route, c.Request.Method,
				strconv.Itoa(c.Writer.Status())).Inc()
		}()

		c.Next()
	}
}

type bucket struct {
	tokens  int
	updated time.Time
}

// RateLimiter is the in-memory fixed-window limiter used when Redis is not
// configured. Per-IP, resets each window.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rate    int
	window  time.Duration
}

func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return &RateLimiter{buckets: make(map[string]*bucket), rate: rate, window: window}
}

func (rl *RateLimiter) Allow(ip string) bool {
	now := time.Now()
	rl.mu.Lock()
	defer rl.mu.Unlock()
	b, ok := rl.buckets[ip]
	if !ok || now.Sub(b.updated) > rl.window {
		rl.buckets[ip] = &bucket{tokens: 1, updated: now}
		return true
	}
	if b.tokens < rl.rate {
		b.tokens++
		b.updated = now
		return true
	}
	return false
}

func ClientIP(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	host, _, err := net.SplitHostPort(ip)
	if err == nil && host != "" {
		return host
	}
	return ip
}

// RateLimitPublic guards the unauthenticated active listing. Redis-backed
// fixed window (INCR + EXPIRE) when a Redis handle exists, the in-memory
// limiter otherwise. rate <= 0 disables limiting.
func RateLimitPublic(rds *repo.Redis, rl *RateLimiter, rate int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rate <= 0 {
			c.Next()
			return
		}
		ip := ClientIP(c)
		allowed := true
		if rds != nil {
			key := "rl:active:" + ip
			n, err := rds.C.Incr(c.Request.Context(), key).Result()
			if err == nil {
				if n == 1 {
					rds.C.Expire(c.Request.Context(), key, window)
				}
				allowed = n <= int64(rate)
			}
			// on Redis errors requests pass; availability over strictness
		} else if rl != nil {
			allowed = rl.Allow(ip)
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
