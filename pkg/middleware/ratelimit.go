package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterIdleTTL   = 10 * time.Minute
	limiterSweepSize = 1024
)

// IPLimiter rate-limits per client IP.
type IPLimiter struct {
	mu      sync.Mutex
	m       map[string]*visitor
	limit   rate.Limit
	burst   int
	nowFunc func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPLimiter allows perMinute requests per IP with the given burst.
// It returns nil when perMinute is not positive.
func NewIPLimiter(perMinute, burst int) *IPLimiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &IPLimiter{
		m:       make(map[string]*visitor),
		limit:   rate.Limit(float64(perMinute) / 60),
		burst:   burst,
		nowFunc: time.Now,
	}
}

// Allow reports whether a request from ip may proceed now.
func (l *IPLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFunc()
	if len(l.m) >= limiterSweepSize {
		for k, v := range l.m {
			if now.Sub(v.lastSeen) > limiterIdleTTL {
				delete(l.m, k)
			}
		}
	}

	v, ok := l.m[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.m[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// RateLimit rejects requests over the limiter's budget with 429.
// A nil limiter lets everything through.
func RateLimit(l *IPLimiter, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l != nil && !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": message})
			return
		}
		c.Next()
	}
}
