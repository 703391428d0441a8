package middleware

import (
	"net/http"
	"sync"

	"go-attendance/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// KeyedRateLimiter hands out one token bucket per key (client IP or teacher).
type KeyedRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
	}
}

func (l *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.limiters[key] = limiter
	}

	return limiter
}

var errTooManyRequests = apperror.New(apperror.CodeTooManyRequests, "Too many requests", http.StatusTooManyRequests)

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			abortWith(c, errTooManyRequests)
			return
		}
		c.Next()
	}
}

// RateLimitByTeacher falls through for anonymous requests; auth rejects those.
func RateLimitByTeacher(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		teacherID := c.GetString("teacher_id")
		if teacherID == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(teacherID).Allow() {
			abortWith(c, errTooManyRequests)
			return
		}
		c.Next()
	}
}
