package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"outlet-assistant/pkg/response"
)

// RateLimit applies a per-client token bucket to the wrapped routes.
// Clients are keyed by IP; the bucket refills at chat_per_min requests
// per minute with a burst of the same size.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.cfg.ChatPerMin
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		lim, ok := limiters[key]
		if !ok {
			lim = rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin)
			limiters[key] = lim
		}
		return lim
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests. Please slow down and try again.",
			})
			return
		}
		c.Next()
	}
}
