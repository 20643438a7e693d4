package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"calendar-assistant/pkg/response"
)

// RateLimit caps requests per access token. Each token gets its own
// limiter; unauthenticated requests are keyed by client IP so the Auth
// middleware order does not matter.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cfg.RatePerMinute <= 0 {
			c.Next()
			return
		}

		key := c.GetHeader("token")
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.cfg.RatePerMinute)), m.cfg.RatePerMinute)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
