package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/apierror"

	"github.com/gin-gonic/gin"
)

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter is a per-IP token bucket for the public endpoints (price kiosk,
// login). rate is tokens per second, burst the bucket size.
func RateLimiter(rate float64, burst float64) gin.HandlerFunc {
	var mu sync.Mutex
	buckets := make(map[string]*bucket)

	// Drop buckets idle for ten minutes.
	go func() {
		for range time.Tick(time.Minute) {
			mu.Lock()
			for ip, b := range buckets {
				if time.Since(b.lastSeen) > 10*time.Minute {
					delete(buckets, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		b, ok := buckets[ip]
		if !ok {
			b = &bucket{tokens: burst, lastSeen: now}
			buckets[ip] = b
		}
		b.tokens += now.Sub(b.lastSeen).Seconds() * rate
		if b.tokens > burst {
			b.tokens = burst
		}
		b.lastSeen = now

		allowed := b.tokens >= 1
		if allowed {
			b.tokens--
		}
		mu.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.New("demasiadas peticiones, intenta más tarde"))
			return
		}
		c.Next()
	}
}
