package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var limiter = rate.NewLimiter(5, 10) // 5 requests per second, burst size of 10

// InitializeRateLimiter replaces the default request limits.
func InitializeRateLimiter(rps float64, burst int) {
	limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

// RateLimiting rejects requests arriving faster than the configured rate.
func RateLimiting() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
