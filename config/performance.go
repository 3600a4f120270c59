package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultSlowThreshold = 200 * time.Millisecond

// slowThreshold reads SLOW_REQUEST_MS; requests slower than this get an
// extra log line so field-app latency complaints can be traced.
func slowThreshold() time.Duration {
	if env := os.Getenv("SLOW_REQUEST_MS"); env != "" {
		if ms, err := strconv.Atoi(env); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultSlowThreshold
}

// PerformanceLogger logs every request with its latency and flags the slow
// ones.
func PerformanceLogger() gin.HandlerFunc {
	threshold := slowThreshold()

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		log.Printf("[PERF] %s %s | %d | %v | %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency,
			c.ClientIP())

		if latency > threshold {
			log.Printf("[PERF] lenta: %s %s tardó %v (umbral %v)",
				c.Request.Method, c.Request.URL.Path, latency, threshold)
		}
	}
}
