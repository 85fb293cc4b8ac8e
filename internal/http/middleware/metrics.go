package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPRecorder receives request observations. *observability.Metrics satisfies it.
type HTTPRecorder interface {
	RequestStarted()
	RequestDone(method, route string, status int, dur time.Duration)
}

// Metrics records every request except scrapes of the paths in skip.
func Metrics(rec HTTPRecorder, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}
	return func(c *gin.Context) {
		if _, ok := skipped[c.Request.URL.Path]; ok {
			c.Next()
			return
		}
		start := time.Now()
		rec.RequestStarted()
		c.Next()
		rec.RequestDone(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
