package middleware

import (
	"strconv"
	"time"

	"github.com/emunicipality/backend/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records the Prometheus request counter and latency histogram.
// The matched route template is used as the path label to keep cardinality
// bounded (":id" instead of every concrete id).
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}
