package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolapi/internal/pkg/metrics"
)

// Metrics records request counts, durations and in-flight requests.
// Paths are labelled with the route template so ids do not explode cardinality.
func Metrics(m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.RequestsInFlight.Inc()
		defer m.RequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		m.RequestsTotal.WithLabelValues(c.Request.Method, path, metrics.StatusClass(status)).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
