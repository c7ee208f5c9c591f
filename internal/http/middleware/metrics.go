package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lure/sales-dashboard/internal/telemetry"
)

// Metrics labels by route template so query strings never explode cardinality.
func Metrics(m *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
