package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elsur/driving-school-api/internal/service"
)

// Metrics records one duration and count observation per request,
// labelled by the matched route template so path cardinality stays
// bounded. A nil service turns the middleware into a pass-through.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		metricsSvc.ObserveHTTPRequest(c.Request.Method, routePath(c), c.Writer.Status(), time.Since(start))
	}
}

// routePath prefers the route template; unmatched requests (404s) fall
// back to the raw path.
func routePath(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}
