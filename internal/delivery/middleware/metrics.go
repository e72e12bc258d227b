package middleware

import (
	"time"

	"reportsys/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware reports request durations to Prometheus.
type MetricsMiddleware struct {
	metrics *metrics.HTTPMetrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.HTTPMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes the request after the handler and error handler have run.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Write the error response now so the final status is recorded. Echo's
			// error handlers skip committed responses, so err can still travel
			// up to the access log.
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.metrics.Observe(c.Request().Method, route, c.Response().Status, time.Since(start))

		return err
	}
}
