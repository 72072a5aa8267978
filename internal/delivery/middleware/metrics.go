package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// unmatchedRoute labels requests that matched no registered route, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// HTTPObserver receives one observation per served request.
type HTTPObserver interface {
	ObserveHTTPRequest(method, route string, statusCode int, duration time.Duration)
}

// MetricsMiddleware records request counts and latency by route template.
type MetricsMiddleware struct {
	observer HTTPObserver
}

func NewMetricsMiddleware(observer HTTPObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = statusFromError(err)
		}

		route := c.Path()
		if route == "" || errors.Is(err, echo.ErrNotFound) {
			route = unmatchedRoute
		}

		m.observer.ObserveHTTPRequest(c.Request().Method, route, status, time.Since(start))

		return err
	}
}
