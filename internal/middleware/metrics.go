package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/deppfellow/blog-api/internal/server"
)

// unmatchedRoute labels requests that hit no route, keeping raw paths
// out of the label set.
const unmatchedRoute = "unmatched"

type MetricsMiddleware struct {
	server *server.Server
}

func NewMetricsMiddleware(s *server.Server) *MetricsMiddleware {
	return &MetricsMiddleware{
		server: s,
	}
}

// Collect records count, latency and in-flight requests per route template.
//
// It is a no-op when metrics are disabled (server.Metrics is nil).
// Requests to the scrape endpoint itself are not counted.
func (m *MetricsMiddleware) Collect() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		collector := m.server.Metrics
		if collector == nil {
			return next
		}

		scrapePath := m.server.Config.Observability.Metrics.Path

		return func(c echo.Context) error {
			route := c.Path()
			if route == scrapePath {
				return next(c)
			}

			done := collector.RequestStarted()
			defer done()

			start := time.Now()
			err := next(c)

			// Same as RequestLogger: the error handler runs after us.
			status := c.Response().Status
			if err != nil {
				status = toHTTPError(err).Status
			}

			var echoErr *echo.HTTPError
			if route == "" || errors.As(err, &echoErr) && echoErr.Code == http.StatusNotFound {
				route = unmatchedRoute
			}

			collector.ObserveRequest(c.Request().Method, route, status, time.Since(start))
			return err
		}
	}
}
