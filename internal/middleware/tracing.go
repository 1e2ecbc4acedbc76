package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/blog-api/internal/server"
)

// TracingMiddleware owns New Relic related Echo middleware.
//
//  1. NewRelicMiddleware() installs New Relic transaction handling into Echo
//  2. EnhanceTracing() adds custom attributes and notices errors
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware starts a transaction per request, or passes the request
// through untouched when New Relic is disabled.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing tags the current transaction with request and blog
// attributes and records handler errors. It must run after NewRelicMiddleware.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			for key, value := range transactionAttributes(c, tm.server.Config.Primary.Env) {
				txn.AddAttribute(key, value)
			}

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			txn.AddAttribute("http.status_code", c.Response().Status)

			return err
		}
	}
}

// transactionAttributes lists what is known about a request before its
// handler runs. Routes are reported by template so /posts/1 and /posts/2
// group together; the raw post id travels as blog.post_id.
func transactionAttributes(c echo.Context, env string) map[string]any {
	attrs := map[string]any{
		"http.real_ip":        c.RealIP(),
		"http.user_agent":     c.Request().UserAgent(),
		"service.environment": env,
	}

	if route := c.Path(); route != "" {
		attrs["http.route"] = route
	}

	if requestID := GetRequestID(c); requestID != "" {
		attrs["request.id"] = requestID
	}

	if c.Path() == "/posts/:id" {
		if id := c.Param("id"); id != "" {
			attrs["blog.post_id"] = id
		}
	}

	return attrs
}
