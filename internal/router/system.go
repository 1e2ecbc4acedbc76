package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blog-api/internal/handler"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/deppfellow/blog-api/static"
)

// registerSystemRoutes registers endpoints that are not part of the blog API:
// health, metrics, the docs UI and the embedded OpenAPI assets.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	if s.Metrics != nil {
		r.GET(s.Config.Observability.Metrics.Path, echo.WrapHandler(s.Metrics.Handler()))
	}

	r.StaticFS("/static", static.FS)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
