package handler

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blog-api/internal/middleware"
	"github.com/deppfellow/blog-api/internal/server"
)

// HealthCheck probes one dependency. A nil error means healthy.
type HealthCheck func(ctx context.Context) error

var errNoDatabase = errors.New("database not configured")

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	checks map[string]HealthCheck
}

// NewHealthHandler registers the checks listed in observability.health_checks.
func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
		checks:  make(map[string]HealthCheck),
	}

	hc := s.Config.Observability
	if hc == nil || !hc.HealthChecks.Enabled {
		return h
	}

	if slices.Contains(hc.HealthChecks.Checks, "database") {
		h.checks["database"] = func(ctx context.Context) error {
			if s.DB == nil {
				return errNoDatabase
			}
			return s.DB.Pool.Ping(ctx)
		}
	}

	return h
}

func (h *HealthHandler) timeout() time.Duration {
	if obs := h.server.Config.Observability; obs != nil && obs.HealthChecks.Timeout > 0 {
		return obs.HealthChecks.Timeout
	}
	return 5 * time.Second
}

// CheckHealth returns 200 when every check passes, 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]any, len(h.checks))
	isHealthy := true

	for name, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout())
		checkStart := time.Now()
		err := check(ctx)
		cancel()

		if err != nil {
			isHealthy = false
			checks[name] = map[string]any{
				"status":        "unhealthy",
				"response_time": time.Since(checkStart).String(),
				"error":         err.Error(),
			}

			logger.Error().
				Err(err).
				Str("check", name).
				Dur("response_time", time.Since(checkStart)).
				Msg("health check failed")

			if app := h.server.LoggerService.GetApplication(); app != nil {
				app.RecordCustomEvent("HealthCheckError", map[string]any{
					"check_type":       name,
					"operation":        "health_check",
					"response_time_ms": time.Since(checkStart).Milliseconds(),
					"error_message":    err.Error(),
				})
			}
			continue
		}

		checks[name] = map[string]any{
			"status":        "healthy",
			"response_time": time.Since(checkStart).String(),
		}
	}

	status, code := "healthy", http.StatusOK
	if !isHealthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	logger.Info().
		Str("status", status).
		Dur("total_duration", time.Since(start)).
		Msg("health check completed")

	return c.JSON(code, map[string]any{
		"status":      status,
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	})
}
