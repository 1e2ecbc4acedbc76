package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/blog-api/internal/config"
	"github.com/deppfellow/blog-api/internal/errs"
	"github.com/deppfellow/blog-api/internal/server"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
				CORSAllowedMethods: config.DefaultCORSAllowedMethods,
			},
		},
		Logger: &logger,
	}
}

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer())

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "method not allowed",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"message":"Method not allowed","success":false}`,
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Route not found","success":false}`,
		},
		{
			name:       "application error",
			err:        errs.NewNotFoundError("Could not find post with specified id", true, nil),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Could not find post with specified id","success":false}`,
		},
		{
			name:       "driver error is not leaked",
			err:        fmt.Errorf("query: %w", &pgconn.PgError{Code: "57P01", Message: "terminating connection"}),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error","success":false}`,
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error","success":false}`,
		},
		{
			name:       "other echo error keeps its status",
			err:        echo.ErrUnsupportedMediaType,
			wantStatus: http.StatusUnsupportedMediaType,
			wantBody:   `{"error":"Unsupported Media Type","success":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestGlobalErrorHandlerSkipsCommittedResponse(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer())

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	global.GlobalErrorHandler(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	for name, incoming := range map[string]string{
		"too long":      strings.Repeat("a", 65),
		"log injection": "abc\ninjected=1",
		"spaces":        "abc 123",
	} {
		t.Run("replaced when "+name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, incoming)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			id := rec.Header().Get(RequestIDHeader)
			assert.NotEqual(t, incoming, id)
			assert.Len(t, id, 36)
		})
	}
}

func TestTransactionAttributes(t *testing.T) {
	e := echo.New()

	var got map[string]any
	capture := func(c echo.Context) error {
		got = transactionAttributes(c, "test")
		return c.NoContent(http.StatusOK)
	}
	e.GET("/posts/:id", capture, RequestID())
	e.GET("/posts", capture)

	req := httptest.NewRequest(http.MethodGet, "/posts/42", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "/posts/:id", got["http.route"])
	assert.Equal(t, "42", got["blog.post_id"])
	assert.Equal(t, "req-42", got["request.id"])
	assert.Equal(t, "test", got["service.environment"])

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/posts", nil))

	assert.Equal(t, "/posts", got["http.route"])
	assert.NotContains(t, got, "blog.post_id")
	assert.NotContains(t, got, "request.id")
}

func TestEnhanceContextStoresLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	s := newTestServer()
	s.Logger = &logger

	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(s).EnhanceContext())
	e.GET("/posts/:id", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from service")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/posts/7", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	e.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "/posts/:id", line["path"])
	assert.Equal(t, "from service", line["message"])
}

func TestGetLoggerFallback(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
}
