package router

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/blog-api/internal/config"
	"github.com/deppfellow/blog-api/internal/handler"
	"github.com/deppfellow/blog-api/internal/metrics"
	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/repository/memstore"
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/deppfellow/blog-api/internal/service"
)

func newTestRouter(t *testing.T) (*echo.Echo, *memstore.Store) {
	t.Helper()
	return newTestRouterWithMetrics(t, nil)
}

func newTestRouterWithMetrics(t *testing.T, m *metrics.Metrics) (*echo.Echo, *memstore.Store) {
	t.Helper()

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
				CORSAllowedMethods: config.DefaultCORSAllowedMethods,
			},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger:  &logger,
		Metrics: m,
	}

	store := memstore.New()
	store.AddUser(model.User{ID: 1, Name: "Ada", Email: "ada@example.com"})
	store.AddUser(model.User{ID: 2, Name: "Linus", Email: "linus@example.com"})

	services := service.NewWithStores(service.Stores{
		Posts:    store.Posts(),
		Comments: store.Comments(),
		Users:    store,
	})

	return NewRouter(s, handler.NewHandlers(s, services)), store
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createPost(t *testing.T, e *echo.Echo, title string, userID int) *httptest.ResponseRecorder {
	t.Helper()
	body := fmt.Sprintf(`{"title":%q,"teaser":"teaser","content":"content","userId":%d}`, title, userID)
	rec := do(e, http.MethodPost, "/posts", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return rec
}

func TestCreateComment(t *testing.T) {
	e, _ := newTestRouter(t)
	createPost(t, e, "Hello", 1)

	rec := do(e, http.MethodPost, "/comments", `{"title":"t","content":"c","userId":2,"postId":1}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"title":"t","content":"c","success":true}`, rec.Body.String())

	post := do(e, http.MethodGet, "/posts/1", "")
	require.Equal(t, http.StatusOK, post.Code)
	assert.Contains(t, post.Body.String(), `"comments":[{"id":1,"title":"t","content":"c","author":{"id":2,"name":"Linus","email":"linus@example.com"}}]`)
}

func TestCreateCommentBadInput(t *testing.T) {
	e, _ := newTestRouter(t)
	createPost(t, e, "Hello", 1)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "missing fields",
			body:    `{"title":"t"}`,
			message: "content is required; userId is required; postId is required",
		},
		{
			name:    "unknown post",
			body:    `{"title":"t","content":"c","userId":1,"postId":99}`,
			message: "The referenced post does not exist",
		},
		{
			name:    "unknown author",
			body:    `{"title":"t","content":"c","userId":99,"postId":1}`,
			message: "The referenced user does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/comments", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error":"`+tt.message+`"`)
			assert.Contains(t, rec.Body.String(), `"success":false`)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/comments", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/comments", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMethodNotAllowed(t *testing.T) {
	e, _ := newTestRouter(t)

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/comments"},
		{http.MethodPut, "/comments"},
		{http.MethodDelete, "/posts"},
		{http.MethodPatch, "/posts/1"},
		{http.MethodPost, "/users"},
	} {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := do(e, tc.method, tc.target, "")
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.JSONEq(t, `{"message":"Method not allowed","success":false}`, rec.Body.String())
		})
	}
}

func TestGetUserByEmail(t *testing.T) {
	e, _ := newTestRouter(t)

	t.Run("missing email", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/users", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error":"email parameter missing"`)
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/users?email=nobody@example.com", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Could not find user with specified email","success":false}`, rec.Body.String())
	})

	t.Run("found", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/users?email=ada@example.com", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"name":"Ada","email":"ada@example.com","success":true}`, rec.Body.String())
	})
}

func TestGetPost(t *testing.T) {
	e, _ := newTestRouter(t)

	t.Run("not found", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/posts/999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Could not find post with specified id","success":false}`, rec.Body.String())
	})

	for _, id := range []string{"abc", "0", "-3", "1.5", "2147483648", "3000000000"} {
		t.Run("invalid id "+id, func(t *testing.T) {
			rec := do(e, http.MethodGet, "/posts/"+id, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error":"id parameter must be a positive integer"`)
		})
	}

	t.Run("largest int4 id is a lookup", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/posts/2147483647", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOutOfRangeBodyIDs(t *testing.T) {
	e, _ := newTestRouter(t)
	createPost(t, e, "Hello", 1)

	tests := []struct {
		name, target, body, field string
	}{
		{"post author", "/posts", `{"title":"t","teaser":"t","content":"c","userId":2147483648}`, "userId"},
		{"comment author", "/comments", `{"title":"t","content":"c","userId":2147483648,"postId":1}`, "userId"},
		{"comment post", "/comments", `{"title":"t","content":"c","userId":1,"postId":3000000000}`, "postId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `{"field":"`+tt.field+`","error":"must not exceed 2147483647"}`)
		})
	}
}

func TestCreatePostRoundTrip(t *testing.T) {
	e, _ := newTestRouter(t)

	created := createPost(t, e, "Hello", 1)
	body := created.Body.String()
	assert.Contains(t, body, `"title":"Hello"`)
	assert.Contains(t, body, `"author":{"id":1,"name":"Ada","email":"ada@example.com"}`)
	assert.Contains(t, body, `"comments":[]`)
	assert.Contains(t, body, `"success":true`)

	first := do(e, http.MethodGet, "/posts/1", "")
	second := do(e, http.MethodGet, "/posts/1", "")

	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, body, first.Body.String())
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestCreatePostBadInput(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodPost, "/posts", `{"title":"t","teaser":"t"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `{"field":"content","error":"is required"}`)
	assert.Contains(t, rec.Body.String(), `{"field":"userId","error":"is required"}`)

	rec = do(e, http.MethodPost, "/posts", `{"title":"t","teaser":"t","content":"c","userId":"one"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/posts", `{"title":"t","teaser":"t","content":"c","userId":42}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "The referenced user does not exist")
}

func TestListPosts(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodGet, "/posts", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	createPost(t, e, "first", 1)
	createPost(t, e, "second", 2)

	rec = do(e, http.MethodGet, "/posts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "["))
	assert.Less(t, strings.Index(body, `"title":"second"`), strings.Index(body, `"title":"first"`))
}

func TestStoreFailure(t *testing.T) {
	e, store := newTestRouter(t)
	store.Err = errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")

	tests := []struct {
		method, target, body, message string
	}{
		{http.MethodGet, "/posts", "", "Error retrieving the posts"},
		{http.MethodGet, "/posts/1", "", "Error retrieving the post"},
		{http.MethodPost, "/posts", `{"title":"t","teaser":"t","content":"c","userId":1}`, "Error creating the post"},
		{http.MethodPost, "/comments", `{"title":"t","content":"c","userId":1,"postId":1}`, "Error creating the comment"},
		{http.MethodGet, "/users?email=ada@example.com", "", "Error retrieving the user"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := do(e, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"`+tt.message+`","success":false}`, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Route not found","success":false}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	e, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/posts", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
}

func TestSystemRoutes(t *testing.T) {
	e, _ := newTestRouter(t)

	t.Run("openapi document", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/static/openapi.json", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"openapi": "3.0.3"`)
	})

	t.Run("docs ui", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/docs", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
		assert.Contains(t, rec.Body.String(), "/static/openapi.json")
	})

	t.Run("status without database", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/status", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
	})

	t.Run("request id header", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/posts", "")
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})
}

func TestMetrics(t *testing.T) {
	e, _ := newTestRouterWithMetrics(t, metrics.New())

	do(e, http.MethodGet, "/posts/42", "")
	do(e, http.MethodGet, "/posts/42", "")
	createPost(t, e, "Counted", 1)
	do(e, http.MethodGet, "/nope", "")

	rec := do(e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	out := rec.Body.String()
	assert.Contains(t, out, `blog_api_http_requests_total{method="GET",route="/posts/:id",status="404"} 2`)
	assert.Contains(t, out, `blog_api_http_requests_total{method="POST",route="/posts",status="201"} 1`)
	assert.Contains(t, out, `route="unmatched",status="404"} 1`)
	assert.NotContains(t, out, `route="/metrics"`)
	assert.NotContains(t, out, `route="/nope"`)
}

func TestMetricsDisabled(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
