// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps every path to its handler.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blog-api/internal/handler"
	"github.com/deppfellow/blog-api/internal/middleware"
	"github.com/deppfellow/blog-api/internal/server"
)

// NewRouter builds the Echo instance with the global middleware chain,
// the blog routes and the system routes.
//
// Each route accepts only its listed method (plus OPTIONS for CORS);
// anything else is answered with 405 by the global error handler.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Metrics.Collect(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)
	registerBlogRoutes(router, h)

	return router
}

func registerBlogRoutes(r *echo.Echo, h *handler.Handlers) {
	posts := r.Group("/posts")
	posts.GET("", handler.Handle(h.Posts.ListPosts, http.StatusOK))
	posts.POST("", handler.Handle(h.Posts.CreatePost, http.StatusCreated))
	posts.GET("/:id", handler.Handle(h.Posts.GetPost, http.StatusOK))

	r.POST("/comments", handler.Handle(h.Comments.CreateComment, http.StatusCreated))

	r.GET("/users", handler.Handle(h.Users.GetUserByEmail, http.StatusOK))
}
