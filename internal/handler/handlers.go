// Package handler is the first layer after the router.
//
// It binds and validates requests using the validation package,
// calls the service layer and writes the JSON response.
package handler

import (
	"github.com/deppfellow/blog-api/internal/server"
	"github.com/deppfellow/blog-api/internal/service"
	"github.com/deppfellow/blog-api/static"
)

// Handlers groups all HTTP handlers so router setup takes one value.
type Handlers struct {
	Posts    *PostHandler
	Comments *CommentHandler
	Users    *UserHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Posts:    NewPostHandler(services.Posts),
		Comments: NewCommentHandler(services.Comments),
		Users:    NewUserHandler(services.Users),
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(static.FS),
	}
}
