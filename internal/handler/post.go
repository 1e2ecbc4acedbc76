package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/service"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// GetPost serves GET /posts/:id.
func (h *PostHandler) GetPost(c echo.Context, req *model.GetPostRequest) (*model.Post, error) {
	return h.postService.GetPost(c.Request().Context(), req.ID())
}

// ListPosts serves GET /posts. The body is a bare array.
func (h *PostHandler) ListPosts(c echo.Context, _ *model.ListPostsRequest) ([]model.Post, error) {
	return h.postService.ListPosts(c.Request().Context())
}

// CreatePost serves POST /posts.
func (h *PostHandler) CreatePost(c echo.Context, req *model.CreatePostRequest) (*model.Post, error) {
	return h.postService.CreatePost(c.Request().Context(), req)
}
