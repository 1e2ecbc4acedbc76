package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateComment serves POST /comments and answers {id, title, content}.
func (h *CommentHandler) CreateComment(c echo.Context, req *model.CreateCommentRequest) (*model.Comment, error) {
	return h.commentService.CreateComment(c.Request().Context(), req)
}
