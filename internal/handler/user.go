package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetUserByEmail serves GET /users?email=.
func (h *UserHandler) GetUserByEmail(c echo.Context, req *model.GetUserByEmailRequest) (*model.User, error) {
	return h.userService.GetUserByEmail(c.Request().Context(), req.Email)
}
