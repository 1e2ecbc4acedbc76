package model

import (
	"strings"

	"github.com/deppfellow/blog-api/internal/validation"
)

// User is the author of posts and comments. Users are never created over HTTP.
type User struct {
	ID    int    `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

// GetUserByEmailRequest is bound from GET /users?email=.
type GetUserByEmailRequest struct {
	Email string `query:"email"`
}

func (r *GetUserByEmailRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return validation.MissingParameter("email")
	}
	return nil
}
