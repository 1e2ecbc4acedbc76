package repository

import (
	"github.com/deppfellow/blog-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Posts    *PostRepository
	Comments *CommentRepository
	Users    *UserRepository
}

// NewRepositories constructs the repository container on top of s.DB.Pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Posts:    NewPostRepository(s),
		Comments: NewCommentRepository(s),
		Users:    NewUserRepository(s),
	}
}
