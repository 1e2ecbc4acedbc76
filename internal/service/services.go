package service

import (
	"github.com/deppfellow/blog-api/internal/repository"
)

type Services struct {
	Posts    *PostService
	Comments *CommentService
	Users    *UserService
}

// Stores is the data access the services need. The pgx repositories
// satisfy it in production; tests pass an in-memory store.
type Stores struct {
	Posts    PostStore
	Comments CommentStore
	Users    UserStore
}

func NewService(repos *repository.Repositories) (*Services, error) {
	return NewWithStores(Stores{
		Posts:    repos.Posts,
		Comments: repos.Comments,
		Users:    repos.Users,
	}), nil
}

func NewWithStores(stores Stores) *Services {
	return &Services{
		Posts:    NewPostService(stores.Posts),
		Comments: NewCommentService(stores.Comments),
		Users:    NewUserService(stores.Users),
	}
}
