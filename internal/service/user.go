package service

import (
	"context"

	"github.com/deppfellow/blog-api/internal/errs"
	"github.com/deppfellow/blog-api/internal/model"
)

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{
		users: users,
	}
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, storeError(err, "Error retrieving the user")
	}

	if user == nil {
		code := "USER_NOT_FOUND"
		return nil, errs.NewNotFoundError("Could not find user with specified email", true, &code)
	}

	return user, nil
}
