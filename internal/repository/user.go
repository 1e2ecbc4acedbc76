package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/server"
)

type UserRepository struct {
	server *server.Server
}

func NewUserRepository(s *server.Server) *UserRepository {
	return &UserRepository{server: s}
}

// GetByEmail matches the email exactly (case-sensitive).
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	stmt := `
		SELECT id, name, email
		FROM users
		WHERE email = @email
		LIMIT 1
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get user by email query: %w", err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to collect user: %w", err)
	}

	return &user, nil
}
