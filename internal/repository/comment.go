package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/server"
)

type CommentRepository struct {
	server *server.Server
}

func NewCommentRepository(s *server.Server) *CommentRepository {
	return &CommentRepository{server: s}
}

// Create inserts a comment and returns {id, title, content}.
// Unknown post or author ids surface as foreign key violations.
func (r *CommentRepository) Create(ctx context.Context, c model.NewComment) (*model.Comment, error) {
	stmt := `
		INSERT INTO comments (title, content, author_id, post_id)
		VALUES (@title, @content, @author_id, @post_id)
		RETURNING id, title, content
	`

	var comment model.Comment
	err := r.server.DB.Pool.QueryRow(ctx, stmt, pgx.NamedArgs{
		"title":     c.Title,
		"content":   c.Content,
		"author_id": c.AuthorID,
		"post_id":   c.PostID,
	}).Scan(&comment.ID, &comment.Title, &comment.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment on post_id=%d: %w", c.PostID, err)
	}

	return &comment, nil
}
