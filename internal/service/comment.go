package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/blog-api/internal/model"
)

type CommentStore interface {
	Create(ctx context.Context, c model.NewComment) (*model.Comment, error)
}

type CommentService struct {
	comments CommentStore
}

func NewCommentService(comments CommentStore) *CommentService {
	return &CommentService{
		comments: comments,
	}
}

// CreateComment persists a comment and returns {id, title, content}.
// An unknown post or author is reported as a 400.
func (s *CommentService) CreateComment(ctx context.Context, req *model.CreateCommentRequest) (*model.Comment, error) {
	comment, err := s.comments.Create(ctx, model.NewComment{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.UserID,
		PostID:   req.PostID,
	})
	if err != nil {
		return nil, storeError(err, "Error creating the comment")
	}

	zerolog.Ctx(ctx).Info().
		Int("comment_id", comment.ID).
		Int("post_id", req.PostID).
		Msg("comment created")

	return comment, nil
}
