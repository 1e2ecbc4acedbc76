package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/blog-api/internal/errs"
	"github.com/deppfellow/blog-api/internal/model"
)

type PostStore interface {
	GetByID(ctx context.Context, id int) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Create(ctx context.Context, p model.NewPost) (*model.Post, error)
}

type PostService struct {
	posts PostStore
	now   func() time.Time
}

func NewPostService(posts PostStore) *PostService {
	return &PostService{
		posts: posts,
		now:   time.Now,
	}
}

// GetPost returns the post with its author and comments.
func (s *PostService) GetPost(ctx context.Context, id int) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Error retrieving the post")
	}

	if post == nil {
		code := "POST_NOT_FOUND"
		return nil, errs.NewNotFoundError("Could not find post with specified id", true, &code)
	}

	return post, nil
}

// ListPosts returns all posts, newest first. An empty store yields an empty, non-nil slice.
func (s *PostService) ListPosts(ctx context.Context) ([]model.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, storeError(err, "Error retrieving the posts")
	}

	if posts == nil {
		posts = []model.Post{}
	}
	return posts, nil
}

// CreatePost stamps the creation date (UTC, millisecond precision) and persists the post.
func (s *PostService) CreatePost(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	post, err := s.posts.Create(ctx, model.NewPost{
		Title:        req.Title,
		Teaser:       req.Teaser,
		Content:      req.Content,
		CreationDate: s.now().UTC().Truncate(time.Millisecond),
		AuthorID:     req.UserID,
	})
	if err != nil {
		return nil, storeError(err, "Error creating the post")
	}

	zerolog.Ctx(ctx).Info().
		Int("post_id", post.ID).
		Int("author_id", req.UserID).
		Msg("post created")

	return post, nil
}
