package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/deppfellow/blog-api/internal/validation"
)

// Post is the full post projection: author and comments (each with its author).
//
// CreationDate is assigned once by the service when the post is created.
type Post struct {
	ID           int       `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Teaser       string    `json:"teaser" db:"teaser"`
	Content      string    `json:"content" db:"content"`
	CreationDate time.Time `json:"creationDate" db:"creation_date"`
	Author       *User     `json:"author" db:"author"`
	Comments     []Comment `json:"comments" db:"comments"`
}

// NewPost is what the service hands to the data layer on creation.
type NewPost struct {
	Title        string
	Teaser       string
	Content      string
	CreationDate time.Time
	AuthorID     int
}

// GetPostRequest is bound from GET /posts/:id.
//
// The raw path segment is kept as a string so a malformed id is reported
// as a 400 with our own message instead of a binder error.
type GetPostRequest struct {
	RawID string `param:"id"`
	id    int
}

func (r *GetPostRequest) Validate() error {
	raw := strings.TrimSpace(r.RawID)
	if raw == "" {
		return validation.MissingParameter("id")
	}

	// Keys are int4 columns; anything wider can never match a row.
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		return validation.CustomValidationErrors{
			{Field: "id", Message: "parameter must be a positive integer"},
		}
	}

	r.id = int(id)
	return nil
}

// ID is the parsed post id. Only meaningful after Validate succeeded.
func (r *GetPostRequest) ID() int {
	return r.id
}

// ListPostsRequest is bound from GET /posts. It carries no input.
type ListPostsRequest struct{}

func (r *ListPostsRequest) Validate() error {
	return nil
}

// CreatePostRequest is the JSON body of POST /posts.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Teaser  string `json:"teaser" validate:"required"`
	Content string `json:"content" validate:"required"`
	UserID  int    `json:"userId" validate:"required,min=1,max=2147483647"`
}

func (r *CreatePostRequest) Validate() error {
	return validation.Struct(r)
}
