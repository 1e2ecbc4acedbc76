package model

import "github.com/deppfellow/blog-api/internal/validation"

// Comment belongs to exactly one post and one author.
//
// Author is omitted from the creation projection ({id, title, content}).
type Comment struct {
	ID      int    `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`
	Author  *User  `json:"author,omitempty" db:"-"`
}

// NewComment is what the service hands to the data layer on creation.
type NewComment struct {
	Title    string
	Content  string
	AuthorID int
	PostID   int
}

// CreateCommentRequest is the JSON body of POST /comments.
type CreateCommentRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	UserID  int    `json:"userId" validate:"required,min=1,max=2147483647"`
	PostID  int    `json:"postId" validate:"required,min=1,max=2147483647"`
}

func (r *CreateCommentRequest) Validate() error {
	return validation.Struct(r)
}
