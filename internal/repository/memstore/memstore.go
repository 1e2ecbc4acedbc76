// Package memstore is an in-memory implementation of the post, comment
// and user stores. It backs the service and router tests.
//
// Referential checks mimic Postgres: inserting with an unknown author
// or post returns a *pgconn.PgError with SQLSTATE 23503, so callers see
// the same errors they would see against the database.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deppfellow/blog-api/internal/model"
)

type storedPost struct {
	model.Post
	authorID int
}

type storedComment struct {
	model.Comment
	authorID int
	postID   int
}

// Store keeps users, posts and comments in maps guarded by a mutex.
type Store struct {
	mu       sync.RWMutex
	users    map[int]model.User
	posts    map[int]storedPost
	comments []storedComment
	nextPost int
	nextComm int

	// Err, when set, is returned by every operation.
	Err error
}

func New() *Store {
	return &Store{
		users:    make(map[int]model.User),
		posts:    make(map[int]storedPost),
		nextPost: 1,
		nextComm: 1,
	}
}

// AddUser stores u as-is. Users are never created through the API.
func (s *Store) AddUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *Store) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.Err != nil {
		return nil, s.Err
	}

	ids := make([]int, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		if u := s.users[id]; u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

// Posts groups the post operations so one Store can satisfy both the
// post and comment store interfaces (they share the Create name).
func (s *Store) Posts() *Posts {
	return &Posts{s: s}
}

// Comments is the comment view of the store.
func (s *Store) Comments() *Comments {
	return &Comments{s: s}
}

type Posts struct {
	s *Store
}

func (p *Posts) GetByID(_ context.Context, id int) (*model.Post, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	if p.s.Err != nil {
		return nil, p.s.Err
	}

	sp, ok := p.s.posts[id]
	if !ok {
		return nil, nil
	}

	post := p.s.project(sp)
	return &post, nil
}

func (p *Posts) List(_ context.Context) ([]model.Post, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	if p.s.Err != nil {
		return nil, p.s.Err
	}

	posts := make([]model.Post, 0, len(p.s.posts))
	for _, sp := range p.s.posts {
		posts = append(posts, p.s.project(sp))
	}

	slices.SortFunc(posts, func(a, b model.Post) int {
		if c := b.CreationDate.Compare(a.CreationDate); c != 0 {
			return c
		}
		return b.ID - a.ID
	})
	return posts, nil
}

func (p *Posts) Create(_ context.Context, np model.NewPost) (*model.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	if p.s.Err != nil {
		return nil, p.s.Err
	}

	if _, ok := p.s.users[np.AuthorID]; !ok {
		return nil, foreignKeyViolation("posts", "author_id", np.AuthorID, "users")
	}

	sp := storedPost{
		Post: model.Post{
			ID:           p.s.nextPost,
			Title:        np.Title,
			Teaser:       np.Teaser,
			Content:      np.Content,
			CreationDate: np.CreationDate,
		},
		authorID: np.AuthorID,
	}
	p.s.posts[sp.ID] = sp
	p.s.nextPost++

	post := p.s.project(sp)
	return &post, nil
}

type Comments struct {
	s *Store
}

func (c *Comments) Create(_ context.Context, nc model.NewComment) (*model.Comment, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	if c.s.Err != nil {
		return nil, c.s.Err
	}

	if _, ok := c.s.users[nc.AuthorID]; !ok {
		return nil, foreignKeyViolation("comments", "author_id", nc.AuthorID, "users")
	}
	if _, ok := c.s.posts[nc.PostID]; !ok {
		return nil, foreignKeyViolation("comments", "post_id", nc.PostID, "posts")
	}

	sc := storedComment{
		Comment: model.Comment{
			ID:      c.s.nextComm,
			Title:   nc.Title,
			Content: nc.Content,
		},
		authorID: nc.AuthorID,
		postID:   nc.PostID,
	}
	c.s.comments = append(c.s.comments, sc)
	c.s.nextComm++

	return &sc.Comment, nil
}

// project builds the full post projection. Callers hold the lock.
func (s *Store) project(sp storedPost) model.Post {
	post := sp.Post

	author := s.users[sp.authorID]
	post.Author = &author

	post.Comments = []model.Comment{}
	for _, sc := range s.comments {
		if sc.postID != sp.ID {
			continue
		}
		comment := sc.Comment
		commentAuthor := s.users[sc.authorID]
		comment.Author = &commentAuthor
		post.Comments = append(post.Comments, comment)
	}

	return post
}

func foreignKeyViolation(table, column string, value int, refTable string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        fmt.Sprintf("insert or update on table %q violates foreign key constraint %q", table, table+"_"+column+"_fkey"),
		Detail:         fmt.Sprintf("Key (%s)=(%d) is not present in table %q.", column, value, refTable),
		TableName:      table,
		ConstraintName: table + "_" + column + "_fkey",
	}
}
