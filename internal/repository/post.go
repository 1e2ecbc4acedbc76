package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/deppfellow/blog-api/internal/server"
)

type PostRepository struct {
	server *server.Server
}

func NewPostRepository(s *server.Server) *PostRepository {
	return &PostRepository{server: s}
}

// postColumns selects one full post projection per row: the author and
// every comment (with its author) are aggregated into json columns so a
// single statement returns the whole graph.
const postColumns = `
	p.id,
	p.title,
	p.teaser,
	p.content,
	p.creation_date,
	json_build_object('id', u.id, 'name', u.name, 'email', u.email) AS author,
	COALESCE(
		(
			SELECT json_agg(
				json_build_object(
					'id', c.id,
					'title', c.title,
					'content', c.content,
					'author', json_build_object('id', cu.id, 'name', cu.name, 'email', cu.email)
				)
				ORDER BY c.id
			)
			FROM comments c
			JOIN users cu ON cu.id = c.author_id
			WHERE c.post_id = p.id
		),
		'[]'::json
	) AS comments`

// rowToPost scans one postColumns row. pgx decodes timestamptz into
// time.Local, so creation dates are moved back to UTC here.
func rowToPost(row pgx.CollectableRow) (model.Post, error) {
	post, err := pgx.RowToStructByName[model.Post](row)
	if err != nil {
		return post, err
	}
	return inUTC(post), nil
}

func inUTC(post model.Post) model.Post {
	post.CreationDate = post.CreationDate.UTC()
	return post
}

func (r *PostRepository) GetByID(ctx context.Context, id int) (*model.Post, error) {
	stmt := `
		SELECT` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = @id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get post query for id=%d: %w", id, err)
	}

	post, err := pgx.CollectExactlyOneRow(rows, rowToPost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to collect post id=%d: %w", id, err)
	}

	return &post, nil
}

// List returns every post, newest first. The result is never nil.
func (r *PostRepository) List(ctx context.Context) ([]model.Post, error) {
	stmt := `
		SELECT` + postColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.creation_date DESC, p.id DESC
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list posts query: %w", err)
	}

	posts, err := pgx.CollectRows(rows, rowToPost)
	if err != nil {
		return nil, fmt.Errorf("failed to collect posts: %w", err)
	}

	if posts == nil {
		posts = []model.Post{}
	}
	return posts, nil
}

// Create inserts the post and returns it joined with its author.
// A missing author surfaces as a foreign key violation.
func (r *PostRepository) Create(ctx context.Context, p model.NewPost) (*model.Post, error) {
	stmt := `
		WITH inserted AS (
			INSERT INTO posts (title, teaser, content, creation_date, author_id)
			VALUES (@title, @teaser, @content, @creation_date, @author_id)
			RETURNING id, title, teaser, content, creation_date, author_id
		)
		SELECT
			i.id,
			i.title,
			i.teaser,
			i.content,
			i.creation_date,
			json_build_object('id', u.id, 'name', u.name, 'email', u.email) AS author,
			'[]'::json AS comments
		FROM inserted i
		JOIN users u ON u.id = i.author_id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"title":         p.Title,
		"teaser":        p.Teaser,
		"content":       p.Content,
		"creation_date": p.CreationDate,
		"author_id":     p.AuthorID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create post query for author_id=%d: %w", p.AuthorID, err)
	}

	post, err := pgx.CollectExactlyOneRow(rows, rowToPost)
	if err != nil {
		return nil, fmt.Errorf("failed to collect created post for author_id=%d: %w", p.AuthorID, err)
	}

	return &post, nil
}
