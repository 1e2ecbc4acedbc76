// Seed tool: applies the schema and inserts demo users, posts and comments
// so the read routes have data. The API itself never creates users.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/blog-api/internal/config"
	"github.com/deppfellow/blog-api/internal/database"
	"github.com/deppfellow/blog-api/internal/logger"
)

var demoUsers = []struct{ name, email string }{
	{"Ada Lovelace", "ada@example.com"},
	{"Linus Torvalds", "linus@example.com"},
	{"Grace Hopper", "grace@example.com"},
}

func main() {
	var numPosts int
	var commentsPerPost int
	var reset bool
	flag.IntVar(&numPosts, "posts", 10, "number of posts to insert")
	flag.IntVar(&commentsPerPost, "comments", 2, "comments per post")
	flag.BoolVar(&reset, "reset", false, "delete existing posts and comments first")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.NewLogger(cfg.Observability)
	ctx := context.Background()
	start := time.Now()

	if err := database.Migrate(ctx, &log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	db, err := database.New(cfg, &log, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if reset {
		if _, err := db.Pool.Exec(ctx, `TRUNCATE comments, posts RESTART IDENTITY`); err != nil {
			log.Fatal().Err(err).Msg("failed to reset tables")
		}
	}

	userIDs, err := seedUsers(ctx, db.Pool)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed users")
	}

	postIDs, err := seedPosts(ctx, db.Pool, userIDs, numPosts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed posts")
	}

	if err := seedComments(ctx, db.Pool, userIDs, postIDs, commentsPerPost); err != nil {
		log.Fatal().Err(err).Msg("failed to seed comments")
	}

	log.Info().
		Int("users", len(userIDs)).
		Int("posts", len(postIDs)).
		Int("comments", len(postIDs)*commentsPerPost).
		Dur("took", time.Since(start).Truncate(time.Millisecond)).
		Msg("seed done")
}

// seedUsers upserts the demo users and returns their ids. Running the tool
// twice keeps one row per email.
func seedUsers(ctx context.Context, pool *pgxpool.Pool) ([]int, error) {
	ids := make([]int, len(demoUsers))

	batch := &pgx.Batch{}
	for i, u := range demoUsers {
		batch.Queue(`
			INSERT INTO users (name, email) VALUES ($1, $2)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, u.name, u.email).QueryRow(func(row pgx.Row) error {
			return row.Scan(&ids[i])
		})
	}

	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		return nil, fmt.Errorf("batch users: %w", err)
	}
	return ids, nil
}

// seedPosts spreads creation dates one hour apart, newest last.
func seedPosts(ctx context.Context, pool *pgxpool.Pool, userIDs []int, n int) ([]int, error) {
	ids := make([]int, n)
	base := time.Now().UTC().Add(-time.Duration(n) * time.Hour).Truncate(time.Millisecond)

	batch := &pgx.Batch{}
	for i := range n {
		batch.Queue(`
			INSERT INTO posts (title, teaser, content, creation_date, author_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`,
			fmt.Sprintf("Post #%d", i+1),
			fmt.Sprintf("Teaser for post #%d", i+1),
			fmt.Sprintf("Content of post #%d.", i+1),
			base.Add(time.Duration(i)*time.Hour),
			userIDs[i%len(userIDs)],
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&ids[i])
		})
	}

	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		return nil, fmt.Errorf("batch posts: %w", err)
	}
	return ids, nil
}

func seedComments(ctx context.Context, pool *pgxpool.Pool, userIDs, postIDs []int, perPost int) error {
	batch := &pgx.Batch{}
	for i, postID := range postIDs {
		for j := range perPost {
			batch.Queue(`
				INSERT INTO comments (title, content, author_id, post_id)
				VALUES ($1, $2, $3, $4)
			`,
				fmt.Sprintf("Comment %d", j+1),
				fmt.Sprintf("Comment %d on post #%d.", j+1, i+1),
				userIDs[(i+j+1)%len(userIDs)],
				postID,
			)
		}
	}

	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("batch comments: %w", err)
	}
	return nil
}
