// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const createSQL = `
INSERT INTO comments (id, post_id, author_id, text, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at`

const listByPostSQL = `
SELECT c.id, c.post_id, c.text, c.created_at,
       a.id AS author_id, a.username AS author_username, a.name AS author_name,
       a.email AS author_email, a.created_at AS author_created_at
FROM comments c
JOIN authors a ON a.id = c.author_id
WHERE c.post_id = $1
ORDER BY c.created_at DESC, c.id DESC`

const countByPostSQL = `SELECT count(*) FROM comments WHERE post_id = $1`

type row struct {
	ID              uuid.UUID `db:"id"`
	PostID          uuid.UUID `db:"post_id"`
	Text            string    `db:"text"`
	CreatedAt       time.Time `db:"created_at"`
	AuthorID        uuid.UUID `db:"author_id"`
	AuthorUsername  string    `db:"author_username"`
	AuthorName      string    `db:"author_name"`
	AuthorEmail     string    `db:"author_email"`
	AuthorCreatedAt time.Time `db:"author_created_at"`
}

// Create inserts a comment. Returns domain.ErrNotFound if the post or the
// author does not exist.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	err := q.QueryRow(ctx, createSQL, c.ID, c.PostID, c.Author.ID, c.Text, c.CreatedAt).Scan(&c.CreatedAt)
	if err != nil {
		return domain.Comment{}, postgres.MapError(err, "comment", c.ID)
	}

	return c, nil
}

// ListByPost returns the comments of a post, newest first.
func (r *Repo) ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, listByPostSQL, postID); err != nil {
		return nil, postgres.MapError(err, "comment", postID)
	}

	comments := make([]domain.Comment, len(rows))
	for i, r := range rows {
		comments[i] = domain.Comment{
			ID:        r.ID,
			PostID:    r.PostID,
			Text:      r.Text,
			CreatedAt: r.CreatedAt,
			Author: domain.Author{
				ID:        r.AuthorID,
				Username:  r.AuthorUsername,
				Name:      r.AuthorName,
				Email:     r.AuthorEmail,
				CreatedAt: r.AuthorCreatedAt,
			},
		}
	}
	return comments, nil
}

// CountByPost returns the number of comments on a post.
func (r *Repo) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, countByPostSQL, postID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "comment", postID)
	}
	return n, nil
}
