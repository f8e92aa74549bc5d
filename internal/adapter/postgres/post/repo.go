// Package post implements the Post repository using PostgreSQL. Feed queries
// are built with squirrel so one filter type serves every feed.
package post

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new post repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var postColumns = []string{
	"p.id",
	"p.text",
	"p.image",
	"p.created_at",
	"a.id AS author_id",
	"a.username AS author_username",
	"a.name AS author_name",
	"a.email AS author_email",
	"a.created_at AS author_created_at",
	"g.id AS group_id",
	"g.title AS group_title",
	"g.slug AS group_slug",
	"g.description AS group_description",
}

type row struct {
	ID               uuid.UUID  `db:"id"`
	Text             string     `db:"text"`
	Image            *string    `db:"image"`
	CreatedAt        time.Time  `db:"created_at"`
	AuthorID         uuid.UUID  `db:"author_id"`
	AuthorUsername   string     `db:"author_username"`
	AuthorName       string     `db:"author_name"`
	AuthorEmail      string     `db:"author_email"`
	AuthorCreatedAt  time.Time  `db:"author_created_at"`
	GroupID          *uuid.UUID `db:"group_id"`
	GroupTitle       *string    `db:"group_title"`
	GroupSlug        *string    `db:"group_slug"`
	GroupDescription *string    `db:"group_description"`
}

func selectPosts() sq.SelectBuilder {
	return postgres.Builder.
		Select(postColumns...).
		From("posts p").
		Join("authors a ON a.id = p.author_id").
		LeftJoin("groups g ON g.id = p.group_id")
}

func applyFilter(b sq.SelectBuilder, f domain.PostFilter) sq.SelectBuilder {
	if f.AuthorID != nil {
		b = b.Where(sq.Eq{"p.author_id": *f.AuthorID})
	}
	if f.GroupID != nil {
		b = b.Where(sq.Eq{"p.group_id": *f.GroupID})
	}
	if f.FollowedBy != nil {
		b = b.Where(sq.Expr(
			"p.author_id IN (SELECT f.author_id FROM follows f WHERE f.follower_id = ?)",
			*f.FollowedBy,
		))
	}
	return b
}

// Count returns the number of posts matching the filter.
func (r *Repo) Count(ctx context.Context, f domain.PostFilter) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := applyFilter(postgres.Builder.Select("count(*)").From("posts p"), f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "post", uuid.Nil)
	}

	return n, nil
}

// List returns posts matching the filter, newest first, with ties broken by
// id so pages never overlap.
func (r *Repo) List(ctx context.Context, f domain.PostFilter, limit, offset int) ([]domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := applyFilter(selectPosts(), f).
		OrderBy("p.created_at DESC", "p.id DESC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "post", uuid.Nil)
	}

	posts := make([]domain.Post, len(rows))
	for i, r := range rows {
		posts[i] = toDomain(r)
	}
	return posts, nil
}

// GetByID returns a post with its author and group.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := selectPosts().Where(sq.Eq{"p.id": id}).ToSql()
	if err != nil {
		return domain.Post{}, fmt.Errorf("build get query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, query, args...); err != nil {
		return domain.Post{}, postgres.MapError(err, "post", id)
	}

	return toDomain(out), nil
}

// Create inserts a post. ID and CreatedAt are assigned when zero.
// Returns domain.ErrNotFound if the author or group does not exist.
func (r *Repo) Create(ctx context.Context, p domain.Post) (domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	query, args, err := postgres.Builder.
		Insert("posts").
		Columns("id", "text", "image", "author_id", "group_id", "created_at").
		Values(p.ID, p.Text, p.Image, p.Author.ID, p.GroupID(), p.CreatedAt).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return domain.Post{}, fmt.Errorf("build insert query: %w", err)
	}

	if err := q.QueryRow(ctx, query, args...).Scan(&p.CreatedAt); err != nil {
		return domain.Post{}, postgres.MapError(err, "post", p.ID)
	}

	return p, nil
}

// Update rewrites text, image and group of an existing post. Author and
// creation time never change.
func (r *Repo) Update(ctx context.Context, p domain.Post) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder.
		Update("posts").
		Set("text", p.Text).
		Set("image", p.Image).
		Set("group_id", p.GroupID()).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "post", p.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", p.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a post. Its comments are removed by the store cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder.Delete("posts").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "post", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func toDomain(r row) domain.Post {
	p := domain.Post{
		ID:        r.ID,
		Text:      r.Text,
		Image:     r.Image,
		CreatedAt: r.CreatedAt,
		Author: domain.Author{
			ID:        r.AuthorID,
			Username:  r.AuthorUsername,
			Name:      r.AuthorName,
			Email:     r.AuthorEmail,
			CreatedAt: r.AuthorCreatedAt,
		},
	}
	if r.GroupID != nil {
		p.Group = &domain.Group{
			ID:          *r.GroupID,
			Title:       deref(r.GroupTitle),
			Slug:        deref(r.GroupSlug),
			Description: deref(r.GroupDescription),
		}
	}
	return p
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
