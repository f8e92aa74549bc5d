// Package group implements the Group repository using PostgreSQL.
package group

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// Repo provides group persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new group repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const groupColumns = `id, title, slug, description`

const getBySlugSQL = `SELECT ` + groupColumns + ` FROM groups WHERE slug = $1`

const getByIDSQL = `SELECT ` + groupColumns + ` FROM groups WHERE id = $1`

const listSQL = `SELECT ` + groupColumns + ` FROM groups ORDER BY title, slug`

const upsertSQL = `
INSERT INTO groups (id, title, slug, description)
VALUES ($1, $2, $3, $4)
ON CONFLICT (slug) DO UPDATE
SET title = EXCLUDED.title, description = EXCLUDED.description
RETURNING ` + groupColumns + `, (xmax = 0) AS inserted`

type row struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Slug        string    `db:"slug"`
	Description string    `db:"description"`
}

type upsertRow struct {
	row
	Inserted bool `db:"inserted"`
}

// GetBySlug returns the group with the given slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	if err := pgxscan.Get(ctx, q, &out, getBySlugSQL, slug); err != nil {
		return domain.Group{}, postgres.MapError(err, "group", uuid.Nil)
	}

	return toDomain(out), nil
}

// GetByID returns a group by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	if err := pgxscan.Get(ctx, q, &out, getByIDSQL, id); err != nil {
		return domain.Group{}, postgres.MapError(err, "group", id)
	}

	return toDomain(out), nil
}

// List returns all groups ordered by title.
func (r *Repo) List(ctx context.Context) ([]domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, listSQL); err != nil {
		return nil, postgres.MapError(err, "group", uuid.Nil)
	}

	groups := make([]domain.Group, len(rows))
	for i, r := range rows {
		groups[i] = toDomain(r)
	}
	return groups, nil
}

// Upsert creates the group or updates title and description of the group
// with the same slug. Reports whether a new row was inserted.
func (r *Repo) Upsert(ctx context.Context, g domain.Group) (domain.Group, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	var out upsertRow
	if err := pgxscan.Get(ctx, q, &out, upsertSQL, g.ID, g.Title, g.Slug, g.Description); err != nil {
		return domain.Group{}, false, postgres.MapError(err, "group", g.ID)
	}

	return toDomain(out.row), out.Inserted, nil
}

func toDomain(r row) domain.Group {
	return domain.Group{
		ID:          r.ID,
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
	}
}
