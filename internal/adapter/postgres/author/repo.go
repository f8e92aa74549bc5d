// Package author implements the Author repository using PostgreSQL.
package author

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// Repo provides author persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new author repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const authorColumns = `id, username, name, email, created_at`

const createSQL = `
INSERT INTO authors (id, username, name, email, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + authorColumns

const getByIDSQL = `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

const getByUsernameSQL = `SELECT ` + authorColumns + ` FROM authors WHERE username = $1`

const getCredentialsSQL = `
SELECT ` + authorColumns + `, password_hash
FROM authors
WHERE username = $1`

type row struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

type credentialsRow struct {
	row
	PasswordHash string `db:"password_hash"`
}

// Create inserts a new author with the given password hash.
// Returns domain.ErrAlreadyExists if the username or email is taken.
func (r *Repo) Create(ctx context.Context, a domain.Author, passwordHash string) (domain.Author, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	var out row
	err := pgxscan.Get(ctx, q, &out, createSQL, a.ID, a.Username, a.Name, a.Email, passwordHash, a.CreatedAt)
	if err != nil {
		return domain.Author{}, postgres.MapError(err, "author", a.ID)
	}

	return toDomain(out), nil
}

// GetByID returns an author by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Author, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	if err := pgxscan.Get(ctx, q, &out, getByIDSQL, id); err != nil {
		return domain.Author{}, postgres.MapError(err, "author", id)
	}

	return toDomain(out), nil
}

// GetByUsername returns an author by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (domain.Author, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	if err := pgxscan.Get(ctx, q, &out, getByUsernameSQL, username); err != nil {
		return domain.Author{}, postgres.MapError(err, "author", uuid.Nil)
	}

	return toDomain(out), nil
}

// GetCredentials returns an author together with the stored password hash.
func (r *Repo) GetCredentials(ctx context.Context, username string) (domain.Author, string, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out credentialsRow
	if err := pgxscan.Get(ctx, q, &out, getCredentialsSQL, username); err != nil {
		return domain.Author{}, "", postgres.MapError(err, "author", uuid.Nil)
	}

	return toDomain(out.row), out.PasswordHash, nil
}

func toDomain(r row) domain.Author {
	return domain.Author{
		ID:        r.ID,
		Username:  r.Username,
		Name:      r.Name,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
	}
}
