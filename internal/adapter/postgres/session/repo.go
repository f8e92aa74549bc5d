// Package session implements the login Session repository using PostgreSQL.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const sessionColumns = `id, author_id, expires_at, created_at, revoked_at`

const createSQL = `
INSERT INTO sessions (id, author_id, expires_at, created_at)
VALUES ($1, $2, $3, $4)`

const getByIDSQL = `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

const revokeSQL = `
UPDATE sessions SET revoked_at = now()
WHERE id = $1 AND revoked_at IS NULL`

const revokeAllByAuthorSQL = `
UPDATE sessions SET revoked_at = now()
WHERE author_id = $1 AND revoked_at IS NULL`

const deleteExpiredSQL = `
DELETE FROM sessions WHERE expires_at <= $1 OR revoked_at IS NOT NULL`

type row struct {
	ID        uuid.UUID  `db:"id"`
	AuthorID  uuid.UUID  `db:"author_id"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

// Create inserts a new session.
// Returns domain.ErrNotFound if the author does not exist.
func (r *Repo) Create(ctx context.Context, s domain.Session) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, createSQL, s.ID, s.AuthorID, s.ExpiresAt, s.CreatedAt); err != nil {
		return postgres.MapError(err, "session", s.ID)
	}
	return nil
}

// GetByID returns a session regardless of its state; callers decide whether
// it is still active.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	if err := pgxscan.Get(ctx, q, &out, getByIDSQL, id); err != nil {
		return domain.Session{}, postgres.MapError(err, "session", id)
	}

	return domain.Session{
		ID:        out.ID,
		AuthorID:  out.AuthorID,
		ExpiresAt: out.ExpiresAt,
		CreatedAt: out.CreatedAt,
		RevokedAt: out.RevokedAt,
	}, nil
}

// Revoke marks a session as revoked.
// Idempotent: revoking an already-revoked session is not an error.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, revokeSQL, id); err != nil {
		return postgres.MapError(err, "session", id)
	}
	return nil
}

// RevokeAllByAuthor revokes every active session of the author.
func (r *Repo) RevokeAllByAuthor(ctx context.Context, authorID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, revokeAllByAuthorSQL, authorID); err != nil {
		return postgres.MapError(err, "session", authorID)
	}
	return nil
}

// DeleteExpired removes sessions that expired before now or were revoked.
// Returns the count of deleted sessions.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteExpiredSQL, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", postgres.MapError(err, "session", uuid.Nil))
	}

	return int(tag.RowsAffected()), nil
}
