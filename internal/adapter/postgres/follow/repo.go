// Package follow implements the follow-edge repository using PostgreSQL.
// The (follower_id, author_id) primary key and the no-self-follow CHECK are
// the store-level guards; inserts never fail on a duplicate edge.
package follow

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// Repo provides follow-edge persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new follow repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const existsSQL = `
SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND author_id = $2)`

const countFollowingSQL = `SELECT count(*) FROM follows WHERE follower_id = $1`

const countFollowersSQL = `SELECT count(*) FROM follows WHERE author_id = $1`

const listFollowedIDsSQL = `
SELECT author_id FROM follows WHERE follower_id = $1 ORDER BY created_at, author_id`

// statsSQL reads both counters and the viewer flag from one snapshot.
const statsSQL = `
SELECT
    (SELECT count(*) FROM follows WHERE follower_id = $1) AS following,
    (SELECT count(*) FROM follows WHERE author_id = $1)   AS followers,
    EXISTS (SELECT 1 FROM follows WHERE follower_id = $2 AND author_id = $1) AS is_following`

type statsRow struct {
	Following   int  `db:"following"`
	Followers   int  `db:"followers"`
	IsFollowing bool `db:"is_following"`
}

// Create inserts the edge follower -> author. Reports false when the edge
// already existed, including when a concurrent request inserted it first.
// A self edge is rejected by the store with domain.ErrValidation.
func (r *Repo) Create(ctx context.Context, followerID, authorID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder.
		Insert("follows").
		Columns("follower_id", "author_id").
		Values(followerID, authorID).
		Suffix("ON CONFLICT (follower_id, author_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "follow", authorID)
	}

	return tag.RowsAffected() == 1, nil
}

// Delete removes the edge follower -> author. Reports false when there was
// no such edge.
func (r *Repo) Delete(ctx context.Context, followerID, authorID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder.
		Delete("follows").
		Where(sq.Eq{"follower_id": followerID, "author_id": authorID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "follow", authorID)
	}

	return tag.RowsAffected() > 0, nil
}

// Exists reports whether follower follows author.
func (r *Repo) Exists(ctx context.Context, followerID, authorID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, followerID, authorID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "follow", authorID)
	}
	return exists, nil
}

// CountFollowing returns how many authors the given author follows.
func (r *Repo) CountFollowing(ctx context.Context, authorID uuid.UUID) (int, error) {
	return r.count(ctx, countFollowingSQL, authorID)
}

// CountFollowers returns how many authors follow the given author.
func (r *Repo) CountFollowers(ctx context.Context, authorID uuid.UUID) (int, error) {
	return r.count(ctx, countFollowersSQL, authorID)
}

func (r *Repo) count(ctx context.Context, query string, authorID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, query, authorID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "follow", authorID)
	}
	return n, nil
}

// ListFollowedIDs returns the ids of every author the follower follows.
func (r *Repo) ListFollowedIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, q, &ids, listFollowedIDsSQL, followerID); err != nil {
		return nil, postgres.MapError(err, "follow", followerID)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// Stats returns the follow counters of author and whether viewer follows
// them, read by a single statement. uuid.Nil viewer never follows.
func (r *Repo) Stats(ctx context.Context, viewerID, authorID uuid.UUID) (domain.FollowStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var out statsRow
	if err := pgxscan.Get(ctx, q, &out, statsSQL, authorID, viewerID); err != nil {
		return domain.FollowStats{}, postgres.MapError(err, "follow", authorID)
	}

	return domain.FollowStats{
		Following:   out.Following,
		Followers:   out.Followers,
		IsFollowing: out.IsFollowing,
	}, nil
}
