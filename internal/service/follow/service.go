// Package follow implements the follow graph: directed author -> author
// edges with at most one edge per ordered pair and no self edges.
package follow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// Conflicts returned by Follow and Unfollow. Each wraps domain.ErrConflict so
// callers may treat them uniformly as a no-op.
var (
	ErrSelfFollow       = fmt.Errorf("%w: cannot follow yourself", domain.ErrConflict)
	ErrAlreadyFollowing = fmt.Errorf("%w: already following", domain.ErrConflict)
	ErrNotFollowing     = fmt.Errorf("%w: not following", domain.ErrConflict)
)

// authorRepo defines the author repository interface needed by follow service.
type authorRepo interface {
	GetByUsername(ctx context.Context, username string) (domain.Author, error)
}

// followRepo defines the follow-edge repository interface needed by follow service.
type followRepo interface {
	Create(ctx context.Context, followerID, authorID uuid.UUID) (bool, error)
	Delete(ctx context.Context, followerID, authorID uuid.UUID) (bool, error)
	Exists(ctx context.Context, followerID, authorID uuid.UUID) (bool, error)
	CountFollowing(ctx context.Context, authorID uuid.UUID) (int, error)
	CountFollowers(ctx context.Context, authorID uuid.UUID) (int, error)
	ListFollowedIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)
	Stats(ctx context.Context, viewerID, authorID uuid.UUID) (domain.FollowStats, error)
}

// Service implements follow graph operations.
type Service struct {
	log     *slog.Logger
	authors authorRepo
	follows followRepo
}

// NewService creates a new follow service instance.
func NewService(logger *slog.Logger, authors authorRepo, follows followRepo) *Service {
	return &Service{
		log:     logger.With("service", "follow"),
		authors: authors,
		follows: follows,
	}
}
