// Package feed composes the read-only pages of the site: the global, group,
// profile and followed feeds and the post detail view.
package feed

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/cache"
	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// postRepo defines the post repository interface needed by feed service.
type postRepo interface {
	Count(ctx context.Context, f domain.PostFilter) (int, error)
	List(ctx context.Context, f domain.PostFilter, limit, offset int) ([]domain.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Post, error)
}

// authorRepo defines the author repository interface needed by feed service.
type authorRepo interface {
	GetByUsername(ctx context.Context, username string) (domain.Author, error)
}

// groupRepo defines the group repository interface needed by feed service.
type groupRepo interface {
	GetBySlug(ctx context.Context, slug string) (domain.Group, error)
}

// commentRepo defines the comment repository interface needed by feed service.
type commentRepo interface {
	ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error)
}

// followRepo reads follow counters; the follow service satisfies it.
type followRepo interface {
	Stats(ctx context.Context, viewerID, authorID uuid.UUID) (domain.FollowStats, error)
}

// txManager defines the transaction manager interface needed by feed service.
type txManager interface {
	RunInReadTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// IndexCache holds composed global feed pages keyed by requested page number.
type IndexCache = cache.TTL[int, domain.Page[domain.Post]]

// Service builds feed pages.
type Service struct {
	log      *slog.Logger
	posts    postRepo
	authors  authorRepo
	groups   groupRepo
	comments commentRepo
	follows  followRepo
	tx       txManager
	pageSize int
	index    *IndexCache
}

// Deps groups the repositories the feed service reads from.
type Deps struct {
	Posts    postRepo
	Authors  authorRepo
	Groups   groupRepo
	Comments commentRepo
	Follows  followRepo
	Tx       txManager
}

// NewService creates a new feed service instance. index may be nil, in which
// case the global feed is read from the store on every call.
func NewService(logger *slog.Logger, deps Deps, pageSize int, index *IndexCache) *Service {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &Service{
		log:      logger.With("service", "feed"),
		posts:    deps.Posts,
		authors:  deps.Authors,
		groups:   deps.Groups,
		comments: deps.Comments,
		follows:  deps.Follows,
		tx:       deps.Tx,
		pageSize: pageSize,
		index:    index,
	}
}
