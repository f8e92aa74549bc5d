// Package post implements the post and comment mutations: writing a post,
// editing it as its author and commenting on any post.
package post

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// postRepo defines the post repository interface needed by post service.
type postRepo interface {
	Create(ctx context.Context, p domain.Post) (domain.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Post, error)
	Update(ctx context.Context, p domain.Post) error
}

// commentRepo defines the comment repository interface needed by post service.
type commentRepo interface {
	Create(ctx context.Context, c domain.Comment) (domain.Comment, error)
}

// groupRepo defines the group repository interface needed by post service.
type groupRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Group, error)
	List(ctx context.Context) ([]domain.Group, error)
}

// imageStore defines the upload storage interface needed by post service.
type imageStore interface {
	SaveImage(ctx context.Context, r io.Reader) (string, error)
	Remove(ref string) error
}

// Service implements post and comment mutations.
type Service struct {
	log      *slog.Logger
	posts    postRepo
	comments commentRepo
	groups   groupRepo
	images   imageStore
}

// NewService creates a new post service instance.
func NewService(
	logger *slog.Logger,
	posts postRepo,
	comments commentRepo,
	groups groupRepo,
	images imageStore,
) *Service {
	return &Service{
		log:      logger.With("service", "post"),
		posts:    posts,
		comments: comments,
		groups:   groups,
		images:   images,
	}
}
