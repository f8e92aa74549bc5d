package follow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

// Follow makes the authenticated author follow the author named username.
// Returns ErrUnauthorized without identity, ErrNotFound for an unknown
// username, ErrSelfFollow or ErrAlreadyFollowing when no edge is created.
func (s *Service) Follow(ctx context.Context, username string) error {
	followerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	author, err := s.authors.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("follow.Follow: %w", err)
	}
	if author.ID == followerID {
		return ErrSelfFollow
	}

	created, err := s.follows.Create(ctx, followerID, author.ID)
	if err != nil {
		// The store CHECK rejects self edges.
		if errors.Is(err, domain.ErrValidation) {
			return ErrSelfFollow
		}
		return fmt.Errorf("follow.Follow: %w", err)
	}
	if !created {
		return ErrAlreadyFollowing
	}

	s.log.InfoContext(ctx, "author followed",
		slog.String("user_id", followerID.String()),
		slog.String("author_id", author.ID.String()))

	return nil
}

// Unfollow removes the edge from the authenticated author to username.
// Returns ErrNotFollowing when there was no edge.
func (s *Service) Unfollow(ctx context.Context, username string) error {
	followerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	author, err := s.authors.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("follow.Unfollow: %w", err)
	}

	deleted, err := s.follows.Delete(ctx, followerID, author.ID)
	if err != nil {
		return fmt.Errorf("follow.Unfollow: %w", err)
	}
	if !deleted {
		return ErrNotFollowing
	}

	s.log.InfoContext(ctx, "author unfollowed",
		slog.String("user_id", followerID.String()),
		slog.String("author_id", author.ID.String()))

	return nil
}

// IsFollowing reports whether follower follows author.
func (s *Service) IsFollowing(ctx context.Context, followerID, authorID uuid.UUID) (bool, error) {
	if followerID == uuid.Nil {
		return false, nil
	}
	ok, err := s.follows.Exists(ctx, followerID, authorID)
	if err != nil {
		return false, fmt.Errorf("follow.IsFollowing: %w", err)
	}
	return ok, nil
}

// Counts returns how many authors authorID follows and how many follow them.
func (s *Service) Counts(ctx context.Context, authorID uuid.UUID) (following, followers int, err error) {
	following, err = s.follows.CountFollowing(ctx, authorID)
	if err != nil {
		return 0, 0, fmt.Errorf("follow.Counts following: %w", err)
	}
	followers, err = s.follows.CountFollowers(ctx, authorID)
	if err != nil {
		return 0, 0, fmt.Errorf("follow.Counts followers: %w", err)
	}
	return following, followers, nil
}

// FollowedAuthors returns the ids of every author that authorID follows.
func (s *Service) FollowedAuthors(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.follows.ListFollowedIDs(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("follow.FollowedAuthors: %w", err)
	}
	return ids, nil
}

// Stats returns counts and the viewer flag from a single read. viewerID may
// be uuid.Nil for anonymous viewers.
func (s *Service) Stats(ctx context.Context, viewerID, authorID uuid.UUID) (domain.FollowStats, error) {
	stats, err := s.follows.Stats(ctx, viewerID, authorID)
	if err != nil {
		return domain.FollowStats{}, fmt.Errorf("follow.Stats: %w", err)
	}
	return stats, nil
}
