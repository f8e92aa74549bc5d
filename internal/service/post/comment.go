package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

// AddComment appends a comment by the authenticated author to the post
// addressed by username and postID.
func (s *Service) AddComment(ctx context.Context, username string, postID uuid.UUID, input CommentInput) (domain.Comment, error) {
	authorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Comment{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Comment{}, err
	}

	p, err := s.lookup(ctx, username, postID)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("post.AddComment: %w", err)
	}

	c, err := s.comments.Create(ctx, domain.Comment{
		PostID: p.ID,
		Author: domain.Author{ID: authorID, Username: ctxutil.UsernameFromCtx(ctx)},
		Text:   input.Text,
	})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("post.AddComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("user_id", authorID.String()),
		slog.String("post_id", p.ID.String()))

	return c, nil
}
