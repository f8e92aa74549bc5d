package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/pkg/ctxutil"
)

// Identity is the author behind a valid session.
type Identity struct {
	Author    domain.Author
	SessionID uuid.UUID
}

// Authenticate resolves a session token to its author. The token must be
// well-signed and its session row must exist, be unrevoked and unexpired.
// Returns ErrUnauthorized otherwise.
func (s *Service) Authenticate(ctx context.Context, token string) (Identity, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return Identity{}, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Identity{}, domain.ErrUnauthorized
		}
		return Identity{}, fmt.Errorf("auth.Authenticate: %w", err)
	}
	if session.AuthorID != claims.AuthorID || !session.IsActive(s.tokens.Now()) {
		return Identity{}, domain.ErrUnauthorized
	}

	author, err := s.authors.GetByID(ctx, session.AuthorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Identity{}, domain.ErrUnauthorized
		}
		return Identity{}, fmt.Errorf("auth.Authenticate: %w", err)
	}

	return Identity{Author: author, SessionID: session.ID}, nil
}

// Logout revokes the current session.
// Returns ErrUnauthorized if no session is found in context.
func (s *Service) Logout(ctx context.Context) error {
	sessionID, ok := ctxutil.SessionIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	userID, _ := ctxutil.UserIDFromCtx(ctx)
	s.log.InfoContext(ctx, "author logged out", slog.String("user_id", userID.String()))
	return nil
}

// CleanupExpiredSessions removes expired and revoked sessions.
// Returns the number of sessions deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredSessions(ctx context.Context) (int, error) {
	count, err := s.sessions.DeleteExpired(ctx, s.tokens.Now())
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired sessions", slog.Int("count", count))
	}

	return count, nil
}
