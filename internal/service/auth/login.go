package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// Login authenticates by username and password and starts a session.
// Returns ErrUnauthorized if the username is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*Result, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	author, hash, err := s.authors.GetCredentials(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get author: %w", err)
	}

	ok, err := s.passwords.Verify(hash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.startSession(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "author logged in",
		slog.String("user_id", author.ID.String()))

	return result, nil
}
