package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// Signup creates a new author and logs them in.
// A taken username or email is reported as a validation error on that field.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*Result, error) {
	input.Normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(input.Password1)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	var result *Result
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		author, err := s.authors.Create(txCtx, domain.Author{
			Username: input.Username,
			Name:     input.FullName(),
			Email:    input.Email,
		}, hash)
		if err != nil {
			return fmt.Errorf("create author: %w", err)
		}

		result, err = s.startSession(txCtx, author)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("username", "a user with that username or email already exists")
		}
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	s.log.InfoContext(ctx, "author signed up",
		slog.String("user_id", result.Author.ID.String()))

	return result, nil
}
