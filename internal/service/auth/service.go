package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yatube-backend/internal/auth"
	"github.com/heartmarshall/yatube-backend/internal/domain"
)

// authorRepo defines the author repository interface needed by auth service.
type authorRepo interface {
	Create(ctx context.Context, a domain.Author, passwordHash string) (domain.Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Author, error)
	GetCredentials(ctx context.Context, username string) (domain.Author, string, error)
}

// sessionRepo defines the session repository interface needed by auth service.
type sessionRepo interface {
	Create(ctx context.Context, s domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Session, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// passwordHasher defines the password hashing interface needed by auth service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) (bool, error)
}

// sessionManager defines the session token interface needed by auth service.
type sessionManager interface {
	Issue(authorID, sessionID uuid.UUID, expiresAt time.Time) (string, error)
	Parse(token string) (auth.SessionClaims, error)
	TTL() time.Duration
	Now() time.Time
}

// Service implements sign-up, login, logout and session authentication.
type Service struct {
	log       *slog.Logger
	authors   authorRepo
	sessions  sessionRepo
	tx        txManager
	passwords passwordHasher
	tokens    sessionManager
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	authors authorRepo,
	sessions sessionRepo,
	tx txManager,
	passwords passwordHasher,
	tokens sessionManager,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		authors:   authors,
		sessions:  sessions,
		tx:        tx,
		passwords: passwords,
		tokens:    tokens,
	}
}

// Result is returned by Signup and Login. Token is the signed cookie value.
type Result struct {
	Token     string
	ExpiresAt time.Time
	Author    domain.Author
}

// startSession stores a new session row for the author and signs its token.
func (s *Service) startSession(ctx context.Context, author domain.Author) (*Result, error) {
	now := s.tokens.Now()
	session := domain.Session{
		ID:        uuid.New(),
		AuthorID:  author.ID,
		ExpiresAt: now.Add(s.tokens.TTL()),
		CreatedAt: now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	token, err := s.tokens.Issue(author.ID, session.ID, session.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	return &Result{Token: token, ExpiresAt: session.ExpiresAt, Author: author}, nil
}
