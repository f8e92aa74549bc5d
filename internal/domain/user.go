package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Author is an identity that writes posts and comments and follows other authors.
// Authors are never deleted by the application; removal cascades in the store.
type Author struct {
	ID        uuid.UUID
	Username  string
	Name      string
	Email     string
	CreatedAt time.Time
}

// DisplayName returns Name, falling back to Username when no name was given.
func (a Author) DisplayName() string {
	if strings.TrimSpace(a.Name) == "" {
		return a.Username
	}
	return a.Name
}

// Session is a server-side login session referenced by the session cookie.
type Session struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the session has been revoked (logout).
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsExpired returns true if the session has expired relative to now.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// IsActive reports whether the session can still authenticate requests.
func (s *Session) IsActive(now time.Time) bool {
	return !s.IsRevoked() && !s.IsExpired(now)
}
