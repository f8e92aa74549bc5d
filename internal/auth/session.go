package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// ErrInvalidToken is returned for any session token that fails validation.
var ErrInvalidToken = errors.New("invalid session token")

// SessionManager signs and validates the session cookie value. The token is
// an HS256 JWT whose subject is the author ID and whose jti is the ID of the
// server-side session row, so a logout can revoke it before it expires.
type SessionManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  clockwork.Clock
}

// NewSessionManager creates a new session manager.
// secret must be at least 32 characters for HS256 security.
func NewSessionManager(secret, issuer string, ttl time.Duration, clock clockwork.Clock) *SessionManager {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &SessionManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		clock:  clock,
	}
}

// SessionClaims is the validated content of a session token.
type SessionClaims struct {
	AuthorID  uuid.UUID
	SessionID uuid.UUID
	ExpiresAt time.Time
}

// TTL returns the lifetime given to new sessions.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Now returns the manager's current time.
func (m *SessionManager) Now() time.Time {
	return m.clock.Now()
}

// Issue creates a signed token for the session. It expires at expiresAt.
func (m *SessionManager) Issue(authorID, sessionID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   authorID.String(),
		ID:        sessionID.String(),
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(m.clock.Now()),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Parse validates signature, issuer and expiry of a session token.
func (m *SessionManager) Parse(tokenString string) (SessionClaims, error) {
	if tokenString == "" {
		return SessionClaims{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.clock.Now),
	)
	if err != nil {
		return SessionClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return SessionClaims{}, ErrInvalidToken
	}

	authorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return SessionClaims{}, fmt.Errorf("%w: subject: %v", ErrInvalidToken, err)
	}
	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return SessionClaims{}, fmt.Errorf("%w: jti: %v", ErrInvalidToken, err)
	}

	return SessionClaims{
		AuthorID:  authorID,
		SessionID: sessionID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
