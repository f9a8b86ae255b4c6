package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionClaims is the verified content of a session token.
type SessionClaims struct {
	UserID    uuid.UUID // The user this session belongs to.
	ExpiresAt time.Time // Absolute expiry of the token.
}

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are self-contained bearer credentials; the server keeps no session
// state and performs no revocation, so a token stays valid until it expires.
type TokenService interface {
	// Generate creates a new signed session token for the given user with an
	// absolute expiry of SessionTTL from now.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks the signature and expiry of a token string and returns
	// its claims. Malformed, expired and badly signed tokens all fail.
	Validate(tokenString string) (*SessionClaims, error)

	// SessionTTL returns the configured session lifetime.
	SessionTTL() time.Duration
}
