// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskboard/config"
	"taskboard/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Session tokens are signed with HS256 and carry the user id as the subject claim.
type jwtService struct {
	secret string        // Secret key for signing session tokens.
	ttl    time.Duration // Absolute session lifetime.
}

// NewJWTService is the constructor for jwtService.
// It refuses to start without a signing secret; there is no fallback default.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session signing secret must be provided")
	}

	ttl := cfg.Session.TTL
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}

	return &jwtService{
		secret: cfg.Session.Secret,
		ttl:    ttl,
	}, nil
}

// Generate creates a new signed session token for the given user.
func (s *jwtService) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate checks the signature and expiry of a session token string.
// All failure modes (malformed, expired, bad signature) surface as an error;
// callers treat them uniformly as an invalid session.
func (s *jwtService) Validate(tokenString string) (*service.SessionClaims, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.New("invalid subject claim")
	}

	sessionClaims := &service.SessionClaims{UserID: userID}
	if claims.ExpiresAt != nil {
		sessionClaims.ExpiresAt = claims.ExpiresAt.Time
	}

	return sessionClaims, nil
}

// SessionTTL returns the configured session lifetime.
func (s *jwtService) SessionTTL() time.Duration {
	return s.ttl
}
