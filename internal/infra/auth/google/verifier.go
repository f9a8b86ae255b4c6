// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"taskboard/config"
	"taskboard/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

const (
	issuerHTTPS = "https://accounts.google.com"
	issuerBare  = "accounts.google.com"
)

// validateFunc matches idtoken.Validate, extracted so tests can stub the
// network call to Google's certificate endpoint.
type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// Verifier implements service.OAuthVerifier for Google ID tokens.
// Signature, audience and expiry checks are delegated to the Google API
// client; issuer and email checks happen here.
type Verifier struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewVerifier is the constructor for Verifier.
// It is injected into the auth use case as a service.OAuthVerifier, so tests
// can substitute a fake instead of a process-wide client.
func NewVerifier(cfg *config.Config, logger *slog.Logger) (service.OAuthVerifier, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("google oauth client id must be provided")
	}

	return &Verifier{
		clientID: cfg.GoogleOAuth.ClientID,
		validate: idtoken.Validate,
		logger:   logger,
	}, nil
}

// VerifyIDToken implements service.OAuthVerifier.
func (v *Verifier) VerifyIDToken(ctx context.Context, rawToken string) (*service.OAuthIdentity, error) {
	payload, err := v.validate(ctx, rawToken, v.clientID)
	if err != nil {
		v.logger.Warn("Google ID token validation failed", "error", err)

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if payload.Issuer != issuerHTTPS && payload.Issuer != issuerBare {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	identity := &service.OAuthIdentity{
		Subject: payload.Subject,
		Email:   claimString(payload.Claims, "email"),
		Name:    claimString(payload.Claims, "name"),
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = verified
	}

	v.logger.Debug("Google ID token verified",
		slog.String("subject", identity.Subject),
		slog.String("email", identity.Email))

	return identity, nil
}

func claimString(claims map[string]any, key string) string {
	s, _ := claims[key].(string)

	return s
}
