package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"taskboard/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestVerifier(t *testing.T, validate validateFunc) *Verifier {
	t.Helper()

	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test-client-id"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewVerifier(cfg, logger)
	require.NoError(t, err)

	verifier := svc.(*Verifier)
	verifier.validate = validate

	return verifier
}

func TestVerifier_ValidToken(t *testing.T) {
	verifier := newTestVerifier(t, func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-token", token)
		assert.Equal(t, "test-client-id", audience)

		return &idtoken.Payload{
			Issuer:  "https://accounts.google.com",
			Subject: "google-sub-123",
			Claims: map[string]any{
				"email":          "user@example.com",
				"email_verified": true,
				"name":           "Test User",
			},
		}, nil
	})

	identity, err := verifier.VerifyIDToken(context.Background(), "raw-token")
	require.NoError(t, err)
	assert.Equal(t, "google-sub-123", identity.Subject)
	assert.Equal(t, "user@example.com", identity.Email)
	assert.Equal(t, "Test User", identity.Name)
	assert.True(t, identity.EmailVerified)
}

func TestVerifier_ValidationError(t *testing.T) {
	verifier := newTestVerifier(t, func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("token expired")
	})

	identity, err := verifier.VerifyIDToken(context.Background(), "raw-token")
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestVerifier_WrongIssuer(t *testing.T) {
	verifier := newTestVerifier(t, func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Issuer:  "https://evil.example.com",
			Subject: "google-sub-123",
			Claims:  map[string]any{"email": "user@example.com"},
		}, nil
	})

	identity, err := verifier.VerifyIDToken(context.Background(), "raw-token")
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestVerifier_MissingEmailClaim(t *testing.T) {
	verifier := newTestVerifier(t, func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Issuer:  "accounts.google.com",
			Subject: "google-sub-123",
			Claims:  map[string]any{},
		}, nil
	})

	// The verifier reports what Google asserted; rejecting a payload without
	// an email is the auth use case's decision.
	identity, err := verifier.VerifyIDToken(context.Background(), "raw-token")
	require.NoError(t, err)
	assert.Empty(t, identity.Email)
}

func TestNewVerifier_MissingClientID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewVerifier(&config.Config{}, logger)
	assert.Error(t, err)
	assert.Nil(t, svc)
}
