package auth

import (
	"testing"
	"time"

	"taskboard/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Session = config.SessionConfig{
		Secret: secret,
		TTL:    ttl,
	}

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestSessionConfig("test_session_secret_key_very_long_for_testing", 30*24*time.Hour))
	require.NoError(t, err)

	userID := uuid.New()

	tokenString, err := svc.Generate(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt, time.Minute)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestSessionConfig("test_session_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	claims, err := svc.Validate("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestSessionConfig("issuer_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestSessionConfig("other_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	tokenString, err := issuer.Generate(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.Validate(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	secret := "test_session_secret_key_very_long_for_testing"
	svc, err := NewJWTService(newTestSessionConfig(secret, time.Hour))
	require.NoError(t, err)

	// Sign an already-expired token with the same secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	tokenString, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_NonUUIDSubject(t *testing.T) {
	secret := "test_session_secret_key_very_long_for_testing"
	svc, err := NewJWTService(newTestSessionConfig(secret, time.Hour))
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestSessionConfig("", time.Hour))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "signing secret")
}

func TestJWTService_SessionTTL(t *testing.T) {
	svc, err := NewJWTService(newTestSessionConfig("test_session_secret_key_very_long_for_testing", 30*24*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 30*24*time.Hour, svc.SessionTTL())
}
