package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
}

func TestLoadWithEnv_YAMLOnly(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
env:
  env: test
  serviceName: taskboard
  log:
    level: debug
http:
  port: 8080
session:
  secret: yaml-secret
  ttl: 720h
  cookieName: token
googleOAuth:
  clientId: test-client-id
`)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "taskboard", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "yaml-secret", cfg.Session.Secret)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.TTL)
	require.NotNil(t, cfg.GoogleOAuth)
	assert.Equal(t, "test-client-id", cfg.GoogleOAuth.ClientID)
}

func TestLoadWithEnv_EnvOverridesCamelCaseKeys(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
session:
  secret: yaml-secret
  cookieName: token
googleOAuth:
  clientId: yaml-client-id
`)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	t.Setenv("SESSION_SECRET", "env-secret")
	t.Setenv("SESSION_COOKIENAME", "sid")
	t.Setenv("GOOGLEOAUTH_CLIENTID", "env-client-id")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Session.Secret)
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, "env-client-id", cfg.GoogleOAuth.ClientID)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	_, err = LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"googleOAuth": map[string]any{"clientId": "x"},
		"session":     map[string]any{"cookieName": "token"},
	}

	assert.Equal(t, "googleOAuth.clientId", canonicalizeEnvKey("GOOGLEOAUTH_CLIENTID", existing))
	assert.Equal(t, "session.cookieName", canonicalizeEnvKey("SESSION_COOKIENAME", existing))
	// Unknown segments fall back to lowercase.
	assert.Equal(t, "session.unknown", canonicalizeEnvKey("SESSION_UNKNOWN", existing))
}
