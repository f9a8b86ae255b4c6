package service

import "context"

// OAuthIdentity represents a verified identity assertion from an external provider.
type OAuthIdentity struct {
	Subject       string // Provider-specific user ID (e.g., Google's 'sub' claim).
	Email         string // User's email address.
	Name          string // User's display name, if the provider supplies one.
	EmailVerified bool   // Whether the provider has verified the email.
}

// OAuthVerifier defines the interface for validating third-party ID tokens
// against a trusted issuer and expected audience. Implementations are injected
// into the auth use case at construction so tests can substitute a fake.
type OAuthVerifier interface {
	// VerifyIDToken verifies an OAuth ID token and returns the asserted identity.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthIdentity, error)
}
