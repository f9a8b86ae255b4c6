// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"taskboard/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleLoginInput carries the Google-issued ID token to exchange for a session.
type GoogleLoginInput struct {
	IDToken string
}

// --- Output DTOs ---

// SessionOutput returns the authenticated user and a signed session token.
// The delivery layer decides how to transport the token (cookie, header).
type SessionOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account from email and password and opens a session.
	Register(ctx context.Context, input *RegisterInput) (*SessionOutput, error)

	// Login verifies email/password credentials and opens a session.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// GoogleLogin verifies a Google ID token and opens a session, creating the
	// account on first sign-in.
	GoogleLogin(ctx context.Context, input *GoogleLoginInput) (*SessionOutput, error)
}
