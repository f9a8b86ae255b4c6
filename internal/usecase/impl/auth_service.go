// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/domain/service"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	oauthVerifier service.OAuthVerifier
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	OAuthVerifier service.OAuthVerifier
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		oauthVerifier: params.OAuthVerifier,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and opens a session for it.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	// The store-level unique index closes the check-then-create race; a
	// concurrent duplicate surfaces here as a conflict error.
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	output, err := srv.openSession(ctx, newUser)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return output, nil
}

// Login verifies credentials and opens a session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", input.Email))

			// Same error as a password mismatch so responses don't reveal
			// which emails are registered.
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	output, err := srv.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return output, nil
}

// GoogleLogin verifies a Google ID token and opens a session, creating the
// account on first sign-in.
func (srv *authService) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Handling Google login")

	identity, err := srv.oauthVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrGoogleTokenInvalid.WrapMessage("failed to verify Google ID token")
	}

	// Accounts are keyed by email, so a token without one cannot be mapped.
	if identity.Email == "" {
		srv.log(ctx).Warn("Google ID token missing email claim", slog.String("subject", identity.Subject))

		return nil, domainerrors.ErrGoogleTokenInvalid.WrapMessage("Google ID token carries no email")
	}

	user, err := srv.findOrCreateGoogleUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	output, err := srv.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Google login completed", slog.Any("userID", user.ID))

	return output, nil
}

// findOrCreateGoogleUser finds the existing account for the verified email or
// creates a fresh one on first sign-in.
func (srv *authService) findOrCreateGoogleUser(ctx context.Context, identity *service.OAuthIdentity) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, identity.Email)
	if err == nil {
		srv.log(ctx).Info("Found existing Google user", slog.Any("userID", user.ID))

		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user for google login")
	}

	srv.log(ctx).Info("Google user not found, creating new user", slog.String("email", identity.Email))

	// OAuth-only accounts get an unguessable placeholder so a password login
	// against them can never succeed.
	placeholderHash, err := srv.hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash placeholder password")
	}

	newUser := &entity.User{
		Email:        identity.Email,
		PasswordHash: placeholderHash,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent first sign-in may have created the account between the
		// lookup and the insert; load and use it.
		if errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
			return srv.userRepo.FindByEmail(ctx, identity.Email)
		}

		return nil, errors.Wrap(err, "failed to create user for google login")
	}

	return newUser, nil
}

// openSession issues a signed session token for the user.
func (srv *authService) openSession(ctx context.Context, user *entity.User) (*usecase.SessionOutput, error) {
	token, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	return &usecase.SessionOutput{
		User:  user,
		Token: token,
	}, nil
}
