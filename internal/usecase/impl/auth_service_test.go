package impl

import (
	"context"
	"testing"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/domain/service"
	mockRepo "taskboard/internal/mocks/repository"
	mockSvc "taskboard/internal/mocks/service"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService, *mockSvc.MockOAuthVerifier) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	mockVerifier := mockSvc.NewMockOAuthVerifier(t)

	srv := NewAuthService(AuthServiceParams{
		UserRepo:      mockUserRepo,
		Hasher:        mockHasher,
		TokenService:  mockTokens,
		OAuthVerifier: mockVerifier,
		Logger:        newTestLogger(),
	})

	return srv, mockUserRepo, mockHasher, mockTokens, mockVerifier
}

func TestAuthService_Register_Success(t *testing.T) {
	srv, mockUserRepo, mockHasher, mockTokens, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(nil, repository.ErrUserNotFound)

	mockHasher.EXPECT().
		Hash("s3cret-pass").
		Return("hashed", nil)

	userID := uuid.New()
	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)

	mockTokens.EXPECT().
		Generate(userID).
		Return("session-token", nil)

	output, err := srv.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	srv, mockUserRepo, _, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	existing := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	mockUserRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(existing, nil)

	output, err := srv.Register(ctx, &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Login_Success(t *testing.T) {
	srv, mockUserRepo, mockHasher, mockTokens, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com", PasswordHash: "hashed"}

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(user, nil)

	mockHasher.EXPECT().
		Check("s3cret-pass", "hashed").
		Return(true)

	mockTokens.EXPECT().
		Generate(userID).
		Return("session-token", nil)

	output, err := srv.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	srv, mockUserRepo, _, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := srv.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	srv, mockUserRepo, mockHasher, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hashed"}
	mockUserRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(user, nil)

	mockHasher.EXPECT().
		Check("wrong", "hashed").
		Return(false)

	output, err := srv.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	// Wrong password and unknown email must be indistinguishable.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_GoogleLogin_ExistingUser(t *testing.T) {
	srv, mockUserRepo, _, mockTokens, mockVerifier := newAuthServiceForTest(t)
	ctx := context.Background()

	identity := &service.OAuthIdentity{
		Subject:       "google-sub-1",
		Email:         "alice@example.com",
		EmailVerified: true,
	}
	mockVerifier.EXPECT().
		VerifyIDToken(ctx, "google-id-token").
		Return(identity, nil)

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com"}
	mockUserRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(user, nil)

	mockTokens.EXPECT().
		Generate(userID).
		Return("session-token", nil)

	output, err := srv.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "google-id-token"})
	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "session-token", output.Token)
}

func TestAuthService_GoogleLogin_FirstSignInCreatesUser(t *testing.T) {
	srv, mockUserRepo, mockHasher, mockTokens, mockVerifier := newAuthServiceForTest(t)
	ctx := context.Background()

	identity := &service.OAuthIdentity{
		Subject: "google-sub-2",
		Email:   "bob@example.com",
	}
	mockVerifier.EXPECT().
		VerifyIDToken(ctx, "google-id-token").
		Return(identity, nil)

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "bob@example.com").
		Return(nil, repository.ErrUserNotFound)

	mockHasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("placeholder-hash", nil)

	userID := uuid.New()
	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)

	mockTokens.EXPECT().
		Generate(userID).
		Return("session-token", nil)

	output, err := srv.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "google-id-token"})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", output.User.Email)
	assert.Equal(t, "placeholder-hash", output.User.PasswordHash)
}

func TestAuthService_GoogleLogin_InvalidToken(t *testing.T) {
	srv, _, _, _, mockVerifier := newAuthServiceForTest(t)
	ctx := context.Background()

	mockVerifier.EXPECT().
		VerifyIDToken(ctx, "bad-token").
		Return(nil, errors.New("token expired"))

	output, err := srv.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "bad-token"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrGoogleTokenInvalid)
}

func TestAuthService_GoogleLogin_MissingEmail(t *testing.T) {
	srv, _, _, _, mockVerifier := newAuthServiceForTest(t)
	ctx := context.Background()

	identity := &service.OAuthIdentity{Subject: "google-sub-3"}
	mockVerifier.EXPECT().
		VerifyIDToken(ctx, "no-email-token").
		Return(identity, nil)

	output, err := srv.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "no-email-token"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrGoogleTokenInvalid)
}
