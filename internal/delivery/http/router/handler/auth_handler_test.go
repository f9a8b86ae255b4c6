package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/delivery/http/validator"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	mockUsecase "taskboard/internal/mocks/usecase"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionTTL = 720 * time.Hour

func newAuthHandlerForTest(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	t.Helper()

	mockUC := mockUsecase.NewMockAuthUsecase(t)
	h := &AuthHandler{
		uc:           mockUC,
		cookieName:   "token",
		cookieSecure: true,
		sessionTTL:   testSessionTTL,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return h, mockUC
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set on response", name)

	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h, mockUC := newAuthHandlerForTest(t)

	user := &entity.User{ID: uuid.New(), Email: "new@example.com"}
	mockUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Email: "new@example.com", Password: "secret123"}).
		Return(&usecase.SessionOutput{User: user, Token: "signed-token"}, nil).
		Once()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/register", `{"email":"new@example.com","password":"secret123"}`)

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
	assert.Contains(t, rec.Body.String(), "new@example.com")
	assert.NotContains(t, rec.Body.String(), "password")

	cookie := sessionCookie(t, rec, "token")
	assert.Equal(t, "signed-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int(testSessionTTL.Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h, _ := newAuthHandlerForTest(t)

	c, _ := newJSONContext(http.MethodPost, "/api/auth/register", `{"email":"new@example.com","password":"abc"}`)

	err := h.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	h, _ := newAuthHandlerForTest(t)

	c, _ := newJSONContext(http.MethodPost, "/api/auth/register", `{"email":"not-an-email","password":"secret123"}`)

	err := h.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, mockUC := newAuthHandlerForTest(t)

	user := &entity.User{ID: uuid.New(), Email: "user@example.com"}
	mockUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "user@example.com", Password: "secret123"}).
		Return(&usecase.SessionOutput{User: user, Token: "signed-token"}, nil).
		Once()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"email":"user@example.com","password":"secret123"}`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user@example.com")

	cookie := sessionCookie(t, rec, "token")
	assert.Equal(t, "signed-token", cookie.Value)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, mockUC := newAuthHandlerForTest(t)

	mockUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")).
		Once()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"email":"user@example.com","password":"wrong-pass"}`)

	err := h.Login(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_GoogleLogin_Success(t *testing.T) {
	h, mockUC := newAuthHandlerForTest(t)

	user := &entity.User{ID: uuid.New(), Email: "google@example.com"}
	mockUC.EXPECT().
		GoogleLogin(mock.Anything, &usecase.GoogleLoginInput{IDToken: "google-id-token"}).
		Return(&usecase.SessionOutput{User: user, Token: "signed-token"}, nil).
		Once()

	c, rec := newJSONContext(http.MethodPost, "/api/auth/google", `{"idToken":"google-id-token"}`)

	require.NoError(t, h.GoogleLogin(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "google@example.com")
	assert.Equal(t, "signed-token", sessionCookie(t, rec, "token").Value)
}

func TestAuthHandler_GoogleLogin_MissingToken(t *testing.T) {
	h, _ := newAuthHandlerForTest(t)

	c, _ := newJSONContext(http.MethodPost, "/api/auth/google", `{}`)

	err := h.GoogleLogin(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Logout_ExpiresCookie(t *testing.T) {
	h, _ := newAuthHandlerForTest(t)

	c, rec := newJSONContext(http.MethodGet, "/api/auth/logout", "")

	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "logged out")

	cookie := sessionCookie(t, rec, "token")
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
	assert.True(t, cookie.Expires.Before(time.Now()))
}

func TestAuthHandler_Me_Success(t *testing.T) {
	h, _ := newAuthHandlerForTest(t)

	user := &entity.User{ID: uuid.New(), Email: "user@example.com"}
	c, rec := newJSONContext(http.MethodGet, "/api/auth/me", "")
	deliverycontext.SetCurrentUser(c, user)

	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
	assert.Contains(t, rec.Body.String(), "user@example.com")
}

func TestAuthHandler_Me_NoIdentity(t *testing.T) {
	h, _ := newAuthHandlerForTest(t)

	c, _ := newJSONContext(http.MethodGet, "/api/auth/me", "")

	err := h.Me(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
