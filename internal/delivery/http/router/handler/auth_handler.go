// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"taskboard/config"
	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/delivery/http/response"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc           usecase.AuthUsecase
	cookieName   string
	cookieSecure bool
	sessionTTL   time.Duration
	logger       *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Usecase usecase.AuthUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:           params.Usecase,
		cookieName:   params.Config.Session.CookieName,
		cookieSecure: params.Config.Session.CookieSecure,
		sessionTTL:   params.Config.Session.TTL,
		logger:       params.Logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type googleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("failed to bind register request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return c.JSON(http.StatusCreated, response.NewUserResponse(output.User))
}

// Login handles the credential login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("failed to bind login request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return c.JSON(http.StatusOK, response.NewUserResponse(output.User))
}

// GoogleLogin handles login with a Google-issued ID token.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("failed to bind google login request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.GoogleLogin(c.Request().Context(), &usecase.GoogleLoginInput{
		IDToken: req.IDToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return c.JSON(http.StatusOK, response.NewUserResponse(output.User))
}

// Logout expires the session cookie. Tokens are stateless so there is nothing
// to revoke server-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteNoneMode,
	})

	return response.Message(c, http.StatusOK, "logged out")
}

// Me returns the identity attached by the auth middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := deliverycontext.GetCurrentUser(c)
	if !ok {
		return domainerrors.ErrUnauthenticated.WrapMessage("no verified identity on request")
	}

	return c.JSON(http.StatusOK, response.NewUserResponse(user))
}

// setSessionCookie attaches the signed session token to the response.
// SameSite=None lets a cross-origin frontend send it; that requires Secure on
// anything but localhost.
func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteNoneMode,
	})
}
