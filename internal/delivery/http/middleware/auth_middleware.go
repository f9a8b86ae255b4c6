package middleware

import (
	"log/slog"

	"taskboard/config"
	deliverycontext "taskboard/internal/delivery/context"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthMiddleware authenticates requests from the session cookie. The token is
// validated and the user loaded from the store on every request, so a session
// for a deleted account stops working immediately even though the token
// itself is still unexpired.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	userRepo   repository.UserRepository
	cookieName string
	logger     *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	UserRepo     repository.UserRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   params.TokenService,
		userRepo:   params.UserRepo,
		cookieName: params.Config.Session.CookieName,
		logger:     params.Logger,
	}
}

// Authenticate validates the session cookie and attaches the authenticated
// user to the request context. Every failure mode maps to the same 401 so
// responses don't reveal whether a cookie was absent, malformed or stale.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("session cookie missing")
		}

		claims, err := m.tokenSvc.Validate(cookie.Value)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WrapMessage("session token rejected")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				// Valid token for an account that no longer exists.
				m.logger.Warn("Session for deleted user rejected", slog.Any("userID", claims.UserID))

				return domainerrors.ErrUnauthenticated.WrapMessage("session user no longer exists")
			}

			return errors.Wrap(err, "failed to load session user")
		}

		deliverycontext.SetCurrentUser(c, user)

		return next(c)
	}
}
