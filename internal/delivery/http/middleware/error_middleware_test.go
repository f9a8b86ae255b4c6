package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "taskboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newErrorMiddlewareForTest() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_AppErrorKeepsStatusAndMessage(t *testing.T) {
	m := newErrorMiddlewareForTest()
	c, rec := newErrorContext()

	m.HandleHTTPError(domainerrors.ErrNotTaskOwner.WrapMessage("task belongs to another user"), c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"user not authorized"}`, rec.Body.String())
}

func TestErrorMiddleware_UnauthenticatedIs401(t *testing.T) {
	m := newErrorMiddlewareForTest()
	c, rec := newErrorContext()

	m.HandleHTTPError(domainerrors.ErrUnauthenticated.WrapMessage("session cookie missing"), c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestErrorMiddleware_WrappedAppErrorStillMaps(t *testing.T) {
	m := newErrorMiddlewareForTest()
	c, rec := newErrorContext()

	wrapped := errors.Wrap(domainerrors.ErrTaskNotFound.WrapMessage("task does not exist"), "usecase failed")
	m.HandleHTTPError(wrapped, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorMiddleware_EchoHTTPErrorPassesThrough(t *testing.T) {
	m := newErrorMiddlewareForTest()
	c, rec := newErrorContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"message":"Method Not Allowed"}`, rec.Body.String())
}

func TestErrorMiddleware_UnexpectedErrorHidesDetail(t *testing.T) {
	m := newErrorMiddlewareForTest()
	c, rec := newErrorContext()

	m.HandleHTTPError(errors.New("pq: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.JSONEq(t, `{"message":"`+domainerrors.ErrInternal.Message()+`"}`, rec.Body.String())
}

func TestErrorMiddleware_CommittedResponseLeftAlone(t *testing.T) {
	m := newErrorMiddlewareForTest()
	c, rec := newErrorContext()

	c.Response().WriteHeader(http.StatusOK)
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
