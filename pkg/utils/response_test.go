package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorResponse_HttpErrorHidesCause(t *testing.T) {
	c, rec := newContext()
	err := apperrors.NewHttpError(http.StatusInternalServerError, "An error occurred", errors.New("pq: secret detail"), nil)

	_ = ErrorResponse(c, err, zap.NewNop())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "An error occurred", rec.Body.String())
}

func TestErrorResponse_NotFound(t *testing.T) {
	c, rec := newContext()

	_ = ErrorResponse(c, apperrors.ErrNotFound, zap.NewNop())

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorResponse_EchoError(t *testing.T) {
	c, rec := newContext()

	_ = ErrorResponse(c, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), zap.NewNop())

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method Not Allowed", rec.Body.String())
}

func TestErrorResponse_Unexpected(t *testing.T) {
	c, rec := newContext()

	_ = ErrorResponse(c, errors.New("boom"), zap.NewNop())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", rec.Body.String())
}

func TestErrorResponse_LogsThroughRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	e := echo.New()
	e.GET("/project/:id", func(c echo.Context) error {
		return ErrorResponse(c, errors.New("boom"), zap.NewNop())
	}, middleware.InjectLogger(zap.New(core)))

	req := httptest.NewRequest(http.MethodGet, "/project/7", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, http.MethodGet, fields["method"])
	assert.Equal(t, "/project/7", fields["path"])
}

func TestComparePasswords(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NoError(t, ComparePasswords(hash, "password123"))
	assert.ErrorIs(t, ComparePasswords(hash, "wrong"), apperrors.ErrInvalidCredentials)

	err = ComparePasswords("not-a-bcrypt-hash", "password123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestHashPassword_RejectsEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}
