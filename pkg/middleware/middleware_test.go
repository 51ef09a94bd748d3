package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-portal/internal/dto"
	"employee-portal/pkg/database/postgresql"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubResolver struct {
	tokens map[string]*dto.Identity
}

func (r stubResolver) ResolveSession(_ context.Context, token string) (*dto.Identity, error) {
	if identity, ok := r.tokens[token]; ok {
		return identity, nil
	}
	return nil, errors.New("unknown session")
}

func runAuth(t *testing.T, cookie *http.Cookie) (*httptest.ResponseRecorder, *dto.Identity) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *dto.Identity
	mw := NewAuthMiddleware(stubResolver{tokens: map[string]*dto.Identity{
		"good": {UserID: 1, Username: "admin"},
	}}, "session", zap.NewNop())

	err := mw.Auth(func(c echo.Context) error {
		identity, err := IdentityFromContext(c.Request().Context())
		require.NoError(t, err)
		seen = identity
		return c.String(http.StatusOK, "ok")
	})(c)
	require.NoError(t, err)
	return rec, seen
}

func TestAuth_RedirectsWithoutCookie(t *testing.T) {
	rec, seen := runAuth(t, nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get(echo.HeaderLocation))
	assert.Nil(t, seen)
}

func TestAuth_RedirectsOnUnknownSession(t *testing.T) {
	rec, seen := runAuth(t, &http.Cookie{Name: "session", Value: "forged"})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Nil(t, seen)
}

func TestAuth_PassesIdentity(t *testing.T) {
	rec, seen := runAuth(t, &http.Cookie{Name: "session", Value: "good"})
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "admin", seen.Username)
}

func TestUsername_Anonymous(t *testing.T) {
	assert.Equal(t, "", Username(context.Background()))
	assert.Equal(t, "bob", Username(WithIdentity(context.Background(), &dto.Identity{Username: "bob"})))
}

type nopConn struct {
	postgresql.Conn
}

type trackingConnector struct {
	opened, released int
}

func (c *trackingConnector) Connect(context.Context) (postgresql.Conn, func(), error) {
	c.opened++
	return nopConn{}, func() { c.released++ }, nil
}

func TestRequestConnection_ReleasesOnError(t *testing.T) {
	connector := &trackingConnector{}
	mw := RequestConnection(postgresql.NewProviderWithConnector(connector))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := mw(func(c echo.Context) error {
		_, err := postgresql.Acquire(c.Request().Context())
		require.NoError(t, err)
		_, err = postgresql.Acquire(c.Request().Context())
		require.NoError(t, err)
		return errors.New("handler failed")
	})(c)

	assert.Error(t, err)
	assert.Equal(t, 1, connector.opened)
	assert.Equal(t, 1, connector.released)
}

func TestRequestConnection_NoQueryNoConnection(t *testing.T) {
	connector := &trackingConnector{}
	mw := RequestConnection(postgresql.NewProviderWithConnector(connector))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	require.NoError(t, mw(func(c echo.Context) error { return nil })(c))
	assert.Zero(t, connector.opened)
	assert.Zero(t, connector.released)
}
