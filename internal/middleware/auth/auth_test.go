package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/morcel/product-catalog/internal/tokens"
)

var testSecret = []byte("test-secret")

func callWith(t *testing.T, mw echo.MiddlewareFunc, authorization string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return rec, c, handler(c)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	_, _, err := callWith(t, RequireAuth(testSecret), "")

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAuthBadToken(t *testing.T) {
	_, _, err := callWith(t, RequireAuth(testSecret), "Bearer garbage")

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	raw, err := tokens.SignAccessToken("alice", "user", testSecret, -time.Minute)
	require.NoError(t, err)

	_, _, err = callWith(t, RequireAuth(testSecret), "Bearer "+raw)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAuthSetsIdentity(t *testing.T) {
	raw, err := tokens.SignAccessToken("alice", "user", testSecret, time.Hour)
	require.NoError(t, err)

	rec, c, err := callWith(t, RequireAuth(testSecret), "Bearer "+raw)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice", c.Get(ContextUsername))
	require.Equal(t, "user", c.Get(ContextRole))
}

func TestRequireAdminRejectsUserRole(t *testing.T) {
	raw, err := tokens.SignAccessToken("alice", "user", testSecret, time.Hour)
	require.NoError(t, err)

	_, _, err = callWith(t, RequireAdmin(testSecret), "Bearer "+raw)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusForbidden, he.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	raw, err := tokens.SignAccessToken("root", "admin", testSecret, time.Hour)
	require.NoError(t, err)

	rec, _, err := callWith(t, RequireAdmin(testSecret), "Bearer "+raw)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
}
