package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"

	"github.com/morcel/product-catalog/internal/tokens"
)

// newRouter wires the full server surface the way cmd/server does, so the
// middleware chain and error handler are exercised end to end.
func newRouter(t *testing.T) *env {
	t.Helper()

	te := newEnv(t)
	te.echo.HTTPErrorHandler = ErrorHandler
	te.echo.Pre(middleware.RemoveTrailingSlash())
	Register(te.echo, &Deps{
		AuthHandler:     te.authHandler,
		UserHandler:     te.userHandler,
		CategoryHandler: te.categoryHandler,
		ProductHandler:  te.productHandler,
		JWTSecret:       testSecret,
	})
	return te
}

func serve(te *env, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	te.echo.ServeHTTP(rec, req)
	return rec
}

func TestRouterPublicReads(t *testing.T) {
	te := newRouter(t)

	rec := serve(te, http.MethodGet, "/api/products", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(te, http.MethodGet, "/api/categories", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterMutationsNeedAdmin(t *testing.T) {
	te := newRouter(t)

	body := `{"name":"Clothing"}`

	rec := serve(te, http.MethodPost, "/api/categories", "", body)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	require.Contains(t, errBody, "error")

	userToken, err := tokens.SignAccessToken("alice", "user", testSecret, time.Hour)
	require.NoError(t, err)
	rec = serve(te, http.MethodPost, "/api/categories", userToken, body)
	require.Equal(t, http.StatusForbidden, rec.Code)

	adminToken, err := tokens.SignAccessToken("root", "admin", testSecret, time.Hour)
	require.NoError(t, err)
	rec = serve(te, http.MethodPost, "/api/categories", adminToken, body)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterUsersNeedToken(t *testing.T) {
	te := newRouter(t)

	rec := serve(te, http.MethodGet, "/api/users", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	userToken, err := tokens.SignAccessToken("alice", "user", testSecret, time.Hour)
	require.NoError(t, err)
	rec = serve(te, http.MethodGet, "/api/users", userToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterAuthFlow(t *testing.T) {
	te := newRouter(t)

	rec := serve(te, http.MethodPost, "/api/auth/register", "",
		`{"username":"alice","password":"secret","role":"admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var registered map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	token, _ := registered["token"].(string)
	require.NotEmpty(t, token)

	// the issued token must open admin routes
	rec = serve(te, http.MethodPost, "/api/categories", token, `{"name":"Clothing"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(te, http.MethodPost, "/api/auth/login", "",
		`{"username":"alice","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}
