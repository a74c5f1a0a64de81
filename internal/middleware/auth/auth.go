package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/morcel/product-catalog/internal/tokens"
)

const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// RequireAuth verifies the bearer token and puts the identity claims on the
// echo context.
func RequireAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return err
			}
			claims, err := tokens.ParseAccessToken(raw, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			setUserContext(c, claims)
			return next(c)
		}
	}
}

// RequireAdmin is RequireAuth plus an admin role check.
func RequireAdmin(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAuth(secret)(func(c echo.Context) error {
			if role, _ := c.Get(ContextRole).(string); role != "admin" {
				return echo.NewHTTPError(http.StatusForbidden, "admin role required")
			}
			return next(c)
		})
	}
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
	}
	return strings.TrimPrefix(header, prefix), nil
}

func setUserContext(c echo.Context, claims *tokens.AccessClaims) {
	c.Set(ContextUsername, claims.Username)
	c.Set(ContextRole, claims.Role)
}
