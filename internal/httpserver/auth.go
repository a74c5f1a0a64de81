package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/morcel/product-catalog/internal/logging"
	"github.com/morcel/product-catalog/internal/service"
	"github.com/morcel/product-catalog/internal/transport"
)

type AuthHandler struct {
	Auth *service.AuthService
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}

	res, err := h.Auth.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("login_failed", "status", 400, "reason", "missing fields")
			return errorJSON(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			l.Warn("login_failed", "status", 401, "username", req.Username)
			return errorJSON(c, http.StatusUnauthorized, err.Error())
		default:
			l.Error("login_failed", "status", 500, "error", err)
			return errorJSON(c, http.StatusInternalServerError, "login failed")
		}
	}

	return c.JSON(http.StatusOK, loginResponse(res))
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "invalid body", "error", err)
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}

	res, err := h.Auth.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrUsernameTaken):
			l.Warn("register_failed", "status", 400, "reason", err.Error())
			return errorJSON(c, http.StatusBadRequest, err.Error())
		default:
			l.Error("register_failed", "status", 500, "error", err)
			return errorJSON(c, http.StatusInternalServerError, "registration failed")
		}
	}

	l.Info("register_success", "username", res.User.Username)
	return c.JSON(http.StatusOK, loginResponse(res))
}

func loginResponse(res *service.LoginResult) transport.LoginResponse {
	return transport.LoginResponse{
		Token:    res.Token,
		Username: res.User.Username,
		Email:    res.User.Email,
		Role:     res.User.Role,
		ID:       res.User.ID,
	}
}
