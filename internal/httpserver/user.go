package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/morcel/product-catalog/internal/logging"
	"github.com/morcel/product-catalog/internal/service"
	"github.com/morcel/product-catalog/internal/transport"
)

type UserHandler struct {
	Svc *service.UserService
}

func (h *UserHandler) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_users")

	users, err := h.Svc.GetAll(ctx)
	if err != nil {
		l.Error("get_users_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot list users")
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_user")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "id must be an integer")
	}

	user, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, err.Error())
		}
		l.Error("get_user_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot get user")
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create_user")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "username and password are required")
	}

	user, err := h.Svc.Create(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrUsernameTaken):
			l.Warn("create_user_failed", "status", 400, "reason", err.Error())
			return errorJSON(c, http.StatusBadRequest, err.Error())
		default:
			l.Error("create_user_failed", "status", 500, "error", err)
			return errorJSON(c, http.StatusInternalServerError, "cannot create user")
		}
	}

	// creation deliberately answers 200, not 201
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update_user")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "id must be an integer")
	}

	var req transport.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "username is required")
	}

	user, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, err.Error())
		}
		l.Error("update_user_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot update user")
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete_user")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "id must be an integer")
	}

	// every deletion failure collapses to 404
	if err := h.Svc.Delete(ctx, id); err != nil {
		l.Warn("delete_user_failed", "status", 404, "error", err)
		return errorJSON(c, http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusOK)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
