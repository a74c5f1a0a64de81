package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/morcel/product-catalog/internal/logging"
	"github.com/morcel/product-catalog/internal/service"
	"github.com/morcel/product-catalog/internal/transport"
)

type CategoryHandler struct {
	Svc *service.CategoryService
}

func (h *CategoryHandler) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get_categories")

	categories, err := h.Svc.GetAll(ctx)
	if err != nil {
		l.Error("get_categories_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot list categories")
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get_category")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "id must be an integer")
	}

	category, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, err.Error())
		}
		l.Error("get_category_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot get category")
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create_category")

	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "category name is required")
	}

	category, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return errorJSON(c, http.StatusBadRequest, err.Error())
		}
		l.Error("create_category_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot create category")
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update_category")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "id must be an integer")
	}

	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "category name is required")
	}

	category, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, err.Error())
		}
		l.Error("update_category_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot update category")
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete_category")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "id must be an integer")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		l.Warn("delete_category_failed", "status", 404, "error", err)
		return errorJSON(c, http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusOK)
}
