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

type ProductHandler struct {
	Svc *service.ProductService
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	products, err := h.Svc.GetAll(ctx)
	if err != nil {
		l.Error("get_products_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot list products")
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "id must be an integer")
	}

	product, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, err.Error())
		}
		l.Error("get_product_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot get product")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "product name is required")
	}

	product, err := h.Svc.Create(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			l.Warn("create_product_failed", "status", 404, "reason", err.Error())
			return errorJSON(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidation):
			return errorJSON(c, http.StatusBadRequest, err.Error())
		default:
			l.Error("create_product_failed", "status", 500, "error", err)
			return errorJSON(c, http.StatusInternalServerError, "cannot create product")
		}
	}

	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "id must be an integer")
	}

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "product name is required")
	}

	product, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrCategoryNotFound):
			l.Warn("update_product_failed", "status", 404, "reason", err.Error())
			return errorJSON(c, http.StatusNotFound, err.Error())
		default:
			l.Error("update_product_failed", "status", 500, "error", err)
			return errorJSON(c, http.StatusInternalServerError, "cannot update product")
		}
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "id must be an integer")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		l.Warn("delete_product_failed", "status", 404, "error", err)
		return errorJSON(c, http.StatusNotFound, err.Error())
	}
	return c.NoContent(http.StatusOK)
}

func (h *ProductHandler) GetProductsByCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_by_category")

	categoryID, err := parseID(c.Param("categoryId"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "categoryId must be an integer")
	}

	products, err := h.Svc.GetByCategory(ctx, categoryID)
	if err != nil {
		l.Error("get_by_category_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot list products")
	}
	return c.JSON(http.StatusOK, products)
}

// SearchProducts with an empty name parameter returns the whole catalog.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	products, err := h.Svc.Search(ctx, c.QueryParam("name"))
	if err != nil {
		l.Error("search_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot search products")
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductsByPriceRange(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.price_range")

	min, errMin := strconv.ParseFloat(c.QueryParam("minPrice"), 64)
	max, errMax := strconv.ParseFloat(c.QueryParam("maxPrice"), 64)
	if errMin != nil || errMax != nil {
		return errorJSON(c, http.StatusBadRequest, "minPrice and maxPrice are required")
	}

	products, err := h.Svc.GetByPriceRange(ctx, min, max)
	if err != nil {
		l.Error("price_range_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot list products")
	}
	return c.JSON(http.StatusOK, products)
}
