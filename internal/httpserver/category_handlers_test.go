package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/morcel/product-catalog/internal/models"
)

func TestCreateCategory(t *testing.T) {
	te := newEnv(t)

	c, rec := te.request(t, http.MethodPost, "/api/categories",
		map[string]string{"name": "Clothing", "description": "Apparel"})
	require.NoError(t, te.categoryHandler.CreateCategory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	created := decodeBody[models.Category](t, rec)
	require.NotZero(t, created.ID)
	require.Equal(t, "Clothing", created.Name)
}

func TestCreateCategoryMissingName(t *testing.T) {
	te := newEnv(t)

	c, rec := te.request(t, http.MethodPost, "/api/categories",
		map[string]string{"description": "nameless"})
	require.NoError(t, te.categoryHandler.CreateCategory(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCategories(t *testing.T) {
	te := newEnv(t)

	te.seedCategory(t, "Clothing")
	te.seedCategory(t, "Books")

	c, rec := te.request(t, http.MethodGet, "/api/categories", nil)
	require.NoError(t, te.categoryHandler.GetCategories(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[[]models.Category](t, rec), 2)
}

func TestGetCategory(t *testing.T) {
	te := newEnv(t)

	category := te.seedCategory(t, "Clothing")

	c, rec := te.request(t, http.MethodGet, "/api/categories/1", nil)
	withID(c, "id", "1")
	require.NoError(t, te.categoryHandler.GetCategory(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, category.Name, decodeBody[models.Category](t, rec).Name)

	c, rec = te.request(t, http.MethodGet, "/api/categories/42", nil)
	withID(c, "id", "42")
	require.NoError(t, te.categoryHandler.GetCategory(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCategory(t *testing.T) {
	te := newEnv(t)

	te.seedCategory(t, "Clothing")

	c, rec := te.request(t, http.MethodPut, "/api/categories/1",
		map[string]string{"name": "Apparel", "description": "renamed"})
	withID(c, "id", "1")
	require.NoError(t, te.categoryHandler.UpdateCategory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeBody[models.Category](t, rec)
	require.Equal(t, "Apparel", updated.Name)
	require.Equal(t, "renamed", updated.Description)

	c, rec = te.request(t, http.MethodPut, "/api/categories/42",
		map[string]string{"name": "Apparel"})
	withID(c, "id", "42")
	require.NoError(t, te.categoryHandler.UpdateCategory(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCategory(t *testing.T) {
	te := newEnv(t)

	te.seedCategory(t, "Clothing")

	c, rec := te.request(t, http.MethodDelete, "/api/categories/1", nil)
	withID(c, "id", "1")
	require.NoError(t, te.categoryHandler.DeleteCategory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = te.request(t, http.MethodDelete, "/api/categories/1", nil)
	withID(c, "id", "1")
	require.NoError(t, te.categoryHandler.DeleteCategory(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
