package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/morcel/product-catalog/internal/models"
	"github.com/morcel/product-catalog/internal/repo"
	"github.com/morcel/product-catalog/internal/service"
)

var testSecret = []byte("test-secret")

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open in-memory db")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a pooled second connection would see a different :memory: database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}),
		"failed to migrate tables")
	return db
}

type env struct {
	db         *gorm.DB
	echo       *echo.Echo
	users      *service.UserService
	categories *service.CategoryService
	products   *service.ProductService

	authHandler     *AuthHandler
	userHandler     *UserHandler
	categoryHandler *CategoryHandler
	productHandler  *ProductHandler
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := initTestDB(t)
	store := repo.New(db)

	userSvc := &service.UserService{Repo: store}
	categorySvc := &service.CategoryService{Repo: store}
	productSvc := &service.ProductService{Repo: store, Categories: categorySvc}
	authSvc := &service.AuthService{Users: userSvc, JWTSecret: testSecret, TokenTTL: time.Hour}

	e := echo.New()
	e.Validator = NewValidator()

	return &env{
		db:              db,
		echo:            e,
		users:           userSvc,
		categories:      categorySvc,
		products:        productSvc,
		authHandler:     &AuthHandler{Auth: authSvc},
		userHandler:     &UserHandler{Svc: userSvc},
		categoryHandler: &CategoryHandler{Svc: categorySvc},
		productHandler:  &ProductHandler{Svc: productSvc},
	}
}

// request builds an echo context for a direct handler call.
func (te *env) request(t *testing.T, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return te.echo.NewContext(req, rec), rec
}

func withID(c echo.Context, name, value string) {
	c.SetParamNames(name)
	c.SetParamValues(value)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func errorField(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody[map[string]string](t, rec)
	msg, ok := body["error"]
	require.True(t, ok, "expected 'error' field in body: %s", rec.Body.String())
	return msg
}

func (te *env) seedCategory(t *testing.T, name string) *models.Category {
	t.Helper()

	category := models.Category{Name: name, Description: name + " things"}
	require.NoError(t, te.db.Create(&category).Error)
	return &category
}

func (te *env) seedProduct(t *testing.T, name string, price float64, categoryID uint, createdAt time.Time) *models.Product {
	t.Helper()

	product := models.Product{
		Name:       name,
		Price:      price,
		Quantity:   1,
		CategoryID: categoryID,
		CreatedAt:  createdAt,
	}
	require.NoError(t, te.db.Create(&product).Error)
	return &product
}
