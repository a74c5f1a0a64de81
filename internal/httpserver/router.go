package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/morcel/product-catalog/internal/middleware/auth"
)

type Deps struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	JWTSecret       []byte
}

// Register wires the route table. Auth endpoints and catalog reads are
// public; user management needs a valid token and mutations need admin.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/login", d.AuthHandler.Login)
	authGroup.POST("/register", d.AuthHandler.Register)

	users := api.Group("/users", auth.RequireAuth(d.JWTSecret))
	users.GET("", d.UserHandler.GetUsers)
	users.GET("/:id", d.UserHandler.GetUser)
	users.POST("", d.UserHandler.CreateUser)
	users.PUT("/:id", d.UserHandler.UpdateUser)
	users.DELETE("/:id", d.UserHandler.DeleteUser)

	categories := api.Group("/categories")
	categories.GET("", d.CategoryHandler.GetCategories)
	categories.GET("/:id", d.CategoryHandler.GetCategory)

	categoriesAdmin := categories.Group("", auth.RequireAdmin(d.JWTSecret))
	categoriesAdmin.POST("", d.CategoryHandler.CreateCategory)
	categoriesAdmin.PUT("/:id", d.CategoryHandler.UpdateCategory)
	categoriesAdmin.DELETE("/:id", d.CategoryHandler.DeleteCategory)

	products := api.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/search", d.ProductHandler.SearchProducts)
	products.GET("/price-range", d.ProductHandler.GetProductsByPriceRange)
	products.GET("/category/:categoryId", d.ProductHandler.GetProductsByCategory)
	products.GET("/:id", d.ProductHandler.GetProduct)

	productsAdmin := products.Group("", auth.RequireAdmin(d.JWTSecret))
	productsAdmin.POST("", d.ProductHandler.CreateProduct)
	productsAdmin.PUT("/:id", d.ProductHandler.UpdateProduct)
	productsAdmin.DELETE("/:id", d.ProductHandler.DeleteProduct)
}
