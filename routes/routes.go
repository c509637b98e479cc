package routes

import (
	"StoreHub/controllers"
	"StoreHub/middlewares"
	"StoreHub/repositories"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Controllers struct {
	Auth     *controllers.AuthController
	OAuth    *controllers.OAuthController
	Profile  *controllers.ProfileController
	Product  *controllers.ProductController
	Supplier *controllers.SupplierController
	Category *controllers.CategoryController
	Order    *controllers.OrderController
	Search   *controllers.SearchController
}

// Register wires every route of the catalog API.
func Register(e *echo.Echo, ctrl Controllers, userRepo repositories.UserRepository, staticDir string) {
	e.Use(middlewares.Recovery())
	e.Use(middlewares.ErrorHandler())

	requireAuth := middlewares.RequireAuth(userRepo)
	requireAdmin := middlewares.RequireAdmin()

	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", ctrl.Auth.Register)
	authGroup.POST("/login", ctrl.Auth.Login)
	authGroup.POST("/refresh", ctrl.Auth.RefreshToken)
	authGroup.POST("/logout", ctrl.Auth.Logout)
	authGroup.GET("/login/google", ctrl.OAuth.Login)
	authGroup.GET("/google/callback", ctrl.OAuth.Callback)

	profile := e.Group("/api/profile", requireAuth)
	profile.POST("/avatar", ctrl.Profile.UploadAvatar)
	profile.GET("/avatar", ctrl.Profile.GetAvatar)
	profile.DELETE("/avatar", ctrl.Profile.DeleteAvatar)

	suppliers := e.Group("/api/suppliers")
	suppliers.GET("", ctrl.Supplier.List)
	suppliers.POST("", ctrl.Supplier.Create, requireAuth, requireAdmin)
	suppliers.PUT("/:id", ctrl.Supplier.Update, requireAuth, requireAdmin)
	suppliers.DELETE("/:id", ctrl.Supplier.Delete, requireAuth, requireAdmin)

	categories := e.Group("/api/categories")
	categories.GET("", ctrl.Category.List)
	categories.POST("", ctrl.Category.Create, requireAuth, requireAdmin)
	categories.PUT("/:id", ctrl.Category.Update, requireAuth, requireAdmin)
	categories.DELETE("/:id", ctrl.Category.Delete, requireAuth, requireAdmin)

	products := e.Group("/api/products")
	products.GET("", ctrl.Product.List)
	products.POST("", ctrl.Product.Create, requireAuth, requireAdmin)
	products.PUT("/:id", ctrl.Product.Update, requireAuth, requireAdmin)
	products.DELETE("/:id", ctrl.Product.Delete, requireAuth, requireAdmin)

	orders := e.Group("/api/orders", requireAuth)
	orders.POST("", ctrl.Order.Create)
	orders.GET("", ctrl.Order.List, requireAdmin)
	orders.GET("/:id", ctrl.Order.Get)
	orders.PUT("/:id", ctrl.Order.UpdateStatus, requireAdmin)
	orders.DELETE("/:id", ctrl.Order.Delete, requireAdmin)

	search := e.Group("/api/search")
	search.GET("", ctrl.Search.All)
	search.GET("/products", ctrl.Search.Products)
	search.GET("/suppliers", ctrl.Search.Suppliers)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.Static("/static", staticDir)
}
