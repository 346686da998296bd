// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tangoshop/internal/delivery/http/middleware"
	"tangoshop/internal/delivery/http/router/handler"
	"tangoshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ResellerHandler     *handler.ResellerHandler
	SupplierHandler     *handler.SupplierHandler
	CategoryHandler     *handler.CategoryHandler
	ProductHandler      *handler.ProductHandler
	FavoriteHandler     *handler.FavoriteHandler
	ReviewHandler       *handler.ReviewHandler
	NotificationHandler *handler.NotificationHandler
	SearchHandler       *handler.SearchHandler
	CatalogHandler      *handler.CatalogHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authn := r.params.AuthMiddleware.Authenticate
	resellerOnly := r.params.AuthMiddleware.RequireRole(string(entity.RoleReseller))
	supplierOnly := r.params.AuthMiddleware.RequireRole(string(entity.RoleSupplier))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/reseller", r.params.AuthHandler.RegisterReseller)
		authGroup.POST("/register/supplier", r.params.AuthHandler.RegisterSupplier)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
		authGroup.POST("/refresh-token", r.params.AuthHandler.RefreshToken)
		authGroup.POST("/forgot-password", r.params.AuthHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.params.AuthHandler.ResetPassword)
	}

	// Reseller routes. The public listing endpoints coexist with the
	// authenticated profile endpoints under the same group.
	resellerGroup := e.Group("/resellers")
	{
		resellerGroup.GET("", r.params.ResellerHandler.List)
		resellerGroup.GET("/profile", r.params.ResellerHandler.GetProfile, authn, resellerOnly)
		resellerGroup.PUT("/profile", r.params.ResellerHandler.UpdateProfile, authn, resellerOnly)
		resellerGroup.PUT("/account/deactivate", r.params.ResellerHandler.Deactivate, authn, resellerOnly)
		resellerGroup.GET("/:id", r.params.ResellerHandler.GetByID)
	}

	// Supplier routes
	supplierGroup := e.Group("/suppliers")
	{
		supplierGroup.GET("", r.params.SupplierHandler.List)
		supplierGroup.GET("/profile", r.params.SupplierHandler.GetProfile, authn, supplierOnly)
		supplierGroup.PUT("/profile", r.params.SupplierHandler.UpdateProfile, authn, supplierOnly)
		supplierGroup.GET("/:id", r.params.SupplierHandler.GetByID)
		supplierGroup.GET("/:id/products", r.params.SupplierHandler.ListProducts)
		supplierGroup.GET("/:id/stats", r.params.SupplierHandler.GetStats)
		supplierGroup.GET("/:id/reviews", r.params.SupplierHandler.GetReviews)
		supplierGroup.GET("/:id/resellers", r.params.SupplierHandler.GetResellers)
	}

	// Category routes
	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", r.params.CategoryHandler.List)
		categoryGroup.GET("/popular", r.params.CategoryHandler.Popular)
		categoryGroup.GET("/:id", r.params.CategoryHandler.GetByID)
		categoryGroup.GET("/:id/products", r.params.CategoryHandler.Products)
	}

	// Product routes. Reads are public, writes require the supplier role.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.params.ProductHandler.List)
		productGroup.GET("/search", r.params.ProductHandler.Search)
		productGroup.GET("/top-rated", r.params.ProductHandler.TopRated)
		productGroup.GET("/recent", r.params.ProductHandler.Recent)
		productGroup.GET("/:id", r.params.ProductHandler.GetByID)
		productGroup.POST("", r.params.ProductHandler.Create, authn, supplierOnly)
		productGroup.PUT("/:id", r.params.ProductHandler.Update, authn, supplierOnly)
		productGroup.DELETE("/:id", r.params.ProductHandler.Delete, authn, supplierOnly)
		productGroup.POST("/:id/image", r.params.ProductHandler.UploadImage, authn, supplierOnly)
	}

	// Favorite routes, reseller only
	favoriteGroup := e.Group("/favorites", authn, resellerOnly)
	{
		favoriteGroup.POST("", r.params.FavoriteHandler.Add)
		favoriteGroup.GET("", r.params.FavoriteHandler.List)
		favoriteGroup.GET("/by-category", r.params.FavoriteHandler.ListByCategory)
		favoriteGroup.DELETE("/:productId", r.params.FavoriteHandler.Remove)
		favoriteGroup.GET("/:productId/markup", r.params.FavoriteHandler.GetMarkup)
		favoriteGroup.PUT("/:productId/markup", r.params.FavoriteHandler.UpdateMarkup)
	}

	// Review routes
	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.GET("/product/:productId", r.params.ReviewHandler.ListByProduct)
		reviewGroup.POST("", r.params.ReviewHandler.Create, authn, resellerOnly)
		reviewGroup.GET("/user/me", r.params.ReviewHandler.ListMine, authn, resellerOnly)
		reviewGroup.PUT("/:id", r.params.ReviewHandler.Update, authn, resellerOnly)
		reviewGroup.DELETE("/:id", r.params.ReviewHandler.Delete, authn, resellerOnly)
		reviewGroup.POST("/:id/like", r.params.ReviewHandler.Like, authn)
	}

	// Notification routes, any authenticated role
	notificationGroup := e.Group("/notifications", authn)
	{
		notificationGroup.GET("", r.params.NotificationHandler.List)
		notificationGroup.PUT("/read-all", r.params.NotificationHandler.MarkAllRead)
		notificationGroup.PUT("/:id/read", r.params.NotificationHandler.MarkRead)
		notificationGroup.DELETE("/:id", r.params.NotificationHandler.Delete)
	}

	// Search routes
	searchGroup := e.Group("/search")
	{
		searchGroup.GET("/advanced", r.params.SearchHandler.Advanced)
		searchGroup.GET("/filters", r.params.SearchHandler.Filters)
		searchGroup.GET("/products/:id/related", r.params.SearchHandler.Related)
		searchGroup.GET("/resellers/:id/favorite-suppliers", r.params.SearchHandler.FavoriteSuppliers)
	}

	// Catalog generation, reseller only
	e.POST("/catalog/generate", r.params.CatalogHandler.Generate, authn, resellerOnly)
}
