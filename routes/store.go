package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/iterrvan/tienda-online/controllers/cart"
	orderControllers "github.com/iterrvan/tienda-online/controllers/order"
	productcontroller "github.com/iterrvan/tienda-online/controllers/product"
	"github.com/iterrvan/tienda-online/middleware"
	"github.com/iterrvan/tienda-online/storage"
)

// SetupStoreRoutes registers the "/api/*" endpoints consumed by the
// storefront client. Every request is scoped to a session by the Session
// middleware.
func SetupStoreRoutes(r *gin.Engine, store storage.Storage) {
	api := r.Group("/api")
	api.Use(middleware.Session)
	{
		// ──────────────── Catalog ────────────────
		api.GET("/categories", productcontroller.GetAllCategories(store))
		api.GET("/products", productcontroller.GetProducts(store))
		api.GET("/products/:id", productcontroller.GetProductByID(store))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := api.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(store))
			cartGroup.POST("/add", cartControllers.AddToCart(store))
			cartGroup.PUT("/items/:id", cartControllers.UpdateCartItem(store))
			cartGroup.DELETE("/items/:id", cartControllers.RemoveCartItem(store))
			cartGroup.DELETE("", cartControllers.ClearCart(store))
		}

		// ──────────────── Checkout & Orders ────────────────
		api.POST("/checkout", orderControllers.Checkout(store))
		api.GET("/orders", orderControllers.GetOrders(store))
		api.GET("/orders/:id", orderControllers.GetOrderByID(store))
	}
}
