package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/iterrvan/tienda-online/controllers/product"
	"github.com/iterrvan/tienda-online/middleware"
	"github.com/iterrvan/tienda-online/storage"
)

// SetupAdminRoutes registers the "/admin/*" endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, store storage.Storage) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(store))
			productAdmin.GET("", productcontroller.GetProducts(store))
			productAdmin.GET("/low-stock", productcontroller.GetLowStockProducts(store))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(store))
			productAdmin.PUT("/:id/stock", productcontroller.UpdateStock(store))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(store))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(store))
			categoryAdmin.GET("", productcontroller.GetAllCategories(store))
		}
	}
}
