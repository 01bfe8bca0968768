package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/iterrvan/tienda-online/storage"
)

// SetupRoutes wires up the public storefront API and the admin surface.
func SetupRoutes(r *gin.Engine, store storage.Storage) {
	SetupStoreRoutes(r, store)
	SetupAdminRoutes(r, store)
}
