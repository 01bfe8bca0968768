package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/iterrvan/tienda-online/storage"
)

type UpdateStockInput struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

// UpdateStock sets the stock level; inStock is derived from it.
// PUT /admin/products/:id/stock
func UpdateStock(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input UpdateStockInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := store.UpdateStock(uint(id), *input.Quantity)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetLowStockProducts lists active products at or below their low-stock
// threshold, emptiest first.
// GET /admin/products/low-stock
func GetLowStockProducts(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := store.GetLowStockProducts()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch low stock products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
