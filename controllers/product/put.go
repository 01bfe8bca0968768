package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/iterrvan/tienda-online/storage"
)

type UpdateProductInput struct {
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	Price             *decimal.Decimal `json:"price"`
	OriginalPrice     *decimal.Decimal `json:"originalPrice"`
	Image             *string          `json:"image"`
	CategoryID        *uint            `json:"categoryId"`
	InStock           *bool            `json:"inStock"`
	StockQuantity     *int             `json:"stockQuantity" binding:"omitempty,gte=0"`
	LowStockThreshold *int             `json:"lowStockThreshold" binding:"omitempty,gte=0"`
	Rating            *decimal.Decimal `json:"rating"`
	ReviewCount       *int             `json:"reviewCount" binding:"omitempty,gte=0"`
	IsOnSale          *bool            `json:"isOnSale"`
	SalePercentage    *int             `json:"salePercentage" binding:"omitempty,gte=0,lte=100"`
	IsActive          *bool            `json:"isActive"`
}

// UpdateProduct applies a partial edit; omitted fields keep their value.
// PUT /admin/products/:id
func UpdateProduct(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Price != nil && input.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
			return
		}

		product, err := store.UpdateProduct(uint(id), storage.ProductUpdate{
			Name:              input.Name,
			Description:       input.Description,
			Price:             input.Price,
			OriginalPrice:     input.OriginalPrice,
			Image:             input.Image,
			CategoryID:        input.CategoryID,
			InStock:           input.InStock,
			StockQuantity:     input.StockQuantity,
			LowStockThreshold: input.LowStockThreshold,
			Rating:            input.Rating,
			ReviewCount:       input.ReviewCount,
			IsOnSale:          input.IsOnSale,
			SalePercentage:    input.SalePercentage,
			IsActive:          input.IsActive,
		})
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
