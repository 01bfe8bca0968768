package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/iterrvan/tienda-online/models"
	"github.com/iterrvan/tienda-online/storage"
)

type CreateProductInput struct {
	Name              string           `json:"name" binding:"required"`
	Description       string           `json:"description"`
	Price             decimal.Decimal  `json:"price" binding:"required"`
	OriginalPrice     *decimal.Decimal `json:"originalPrice"`
	Image             string           `json:"image"`
	CategoryID        *uint            `json:"categoryId"`
	StockQuantity     int              `json:"stockQuantity" binding:"gte=0"`
	LowStockThreshold *int             `json:"lowStockThreshold" binding:"omitempty,gte=0"`
	Rating            *decimal.Decimal `json:"rating"`
	ReviewCount       int              `json:"reviewCount" binding:"gte=0"`
	IsOnSale          bool             `json:"isOnSale"`
	SalePercentage    *int             `json:"salePercentage" binding:"omitempty,gte=0,lte=100"`
}

// CreateProduct adds a product to the catalog.
// POST /admin/products
func CreateProduct(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
			return
		}

		product := models.Product{
			Name:              input.Name,
			Description:       input.Description,
			Price:             input.Price,
			OriginalPrice:     input.OriginalPrice,
			Image:             input.Image,
			CategoryID:        input.CategoryID,
			InStock:           input.StockQuantity > 0,
			StockQuantity:     input.StockQuantity,
			LowStockThreshold: 5,
			ReviewCount:       input.ReviewCount,
			IsOnSale:          input.IsOnSale,
			SalePercentage:    input.SalePercentage,
			IsActive:          true,
		}
		if input.LowStockThreshold != nil {
			product.LowStockThreshold = *input.LowStockThreshold
		}
		if input.Rating != nil {
			product.Rating = *input.Rating
		}

		if err := store.CreateProduct(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
