package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/iterrvan/tienda-online/storage"
)

// GetProducts lists the catalog. Filters are conjunctive: category, name
// search, price bounds and the inactive flag all narrow the same result.
// GET /api/products?categoryId=&search=&minPrice=&maxPrice=
func GetProducts(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter storage.ProductFilter

		if v := c.Query("categoryId"); v != "" {
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid categoryId"})
				return
			}
			categoryID := uint(id)
			filter.CategoryID = &categoryID
		}
		filter.Search = c.Query("search")
		if v := c.Query("minPrice"); v != "" {
			min, err := decimal.NewFromString(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
				return
			}
			filter.MinPrice = &min
		}
		if v := c.Query("maxPrice"); v != "" {
			max, err := decimal.NewFromString(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
				return
			}
			filter.MaxPrice = &max
		}
		if v := c.Query("includeInactive"); v != "" {
			filter.IncludeInactive = v == "true" || v == "1"
		}

		products, err := store.GetProducts(filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
