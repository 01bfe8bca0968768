package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iterrvan/tienda-online/models"
	"github.com/iterrvan/tienda-online/storage"
)

type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Slug        string `json:"slug" binding:"required"`
}

// GetAllCategories lists every category, alphabetical by name.
// GET /api/categories
func GetAllCategories(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := store.GetCategories()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// POST /admin/categories
func CreateCategory(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := models.Category{
			Name:        input.Name,
			Description: input.Description,
			Slug:        input.Slug,
		}
		if err := store.CreateCategory(&category); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}
