package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/iterrvan/tienda-online/middleware"
	"github.com/iterrvan/tienda-online/models"
	"github.com/iterrvan/tienda-online/pricing"
	"github.com/iterrvan/tienda-online/storage"
)

type AddToCartInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateCartItemInput struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

// cartView fetches the session's cart, creating it on first access, and
// attaches totals computed from the live product prices. Every cart endpoint
// responds with this shape so the client always sees the full state.
func cartView(store storage.Storage, sessionID string) (*models.CartWithItems, error) {
	cart, err := store.GetCartBySessionID(sessionID)
	if errors.Is(err, storage.ErrNotFound) {
		created, createErr := store.CreateCart(sessionID)
		if createErr != nil {
			return nil, createErr
		}
		cart = &models.CartWithItems{Cart: *created, Items: []models.CartItemWithProduct{}}
	} else if err != nil {
		return nil, err
	}

	lines := make([]pricing.Line, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, pricing.Line{UnitPrice: item.Product.Price, Quantity: item.Quantity})
	}
	cart.Totals = pricing.Calculate(lines)
	return cart, nil
}

// GET /api/cart
func GetCart(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := cartView(store, middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// AddToCart merges by product: adding a product already in the cart bumps its
// quantity instead of creating a second line.
// POST /api/cart/add
func AddToCart(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		if _, err := store.GetProductByID(input.ProductID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		cart, err := store.GetCartBySessionID(sessionID)
		if errors.Is(err, storage.ErrNotFound) {
			created, createErr := store.CreateCart(sessionID)
			if createErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
				return
			}
			cart = &models.CartWithItems{Cart: *created}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if _, err := store.AddToCart(cart.ID, input.ProductID, input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		updated, err := cartView(store, sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// UpdateCartItem sets a line's quantity; zero removes the line.
// PUT /api/cart/items/:id
func UpdateCartItem(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if *input.Quantity == 0 {
			if err := store.RemoveFromCart(uint(itemID)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
				return
			}
		} else {
			if _, err := store.UpdateCartItem(uint(itemID), *input.Quantity); err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				}
				return
			}
		}

		cart, err := cartView(store, middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// RemoveCartItem deletes a line; removing an absent line is not an error.
// DELETE /api/cart/items/:id
func RemoveCartItem(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		if err := store.RemoveFromCart(uint(itemID)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			return
		}

		cart, err := cartView(store, middleware.SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// ClearCart empties the session's cart.
// DELETE /api/cart
func ClearCart(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)

		cart, err := store.GetCartBySessionID(sessionID)
		if err == nil {
			if err := store.ClearCart(cart.ID); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
				return
			}
		} else if !errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		updated, err := cartView(store, sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
