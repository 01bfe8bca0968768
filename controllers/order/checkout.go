package orderControllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iterrvan/tienda-online/middleware"
	"github.com/iterrvan/tienda-online/models"
	"github.com/iterrvan/tienda-online/pricing"
	"github.com/iterrvan/tienda-online/storage"
)

type CheckoutItem struct {
	ProductID    uint            `json:"productId" binding:"required"`
	ProductName  string          `json:"productName" binding:"required"`
	ProductPrice decimal.Decimal `json:"productPrice"`
	Quantity     int             `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	CustomerName    string         `json:"customerName" binding:"required"`
	CustomerEmail   string         `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string         `json:"customerPhone" binding:"required"`
	ShippingAddress string         `json:"shippingAddress" binding:"required"`
	City            string         `json:"city" binding:"required"`
	ZipCode         string         `json:"zipCode" binding:"required"`
	PaymentMethod   string         `json:"paymentMethod" binding:"required"`
	Items           []CheckoutItem `json:"items" binding:"required,min=1,dive"`
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout validates the submitted form, recomputes totals from the line
// items, persists the order with its item snapshots in one unit, and only
// then clears the session's cart. Validation failure short-circuits before
// anything is written.
// POST /api/checkout
func Checkout(store storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		lines := make([]pricing.Line, 0, len(req.Items))
		for _, item := range req.Items {
			lines = append(lines, pricing.Line{UnitPrice: item.ProductPrice, Quantity: item.Quantity})
		}
		totals := pricing.Calculate(lines)

		order := models.Order{
			OrderRef:        generateOrderRef(),
			SessionID:       sessionID,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			ShippingAddress: req.ShippingAddress,
			City:            req.City,
			ZipCode:         req.ZipCode,
			PaymentMethod:   req.PaymentMethod,
			Subtotal:        totals.Subtotal,
			Shipping:        totals.Shipping,
			Taxes:           totals.Taxes,
			Total:           totals.Total,
			Status:          models.OrderStatusConfirmed,
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, models.OrderItem{
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				ProductPrice: item.ProductPrice,
				Quantity:     item.Quantity,
			})
		}

		created, err := store.CreateOrder(&order, items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		// The order is committed; a failed cart clear must not make the
		// client resubmit and duplicate it.
		if cart, err := store.GetCartBySessionID(sessionID); err == nil {
			if err := store.ClearCart(cart.ID); err != nil {
				log.Printf("failed to clear cart %d after order %d: %v", cart.ID, created.ID, err)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Order placed successfully",
			"orderId": created.ID,
			"total":   created.Total,
		})
	}
}
