package models

import (
	"time"

	"github.com/iterrvan/tienda-online/pricing"
)

type Cart struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID string     `gorm:"uniqueIndex;not null" json:"sessionId"` // one cart per session
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    uint      `gorm:"index:idx_cart_product,unique" json:"cartId"`
	ProductID uint      `gorm:"index:idx_cart_product,unique" json:"productId"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

type CartItemWithProduct struct {
	CartItem
	Product Product `json:"product"`
}

// CartWithItems is the cart shape returned to the storefront: the cart, its
// lines joined with the live product rows, and the running totals.
type CartWithItems struct {
	Cart
	Items  []CartItemWithProduct `json:"items"`
	Totals pricing.Totals        `json:"totals"`
}
