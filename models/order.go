package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // accepted by the store
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // received by the customer
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef        string          `gorm:"uniqueIndex;not null" json:"orderRef"`
	SessionID       string          `gorm:"index;not null" json:"sessionId"`
	CustomerName    string          `gorm:"not null" json:"customerName"`
	CustomerEmail   string          `gorm:"not null" json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	ShippingAddress string          `json:"shippingAddress"`
	City            string          `json:"city"`
	ZipCode         string          `json:"zipCode"`
	PaymentMethod   string          `json:"paymentMethod"` // e.g. "card", "cod"
	Subtotal        decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	Shipping        decimal.Decimal `gorm:"type:decimal(10,2)" json:"shipping"`
	Taxes           decimal.Decimal `gorm:"type:decimal(10,2)" json:"taxes"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'confirmed'" json:"status"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// OrderItem is a snapshot of the product at order time. Name and price are
// copied, not referenced, so later product edits never touch past orders.
type OrderItem struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      uint            `gorm:"index" json:"orderId"`
	ProductID    uint            `json:"productId"`
	ProductName  string          `gorm:"not null" json:"productName"`
	ProductPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"productPrice"`
	Quantity     int             `gorm:"not null" json:"quantity"`
}

type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}
