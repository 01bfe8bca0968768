// Package storage holds the persistence contract for the storefront and its
// two interchangeable backends: a gorm/Postgres store and an in-memory store.
// The backend is chosen once at startup and handed to the controllers.
package storage

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/iterrvan/tienda-online/models"
)

// ErrNotFound is returned when a looked-up row does not exist. Handlers map
// it to a 404; every other error is a 500.
var ErrNotFound = errors.New("record not found")

// ProductFilter narrows a catalog listing. All set fields apply together.
type ProductFilter struct {
	CategoryID      *uint
	Search          string // case-insensitive substring match on the name
	MinPrice        *decimal.Decimal
	MaxPrice        *decimal.Decimal
	IncludeInactive bool // when false, only isActive products are listed
}

// ProductUpdate carries a partial product edit; nil fields are left untouched.
type ProductUpdate struct {
	Name              *string
	Description       *string
	Price             *decimal.Decimal
	OriginalPrice     *decimal.Decimal
	Image             *string
	CategoryID        *uint
	InStock           *bool
	StockQuantity     *int
	LowStockThreshold *int
	Rating            *decimal.Decimal
	ReviewCount       *int
	IsOnSale          *bool
	SalePercentage    *int
	IsActive          *bool
}

type Storage interface {
	// Categories
	GetCategories() ([]models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
	CreateCategory(category *models.Category) error

	// Products. DeleteProduct is a soft delete: the row stays and keeps
	// being returned by GetProductByID, it just drops out of default
	// listings.
	GetProducts(filter ProductFilter) ([]models.ProductWithCategory, error)
	GetProductByID(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id uint, update ProductUpdate) (*models.Product, error)
	DeleteProduct(id uint) error
	UpdateStock(id uint, quantity int) (*models.Product, error)
	GetLowStockProducts() ([]models.Product, error)

	// Cart. GetCartBySessionID returns ErrNotFound when no cart exists yet
	// for the session; lazy creation is the handler's job. AddToCart merges
	// by product: adding an already-present product increments its line.
	GetCartBySessionID(sessionID string) (*models.CartWithItems, error)
	CreateCart(sessionID string) (*models.Cart, error)
	AddToCart(cartID, productID uint, quantity int) (*models.CartItem, error)
	UpdateCartItem(cartItemID uint, quantity int) (*models.CartItem, error)
	RemoveFromCart(cartItemID uint) error
	ClearCart(cartID uint) error

	// Orders. CreateOrder persists the order and its item snapshots as one
	// unit; an order with zero items must never be observable.
	CreateOrder(order *models.Order, items []models.OrderItem) (*models.OrderWithItems, error)
	GetOrderByID(id uint) (*models.OrderWithItems, error)
	GetOrdersBySessionID(sessionID string) ([]models.Order, error)
}
