package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID                uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string           `gorm:"not null" json:"name"`
	Description       string           `json:"description"`
	Price             decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	OriginalPrice     *decimal.Decimal `gorm:"type:decimal(10,2)" json:"originalPrice"`
	Image             string           `json:"image"`
	CategoryID        *uint            `gorm:"index" json:"categoryId"`
	InStock           bool             `gorm:"default:true" json:"inStock"`
	StockQuantity     int              `gorm:"default:0" json:"stockQuantity"`
	LowStockThreshold int              `gorm:"default:5" json:"lowStockThreshold"`
	Rating            decimal.Decimal  `gorm:"type:decimal(3,1);default:0" json:"rating"`
	ReviewCount       int              `gorm:"default:0" json:"reviewCount"`
	IsOnSale          bool             `gorm:"default:false" json:"isOnSale"`
	SalePercentage    *int             `json:"salePercentage"`
	IsActive          bool             `gorm:"default:true" json:"isActive"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// ProductWithCategory is the catalog-listing shape: the product plus its
// category, or a nil category when the product is uncategorized.
type ProductWithCategory struct {
	Product
	Category *Category `json:"category,omitempty"`
}
