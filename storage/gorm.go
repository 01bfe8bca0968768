package storage

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/iterrvan/tienda-online/models"
)

// GormStore is the relational backend, backed by Postgres through gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates or updates the storefront tables.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}

// notFound translates gorm's sentinel into the storage-level one.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---------------- Categories ----------------

func (s *GormStore) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *GormStore) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &category, nil
}

func (s *GormStore) CreateCategory(category *models.Category) error {
	return s.db.Create(category).Error
}

// ---------------- Products ----------------

func (s *GormStore) GetProducts(filter ProductFilter) ([]models.ProductWithCategory, error) {
	query := s.db.Model(&models.Product{})

	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var products []models.Product
	if err := query.Order("created_at DESC, id DESC").Find(&products).Error; err != nil {
		return nil, err
	}

	categories, err := s.GetCategories()
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	result := make([]models.ProductWithCategory, 0, len(products))
	for _, product := range products {
		entry := models.ProductWithCategory{Product: product}
		if product.CategoryID != nil {
			if category, ok := byID[*product.CategoryID]; ok {
				entry.Category = &category
			}
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *GormStore) GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

func (s *GormStore) CreateProduct(product *models.Product) error {
	return s.db.Create(product).Error
}

func (s *GormStore) UpdateProduct(id uint, update ProductUpdate) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, notFound(err)
	}
	applyProductUpdate(&product, update)
	if err := s.db.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *GormStore) DeleteProduct(id uint) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return notFound(err)
	}
	product.IsActive = false
	return s.db.Save(&product).Error
}

func (s *GormStore) UpdateStock(id uint, quantity int) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, notFound(err)
	}
	product.StockQuantity = quantity
	product.InStock = quantity > 0
	if err := s.db.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *GormStore) GetLowStockProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.
		Where("is_active = ? AND stock_quantity <= low_stock_threshold", true).
		Order("stock_quantity ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ---------------- Cart ----------------

func (s *GormStore) GetCartBySessionID(sessionID string) (*models.CartWithItems, error) {
	var cart models.Cart
	if err := s.db.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		return nil, notFound(err)
	}

	var items []models.CartItem
	if err := s.db.Where("cart_id = ?", cart.ID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	result := &models.CartWithItems{Cart: cart, Items: []models.CartItemWithProduct{}}
	if len(items) == 0 {
		return result, nil
	}

	productIDs := make([]uint, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}
	var products []models.Product
	if err := s.db.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			// product row gone; drop the orphaned line from the view
			continue
		}
		result.Items = append(result.Items, models.CartItemWithProduct{CartItem: item, Product: product})
	}
	return result, nil
}

func (s *GormStore) CreateCart(sessionID string) (*models.Cart, error) {
	cart := models.Cart{SessionID: sessionID}
	if err := s.db.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *GormStore) AddToCart(cartID, productID uint, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
			return tx.Create(&item).Error
		}
		if err != nil {
			return err
		}
		item.Quantity += quantity
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GormStore) UpdateCartItem(cartItemID uint, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.First(&item, cartItemID).Error; err != nil {
		return nil, notFound(err)
	}
	item.Quantity = quantity
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GormStore) RemoveFromCart(cartItemID uint) error {
	// deleting an absent line is not an error
	return s.db.Delete(&models.CartItem{}, cartItemID).Error
}

func (s *GormStore) ClearCart(cartID uint) error {
	return s.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// ---------------- Orders ----------------

func (s *GormStore) CreateOrder(order *models.Order, items []models.OrderItem) (*models.OrderWithItems, error) {
	if len(items) == 0 {
		return nil, errors.New("order must have at least one item")
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}
	return &models.OrderWithItems{Order: *order, Items: items}, nil
}

func (s *GormStore) GetOrderByID(id uint) (*models.OrderWithItems, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return nil, notFound(err)
	}
	var items []models.OrderItem
	if err := s.db.Where("order_id = ?", order.ID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return &models.OrderWithItems{Order: order, Items: items}, nil
}

func (s *GormStore) GetOrdersBySessionID(sessionID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.
		Where("session_id = ?", sessionID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// applyProductUpdate copies the set fields of a partial update onto the row.
func applyProductUpdate(product *models.Product, update ProductUpdate) {
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.OriginalPrice != nil {
		product.OriginalPrice = update.OriginalPrice
	}
	if update.Image != nil {
		product.Image = *update.Image
	}
	if update.CategoryID != nil {
		product.CategoryID = update.CategoryID
	}
	if update.InStock != nil {
		product.InStock = *update.InStock
	}
	if update.StockQuantity != nil {
		product.StockQuantity = *update.StockQuantity
	}
	if update.LowStockThreshold != nil {
		product.LowStockThreshold = *update.LowStockThreshold
	}
	if update.Rating != nil {
		product.Rating = *update.Rating
	}
	if update.ReviewCount != nil {
		product.ReviewCount = *update.ReviewCount
	}
	if update.IsOnSale != nil {
		product.IsOnSale = *update.IsOnSale
	}
	if update.SalePercentage != nil {
		product.SalePercentage = update.SalePercentage
	}
	if update.IsActive != nil {
		product.IsActive = *update.IsActive
	}
}
