package storage

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/iterrvan/tienda-online/models"
)

// MemStore keeps everything in process memory. It exists for demos and tests
// where spinning up Postgres is not worth it; semantics match GormStore.
type MemStore struct {
	mu sync.RWMutex

	categories map[uint]models.Category
	products   map[uint]models.Product
	carts      map[uint]models.Cart
	cartItems  map[uint]models.CartItem
	orders     map[uint]models.Order
	orderItems map[uint]models.OrderItem

	nextCategoryID  uint
	nextProductID   uint
	nextCartID      uint
	nextCartItemID  uint
	nextOrderID     uint
	nextOrderItemID uint
}

func NewMemStore() *MemStore {
	return &MemStore{
		categories: make(map[uint]models.Category),
		products:   make(map[uint]models.Product),
		carts:      make(map[uint]models.Cart),
		cartItems:  make(map[uint]models.CartItem),
		orders:     make(map[uint]models.Order),
		orderItems: make(map[uint]models.OrderItem),

		nextCategoryID:  1,
		nextProductID:   1,
		nextCartID:      1,
		nextCartItemID:  1,
		nextOrderID:     1,
		nextOrderItemID: 1,
	}
}

// ---------------- Categories ----------------

func (s *MemStore) GetCategories() ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (s *MemStore) GetCategoryByID(id uint) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &category, nil
}

func (s *MemStore) CreateCategory(category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = s.nextCategoryID
	s.nextCategoryID++
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}
	s.categories[category.ID] = *category
	return nil
}

// ---------------- Products ----------------

func (s *MemStore) GetProducts(filter ProductFilter) ([]models.ProductWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(filter.Search)

	var products []models.Product
	for _, product := range s.products {
		if !filter.IncludeInactive && !product.IsActive {
			continue
		}
		if filter.CategoryID != nil {
			if product.CategoryID == nil || *product.CategoryID != *filter.CategoryID {
				continue
			}
		}
		if search != "" && !strings.Contains(strings.ToLower(product.Name), search) {
			continue
		}
		if filter.MinPrice != nil && product.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && product.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		products = append(products, product)
	}

	// most recently created first
	sort.Slice(products, func(i, j int) bool {
		if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		}
		return products[i].ID > products[j].ID
	})

	result := make([]models.ProductWithCategory, 0, len(products))
	for _, product := range products {
		entry := models.ProductWithCategory{Product: product}
		if product.CategoryID != nil {
			if category, ok := s.categories[*product.CategoryID]; ok {
				entry.Category = &category
			}
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *MemStore) GetProductByID(id uint) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (s *MemStore) CreateProduct(product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = s.nextProductID
	s.nextProductID++
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now
	s.products[product.ID] = *product
	return nil
}

func (s *MemStore) UpdateProduct(id uint, update ProductUpdate) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyProductUpdate(&product, update)
	product.UpdatedAt = time.Now()
	s.products[id] = product
	return &product, nil
}

func (s *MemStore) DeleteProduct(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return ErrNotFound
	}
	product.IsActive = false
	product.UpdatedAt = time.Now()
	s.products[id] = product
	return nil
}

func (s *MemStore) UpdateStock(id uint, quantity int) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	product.StockQuantity = quantity
	product.InStock = quantity > 0
	product.UpdatedAt = time.Now()
	s.products[id] = product
	return &product, nil
}

func (s *MemStore) GetLowStockProducts() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var products []models.Product
	for _, product := range s.products {
		if product.IsActive && product.StockQuantity <= product.LowStockThreshold {
			products = append(products, product)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].StockQuantity != products[j].StockQuantity {
			return products[i].StockQuantity < products[j].StockQuantity
		}
		return products[i].ID < products[j].ID
	})
	return products, nil
}

// ---------------- Cart ----------------

func (s *MemStore) GetCartBySessionID(sessionID string) (*models.CartWithItems, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cart *models.Cart
	for _, candidate := range s.carts {
		if candidate.SessionID == sessionID {
			c := candidate
			cart = &c
			break
		}
	}
	if cart == nil {
		return nil, ErrNotFound
	}

	var items []models.CartItem
	for _, item := range s.cartItems {
		if item.CartID == cart.ID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	result := &models.CartWithItems{Cart: *cart, Items: []models.CartItemWithProduct{}}
	for _, item := range items {
		product, ok := s.products[item.ProductID]
		if !ok {
			continue
		}
		result.Items = append(result.Items, models.CartItemWithProduct{CartItem: item, Product: product})
	}
	return result, nil
}

func (s *MemStore) CreateCart(sessionID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cart := models.Cart{
		ID:        s.nextCartID,
		SessionID: sessionID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextCartID++
	s.carts[cart.ID] = cart
	return &cart, nil
}

func (s *MemStore) AddToCart(cartID, productID uint, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.cartItems {
		if item.CartID == cartID && item.ProductID == productID {
			item.Quantity += quantity
			s.cartItems[id] = item
			return &item, nil
		}
	}

	item := models.CartItem{
		ID:        s.nextCartItemID,
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	s.nextCartItemID++
	s.cartItems[item.ID] = item
	return &item, nil
}

func (s *MemStore) UpdateCartItem(cartItemID uint, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems[cartItemID]
	if !ok {
		return nil, ErrNotFound
	}
	item.Quantity = quantity
	s.cartItems[cartItemID] = item
	return &item, nil
}

func (s *MemStore) RemoveFromCart(cartItemID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cartItems, cartItemID)
	return nil
}

func (s *MemStore) ClearCart(cartID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.cartItems {
		if item.CartID == cartID {
			delete(s.cartItems, id)
		}
	}
	return nil
}

// ---------------- Orders ----------------

func (s *MemStore) CreateOrder(order *models.Order, items []models.OrderItem) (*models.OrderWithItems, error) {
	if len(items) == 0 {
		return nil, errors.New("order must have at least one item")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.nextOrderID
	s.nextOrderID++
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	s.orders[order.ID] = *order

	created := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		item.ID = s.nextOrderItemID
		s.nextOrderItemID++
		item.OrderID = order.ID
		s.orderItems[item.ID] = item
		created = append(created, item)
	}
	return &models.OrderWithItems{Order: *order, Items: created}, nil
}

func (s *MemStore) GetOrderByID(id uint) (*models.OrderWithItems, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	var items []models.OrderItem
	for _, item := range s.orderItems {
		if item.OrderID == id {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return &models.OrderWithItems{Order: order, Items: items}, nil
}

func (s *MemStore) GetOrdersBySessionID(sessionID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []models.Order
	for _, order := range s.orders {
		if order.SessionID == sessionID {
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}
