package storage

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iterrvan/tienda-online/models"
)

func newTestStore(t *testing.T) *MemStore {
	t.Helper()
	return NewMemStore()
}

func mustCreateProduct(t *testing.T, store *MemStore, name string, priceStr string, categoryID *uint) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          name,
		Price:         decimal.RequireFromString(priceStr),
		StockQuantity: 10,
		InStock:       true,
		IsActive:      true,
	}
	product.CategoryID = categoryID
	require.NoError(t, store.CreateProduct(product))
	return product
}

func TestGetCategoriesAlphabetical(t *testing.T) {
	store := newTestStore(t)
	for _, name := range []string{"Ropa", "Deportes", "Electrónicos"} {
		require.NoError(t, store.CreateCategory(&models.Category{Name: name, Slug: name}))
	}

	categories, err := store.GetCategories()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Deportes", categories[0].Name)
	assert.Equal(t, "Electrónicos", categories[1].Name)
	assert.Equal(t, "Ropa", categories[2].Name)
}

func TestGetProductsFilterConjunction(t *testing.T) {
	store := newTestStore(t)
	electronics := models.Category{Name: "Electrónicos", Slug: "electronicos"}
	clothing := models.Category{Name: "Ropa", Slug: "ropa"}
	require.NoError(t, store.CreateCategory(&electronics))
	require.NoError(t, store.CreateCategory(&clothing))

	mustCreateProduct(t, store, "Smartphone Galaxy", "899.00", &electronics.ID)
	mustCreateProduct(t, store, "Smart TV", "1299.00", &electronics.ID)
	mustCreateProduct(t, store, "Smart Hoodie", "59.00", &clothing.ID)

	min := decimal.RequireFromString("500")
	max := decimal.RequireFromString("1000")
	products, err := store.GetProducts(ProductFilter{
		CategoryID: &electronics.ID,
		Search:     "smart",
		MinPrice:   &min,
		MaxPrice:   &max,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Smartphone Galaxy", products[0].Name)
	require.NotNil(t, products[0].Category)
	assert.Equal(t, electronics.ID, products[0].Category.ID)
}

func TestGetProductsSearchIsCaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	mustCreateProduct(t, store, "PlayStation 5", "499.00", nil)

	products, err := store.GetProducts(ProductFilter{Search: "playstation"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Nil(t, products[0].Category)
}

func TestGetProductsPriceBoundsAreInclusive(t *testing.T) {
	store := newTestStore(t)
	mustCreateProduct(t, store, "Exact", "100.00", nil)

	bound := decimal.RequireFromString("100.00")
	products, err := store.GetProducts(ProductFilter{MinPrice: &bound, MaxPrice: &bound})
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestGetProductsNewestFirst(t *testing.T) {
	store := newTestStore(t)
	old := &models.Product{Name: "Old", Price: decimal.RequireFromString("1"), IsActive: true, CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, store.CreateProduct(old))
	mustCreateProduct(t, store, "New", "2", nil)

	products, err := store.GetProducts(ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "New", products[0].Name)
	assert.Equal(t, "Old", products[1].Name)
}

func TestSoftDelete(t *testing.T) {
	store := newTestStore(t)
	product := mustCreateProduct(t, store, "Monitor", "399.00", nil)

	require.NoError(t, store.DeleteProduct(product.ID))

	// point lookup still returns the row, flagged inactive
	got, err := store.GetProductByID(product.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	// hidden from default listings
	products, err := store.GetProducts(ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, products)

	// visible when inactive rows are requested
	products, err = store.GetProducts(ProductFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestDeleteProductMissing(t *testing.T) {
	store := newTestStore(t)
	assert.ErrorIs(t, store.DeleteProduct(99), ErrNotFound)
}

func TestUpdateProductPartial(t *testing.T) {
	store := newTestStore(t)
	product := mustCreateProduct(t, store, "iPad", "1099.00", nil)
	before := product.UpdatedAt

	newPrice := decimal.RequireFromString("999.00")
	time.Sleep(time.Millisecond)
	updated, err := store.UpdateProduct(product.ID, ProductUpdate{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "iPad", updated.Name)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.True(t, updated.UpdatedAt.After(before))
}

func TestUpdateStockDerivesInStock(t *testing.T) {
	store := newTestStore(t)
	product := mustCreateProduct(t, store, "PS5", "499.00", nil)

	updated, err := store.UpdateStock(product.ID, 0)
	require.NoError(t, err)
	assert.False(t, updated.InStock)
	assert.Equal(t, 0, updated.StockQuantity)

	updated, err = store.UpdateStock(product.ID, 3)
	require.NoError(t, err)
	assert.True(t, updated.InStock)
	assert.Equal(t, 3, updated.StockQuantity)
}

func TestGetLowStockProducts(t *testing.T) {
	store := newTestStore(t)
	low := mustCreateProduct(t, store, "Camera", "2499.00", nil)
	_, err := store.UpdateStock(low.ID, 4)
	require.NoError(t, err)

	ok := mustCreateProduct(t, store, "Tablet", "1099.00", nil)
	_, err = store.UpdateStock(ok.ID, 50)
	require.NoError(t, err)

	inactive := mustCreateProduct(t, store, "Discontinued", "10.00", nil)
	_, err = store.UpdateStock(inactive.ID, 0)
	require.NoError(t, err)
	require.NoError(t, store.DeleteProduct(inactive.ID))

	products, err := store.GetLowStockProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Camera", products[0].Name)
}

func TestCartLifecycle(t *testing.T) {
	store := newTestStore(t)
	product := mustCreateProduct(t, store, "AirPods", "249.00", nil)

	_, err := store.GetCartBySessionID("sess-1")
	assert.ErrorIs(t, err, ErrNotFound)

	cart, err := store.CreateCart("sess-1")
	require.NoError(t, err)

	// first add inserts, second add merges into the same line
	item, err := store.AddToCart(cart.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	item, err = store.AddToCart(cart.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	view, err := store.GetCartBySessionID("sess-1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
	assert.Equal(t, product.ID, view.Items[0].Product.ID)
}

func TestUpdateCartItem(t *testing.T) {
	store := newTestStore(t)
	product := mustCreateProduct(t, store, "Watch", "399.00", nil)
	cart, err := store.CreateCart("sess-1")
	require.NoError(t, err)
	item, err := store.AddToCart(cart.ID, product.ID, 1)
	require.NoError(t, err)

	updated, err := store.UpdateCartItem(item.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)

	_, err = store.UpdateCartItem(999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveFromCartIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	product := mustCreateProduct(t, store, "Watch", "399.00", nil)
	cart, err := store.CreateCart("sess-1")
	require.NoError(t, err)
	item, err := store.AddToCart(cart.ID, product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, store.RemoveFromCart(item.ID))
	require.NoError(t, store.RemoveFromCart(item.ID)) // absent line is a no-op

	view, err := store.GetCartBySessionID("sess-1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestClearCart(t *testing.T) {
	store := newTestStore(t)
	first := mustCreateProduct(t, store, "A", "1.00", nil)
	second := mustCreateProduct(t, store, "B", "2.00", nil)
	cart, err := store.CreateCart("sess-1")
	require.NoError(t, err)
	_, err = store.AddToCart(cart.ID, first.ID, 1)
	require.NoError(t, err)
	_, err = store.AddToCart(cart.ID, second.ID, 1)
	require.NoError(t, err)

	require.NoError(t, store.ClearCart(cart.ID))

	view, err := store.GetCartBySessionID("sess-1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCreateOrderAtomicity(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateOrder(&models.Order{SessionID: "sess-1"}, nil)
	assert.Error(t, err, "zero-item order must be rejected")

	order := &models.Order{
		OrderRef:     "ref-1",
		SessionID:    "sess-1",
		CustomerName: "Ana",
		Total:        decimal.RequireFromString("1004.97"),
	}
	items := []models.OrderItem{
		{ProductID: 1, ProductName: "Galaxy", ProductPrice: decimal.RequireFromString("299.99"), Quantity: 3},
	}
	created, err := store.CreateOrder(order, items)
	require.NoError(t, err)
	require.Len(t, created.Items, 1)
	assert.Equal(t, created.ID, created.Items[0].OrderID)

	got, err := store.GetOrderByID(created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}

func TestOrderItemsAreSnapshots(t *testing.T) {
	store := newTestStore(t)
	product := mustCreateProduct(t, store, "Galaxy", "899.00", nil)

	order := &models.Order{OrderRef: "ref-1", SessionID: "sess-1", CustomerName: "Ana"}
	items := []models.OrderItem{{
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductPrice: product.Price,
		Quantity:     1,
	}}
	created, err := store.CreateOrder(order, items)
	require.NoError(t, err)

	// later product edits must not touch the snapshot
	newName := "Galaxy (renamed)"
	newPrice := decimal.RequireFromString("1.00")
	_, err = store.UpdateProduct(product.ID, ProductUpdate{Name: &newName, Price: &newPrice})
	require.NoError(t, err)

	got, err := store.GetOrderByID(created.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Galaxy", got.Items[0].ProductName)
	assert.True(t, got.Items[0].ProductPrice.Equal(decimal.RequireFromString("899.00")))
}

func TestGetOrdersBySessionIDMostRecentFirst(t *testing.T) {
	store := newTestStore(t)
	items := []models.OrderItem{{ProductID: 1, ProductName: "X", Quantity: 1}}

	first := &models.Order{OrderRef: "ref-1", SessionID: "sess-1", CreatedAt: time.Now().Add(-time.Hour)}
	_, err := store.CreateOrder(first, items)
	require.NoError(t, err)
	second := &models.Order{OrderRef: "ref-2", SessionID: "sess-1"}
	_, err = store.CreateOrder(second, items)
	require.NoError(t, err)
	other := &models.Order{OrderRef: "ref-3", SessionID: "sess-2"}
	_, err = store.CreateOrder(other, items)
	require.NoError(t, err)

	orders, err := store.GetOrdersBySessionID("sess-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ref-2", orders[0].OrderRef)
	assert.Equal(t, "ref-1", orders[1].OrderRef)
}
