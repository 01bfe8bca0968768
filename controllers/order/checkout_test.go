package orderControllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iterrvan/tienda-online/models"
	"github.com/iterrvan/tienda-online/routes"
	"github.com/iterrvan/tienda-online/storage"
)

func newTestServer(t *testing.T) (*gin.Engine, *storage.MemStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := storage.NewMemStore()
	r := gin.New()
	routes.SetupRoutes(r, store)
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path, session, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if session != "" {
		req.Header.Set("X-Session-Id", session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedCart(t *testing.T, store *storage.MemStore, session string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          "Galaxy S24",
		Price:         decimal.RequireFromString("299.99"),
		StockQuantity: 10,
		InStock:       true,
		IsActive:      true,
	}
	require.NoError(t, store.CreateProduct(product))
	cart, err := store.CreateCart(session)
	require.NoError(t, err)
	_, err = store.AddToCart(cart.ID, product.ID, 3)
	require.NoError(t, err)
	return product
}

func checkoutBody(productID uint) string {
	return fmt.Sprintf(`{
		"customerName": "Ana García",
		"customerEmail": "ana@example.com",
		"customerPhone": "555-0101",
		"shippingAddress": "Calle Mayor 1",
		"city": "Madrid",
		"zipCode": "28001",
		"paymentMethod": "card",
		"items": [
			{"productId": %d, "productName": "Galaxy S24", "productPrice": "299.99", "quantity": 3}
		]
	}`, productID)
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	r, store := newTestServer(t)
	product := seedCart(t, store, "sess-1")

	w := doJSON(t, r, http.MethodPost, "/api/checkout", "sess-1", checkoutBody(product.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string          `json:"message"`
		OrderID uint            `json:"orderId"`
		Total   decimal.Decimal `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotZero(t, resp.OrderID)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("1004.97")), "total = %s", resp.Total)

	// order persisted with exactly the submitted lines
	order, err := store.GetOrderByID(resp.OrderID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, "Galaxy S24", order.Items[0].ProductName)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("899.97")))
	assert.True(t, order.Shipping.Equal(decimal.RequireFromString("15")))
	assert.True(t, order.Taxes.Equal(decimal.RequireFromString("90.00")))

	// cart is emptied only after the order is in
	cart, err := store.GetCartBySessionID("sess-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCheckoutValidationShortCircuits(t *testing.T) {
	r, store := newTestServer(t)
	product := seedCart(t, store, "sess-1")

	body := strings.Replace(checkoutBody(product.ID), `"ana@example.com"`, `"not-an-email"`, 1)
	w := doJSON(t, r, http.MethodPost, "/api/checkout", "sess-1", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// nothing was persisted and the cart is untouched
	orders, err := store.GetOrdersBySessionID("sess-1")
	require.NoError(t, err)
	assert.Empty(t, orders)

	cart, err := store.GetCartBySessionID("sess-1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCheckoutRejectsEmptyItems(t *testing.T) {
	r, _ := newTestServer(t)

	body := `{
		"customerName": "Ana",
		"customerEmail": "ana@example.com",
		"customerPhone": "555-0101",
		"shippingAddress": "Calle Mayor 1",
		"city": "Madrid",
		"zipCode": "28001",
		"paymentMethod": "card",
		"items": []
	}`
	w := doJSON(t, r, http.MethodPost, "/api/checkout", "sess-1", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrdersReturnsSessionHistory(t *testing.T) {
	r, store := newTestServer(t)
	product := seedCart(t, store, "sess-1")

	w := doJSON(t, r, http.MethodPost, "/api/checkout", "sess-1", checkoutBody(product.ID))
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/checkout", "sess-1", checkoutBody(product.ID))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/orders", "sess-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)

	// another session sees nothing
	w = doJSON(t, r, http.MethodGet, "/api/orders", "sess-2", "")
	require.Equal(t, http.StatusOK, w.Code)
	orders = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Empty(t, orders)
}

func TestGetOrderByID(t *testing.T) {
	r, store := newTestServer(t)
	product := seedCart(t, store, "sess-1")

	w := doJSON(t, r, http.MethodPost, "/api/checkout", "sess-1", checkoutBody(product.ID))
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		OrderID uint `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/orders/%d", resp.OrderID), "sess-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var order models.OrderWithItems
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "Ana García", order.CustomerName)
}

func TestGetOrderByIDNotFound(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/orders/42", "sess-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
