package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"digikart/internal/client"
	"digikart/internal/model"
	"digikart/internal/storefront"
	"digikart/internal/web"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storefrontEnv runs the storefront against a live in-process marketplace API.
type storefrontEnv struct {
	router  http.Handler
	cookies []*http.Cookie
}

func setupStorefront(t *testing.T, apiServer *httptest.Server) *storefrontEnv {
	t.Helper()

	logger := zerolog.Nop()
	backend := client.New(apiServer.URL+"/api", 5*time.Second, logger)

	sessions := web.NewSessionManager(30*time.Minute, func() *storefront.Controller {
		return storefront.NewController(backend, time.Minute, logger)
	}, logger)

	handler := web.NewHandler(sessions, logger)

	return &storefrontEnv{router: web.NewRouter(handler, logger)}
}

func (e *storefrontEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	for _, c := range e.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		e.cookies = cookies
	}

	return rec
}

func TestStorefront_FullPurchaseFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	SeedCatalogue(t, testDB.Pool)

	apiServer := httptest.NewServer(setupTestServer(t, testDB))
	defer apiServer.Close()

	env := setupStorefront(t, apiServer)

	// Page load: the catalogue comes from the marketplace API
	rec := env.do(t, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []model.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.Len(t, products, 4)

	// Add a design product twice and an art product with a style
	rec = env.do(t, http.MethodPost, "/api/cart/items", web.AddItemRequest{ProductID: "P001"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = env.do(t, http.MethodPost, "/api/cart/items", web.AddItemRequest{ProductID: "P001"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = env.do(t, http.MethodPost, "/api/cart/items", web.AddItemRequest{
		ProductID:       "P002",
		SelectedOptions: model.Options{"style": "Oil Painting"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var view web.CartView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	require.Len(t, view.Items, 2)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.InDelta(t, 95.00, view.Total, 1e-9)
	assert.Equal(t, "95.00", view.DisplayTotal)

	// Checkout: the marketplace persists the order and owns the total
	rec = env.do(t, http.MethodPost, "/api/checkout", web.CheckoutRequest{
		CustomerEmail: "jane@example.com",
		CustomerNote:  "first purchase",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var order model.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
	assert.Equal(t, "jane@example.com", order.CustomerEmail)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.InDelta(t, 95.00, order.TotalAmount, 1e-9)

	// The cart is cleared
	rec = env.do(t, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Empty(t, view.Items)

	// The admin panel sees the persisted order
	rec = env.do(t, http.MethodGet, "/api/admin/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []model.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
	require.Len(t, orders[0].Items, 2)
}

func TestStorefront_CheckoutRejectionKeepsCart(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	SeedCatalogue(t, testDB.Pool)

	apiServer := httptest.NewServer(setupTestServer(t, testDB))
	defer apiServer.Close()

	env := setupStorefront(t, apiServer)

	env.do(t, http.MethodGet, "/api/catalog", nil)
	rec := env.do(t, http.MethodPost, "/api/cart/items", web.AddItemRequest{ProductID: "P001"})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Empty email is rejected before any backend call
	rec = env.do(t, http.MethodPost, "/api/checkout", web.CheckoutRequest{CustomerEmail: "  "})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, model.ErrCodeEmailRequired, resp.Code)

	// Cart and order store are untouched
	rec = env.do(t, http.MethodGet, "/api/cart", nil)
	var view web.CartView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Len(t, view.Items, 1)

	rec = env.do(t, http.MethodGet, "/api/admin/orders", nil)
	var orders []model.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&orders))
	assert.Empty(t, orders)
}

func TestStorefront_BackendOutage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	logger := zerolog.Nop()

	// A marketplace that is down for every call
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer apiServer.Close()

	backend := client.New(apiServer.URL+"/api", 2*time.Second, logger)
	sessions := web.NewSessionManager(30*time.Minute, func() *storefront.Controller {
		return storefront.NewController(backend, time.Minute, logger)
	}, logger)
	env := &storefrontEnv{router: web.NewRouter(web.NewHandler(sessions, logger), logger)}

	rec := env.do(t, http.MethodGet, "/api/catalog", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/admin/orders", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	// Failures surface as session notifications
	rec = env.do(t, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var notifications []storefront.Notification
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&notifications))
	require.Len(t, notifications, 2)
	assert.Equal(t, storefront.LevelError, notifications[0].Level)
}
