package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"tennisbot_server/config"
	"tennisbot_server/lib"
	"tennisbot_server/services"
	"tennisbot_server/structs"
	"tennisbot_server/structs/tables"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memOrderStore struct {
	orders map[string]tables.Order
}

func newMemOrderStore() *memOrderStore {
	return &memOrderStore{orders: make(map[string]tables.Order)}
}

func (m *memOrderStore) Insert(_ context.Context, order *tables.Order) error {
	m.orders[order.Id] = *order
	return nil
}

func (m *memOrderStore) GetByID(_ context.Context, id string) (*tables.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, lib.ErrNotFound
	}
	return &order, nil
}

func (m *memOrderStore) ListByEmail(_ context.Context, email string) ([]tables.Order, error) {
	var out []tables.Order
	for _, o := range m.orders {
		if o.Email == email {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memOrderStore) ListAll(_ context.Context, _ *tables.OrderStatus) ([]tables.Order, error) {
	var out []tables.Order
	for _, o := range m.orders {
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memOrderStore) UpdateStatus(_ context.Context, id string, status tables.OrderStatus, updatedAt time.Time) (*tables.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, lib.ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = updatedAt
	m.orders[id] = order
	return &order, nil
}

func (m *memOrderStore) Aggregates(_ context.Context) (*structs.OrderAggregates, error) {
	return &structs.OrderAggregates{}, nil
}

func newTestRouter(store services.OrderStore) chi.Router {
	logger := gecho.NewDefaultLogger()
	svc := services.NewOrderService(logger, config.GetConfig(), store, nil, nil)

	r := chi.NewRouter()
	NewOrderRoutesManager(logger, svc).RegisterRoutes(r)
	return r
}

func TestCreateOrderHandler(t *testing.T) {
	store := newMemOrderStore()
	r := newTestRouter(store)

	body, _ := json.Marshal(structs.OrderRequest{
		Name:  "Iga Swiatek",
		Email: "iga@example.com",
		Phone: "+48-555-0100",
	})

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, store.orders, 1)

	for _, order := range store.orders {
		assert.Equal(t, tables.OrderStatusPending, order.Status)
		assert.Equal(t, int64(5000), order.Price)
		assert.Equal(t, "USD", order.Currency)
	}
}

func TestCreateOrderHandlerMissingEmail(t *testing.T) {
	store := newMemOrderStore()
	r := newTestRouter(store)

	body := []byte(`{"name":"Iga Swiatek","phone":"+48-555-0100"}`)

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	// Nothing persisted on validation failure
	assert.Empty(t, store.orders)
}

func TestGetOrderHandlerNotFound(t *testing.T) {
	r := newTestRouter(newMemOrderStore())

	req := httptest.NewRequest(http.MethodGet, "/orders/order_0_missing", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetOrderHandler(t *testing.T) {
	store := newMemOrderStore()
	now := time.Now().UTC()
	store.orders["order_1_aaaaaaaaa"] = tables.Order{
		Id: "order_1_aaaaaaaaa", Name: "Iga", Email: "iga@example.com", Phone: "+48-555-0100",
		Product: tables.ProductName, Price: tables.ProductPrice, Currency: tables.Currency,
		Status: tables.OrderStatusPending, CreatedAt: now, UpdatedAt: now,
	}
	r := newTestRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/orders/order_1_aaaaaaaaa", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "order_1_aaaaaaaaa")
}

func TestGetCustomerOrdersHandlerEmpty(t *testing.T) {
	r := newTestRouter(newMemOrderStore())

	req := httptest.NewRequest(http.MethodGet, "/customers/nobody@example.com/orders", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	// No orders is an empty list, not an error
	assert.Equal(t, http.StatusOK, rr.Code)
}
