package admin

import (
	"bytes"
	"context"
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
	return nil, nil
}

func (m *memOrderStore) ListAll(_ context.Context, status *tables.OrderStatus) ([]tables.Order, error) {
	var out []tables.Order
	for _, o := range m.orders {
		if status != nil && o.Status != *status {
			continue
		}
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
	agg := &structs.OrderAggregates{}
	for _, o := range m.orders {
		agg.TotalOrders++
		agg.TotalRevenue += o.Price
		switch o.Status {
		case tables.OrderStatusPending:
			agg.PendingOrders++
		case tables.OrderStatusDelivered:
			agg.DeliveredOrders++
		}
	}
	return agg, nil
}

type memInquiryStore struct {
	inquiries []tables.Inquiry
}

func (m *memInquiryStore) Insert(_ context.Context, inquiry *tables.Inquiry) error {
	m.inquiries = append(m.inquiries, *inquiry)
	return nil
}

func (m *memInquiryStore) ListAll(_ context.Context) ([]tables.Inquiry, error) {
	out := make([]tables.Inquiry, len(m.inquiries))
	copy(out, m.inquiries)
	return out, nil
}

func (m *memInquiryStore) Count(_ context.Context) (int, error) {
	return len(m.inquiries), nil
}

func seedOrder(store *memOrderStore, id string, status tables.OrderStatus, createdAt time.Time) {
	store.orders[id] = tables.Order{
		Id: id, Name: "Customer", Email: "customer@example.com", Phone: "+31600000000",
		Product: tables.ProductName, Price: tables.ProductPrice, Currency: tables.Currency,
		Status: status, CreatedAt: createdAt, UpdatedAt: createdAt,
	}
}

// newTestRouter registers the admin handlers without the auth guard; the
// guard itself is covered by the middleware tests.
func newTestRouter(orderStore *memOrderStore, inquiryStore *memInquiryStore) chi.Router {
	logger := gecho.NewDefaultLogger()
	cfg := config.GetConfig()

	orderSvc := services.NewOrderService(logger, cfg, orderStore, nil, nil)
	inquirySvc := services.NewInquiryService(logger, inquiryStore, nil, nil)
	statsSvc := services.NewStatsService(logger, cfg, orderStore, inquiryStore, nil)

	ar := NewAdminRoutesManager(logger, services.NewAuthService(logger, cfg), orderSvc, inquirySvc, statsSvc, nil)

	r := chi.NewRouter()
	r.Get("/admin/orders", ar.ListOrders)
	r.Put("/admin/orders/{id}/status", ar.UpdateOrderStatus)
	r.Get("/admin/inquiries", ar.ListInquiries)
	r.Get("/admin/stats", ar.GetStats)
	return r
}

func TestListOrdersNewestFirst(t *testing.T) {
	store := newMemOrderStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedOrder(store, "order_1_aaaaaaaaa", tables.OrderStatusPending, base)
	seedOrder(store, "order_2_bbbbbbbbb", tables.OrderStatusPending, base.Add(time.Minute))
	seedOrder(store, "order_3_ccccccccc", tables.OrderStatusPending, base.Add(2*time.Minute))

	r := newTestRouter(store, &memInquiryStore{})

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	first := bytes.Index([]byte(body), []byte("order_3_ccccccccc"))
	second := bytes.Index([]byte(body), []byte("order_2_bbbbbbbbb"))
	third := bytes.Index([]byte(body), []byte("order_1_aaaaaaaaa"))
	require.True(t, first >= 0 && second >= 0 && third >= 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	store := newMemOrderStore()
	seedOrder(store, "order_1_aaaaaaaaa", tables.OrderStatusPending, time.Now().UTC())

	r := newTestRouter(store, &memInquiryStore{})

	req := httptest.NewRequest(http.MethodPut, "/admin/orders/order_1_aaaaaaaaa/status",
		bytes.NewReader([]byte(`{"status":"shipped"}`)))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, tables.OrderStatusShipped, store.orders["order_1_aaaaaaaaa"].Status)
}

func TestUpdateOrderStatusHandlerMissingStatus(t *testing.T) {
	store := newMemOrderStore()
	seedOrder(store, "order_1_aaaaaaaaa", tables.OrderStatusPending, time.Now().UTC())

	r := newTestRouter(store, &memInquiryStore{})

	req := httptest.NewRequest(http.MethodPut, "/admin/orders/order_1_aaaaaaaaa/status",
		bytes.NewReader([]byte(`{}`)))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Status is required")
	assert.Equal(t, tables.OrderStatusPending, store.orders["order_1_aaaaaaaaa"].Status)
}

func TestUpdateOrderStatusHandlerUnknownValue(t *testing.T) {
	store := newMemOrderStore()
	seedOrder(store, "order_1_aaaaaaaaa", tables.OrderStatusPending, time.Now().UTC())

	r := newTestRouter(store, &memInquiryStore{})

	// "completed" is not part of the recognized status set
	req := httptest.NewRequest(http.MethodPut, "/admin/orders/order_1_aaaaaaaaa/status",
		bytes.NewReader([]byte(`{"status":"completed"}`)))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	// Distinct from the missing-status message
	assert.Contains(t, rr.Body.String(), "Unknown order status")
	assert.Equal(t, tables.OrderStatusPending, store.orders["order_1_aaaaaaaaa"].Status)
}

func TestUpdateOrderStatusHandlerNotFound(t *testing.T) {
	r := newTestRouter(newMemOrderStore(), &memInquiryStore{})

	req := httptest.NewRequest(http.MethodPut, "/admin/orders/order_0_missing/status",
		bytes.NewReader([]byte(`{"status":"shipped"}`)))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetStatsHandler(t *testing.T) {
	store := newMemOrderStore()
	now := time.Now().UTC()
	seedOrder(store, "order_1_aaaaaaaaa", tables.OrderStatusPending, now)
	seedOrder(store, "order_2_bbbbbbbbb", tables.OrderStatusPending, now)

	r := newTestRouter(store, &memInquiryStore{})

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "total_orders")
	assert.Contains(t, rr.Body.String(), "average_order_value")
}
