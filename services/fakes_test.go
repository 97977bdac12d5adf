package services

import (
	"context"
	"sort"
	"tennisbot_server/lib"
	"tennisbot_server/structs"
	"tennisbot_server/structs/tables"
	"time"
)

// fakeOrderStore is an in-memory OrderStore used across service tests.
type fakeOrderStore struct {
	orders map[string]tables.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[string]tables.Order)}
}

func (f *fakeOrderStore) Insert(_ context.Context, order *tables.Order) error {
	if _, exists := f.orders[order.Id]; exists {
		return lib.ErrConflict
	}
	f.orders[order.Id] = *order
	return nil
}

func (f *fakeOrderStore) GetByID(_ context.Context, id string) (*tables.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, lib.ErrNotFound
	}
	return &order, nil
}

func (f *fakeOrderStore) ListByEmail(_ context.Context, email string) ([]tables.Order, error) {
	var out []tables.Order
	for _, o := range f.orders {
		if o.Email == email {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeOrderStore) ListAll(_ context.Context, status *tables.OrderStatus) ([]tables.Order, error) {
	var out []tables.Order
	for _, o := range f.orders {
		if status != nil && o.Status != *status {
			continue
		}
		out = append(out, o)
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, id string, status tables.OrderStatus, updatedAt time.Time) (*tables.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, lib.ErrNotFound
	}
	order.Status = status
	order.UpdatedAt = updatedAt
	f.orders[id] = order
	return &order, nil
}

func (f *fakeOrderStore) Aggregates(_ context.Context) (*structs.OrderAggregates, error) {
	agg := &structs.OrderAggregates{}
	for _, o := range f.orders {
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

func sortNewestFirst(orders []tables.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

// fakeInquiryStore is an in-memory InquiryStore.
type fakeInquiryStore struct {
	inquiries []tables.Inquiry
}

func (f *fakeInquiryStore) Insert(_ context.Context, inquiry *tables.Inquiry) error {
	f.inquiries = append(f.inquiries, *inquiry)
	return nil
}

func (f *fakeInquiryStore) ListAll(_ context.Context) ([]tables.Inquiry, error) {
	out := make([]tables.Inquiry, len(f.inquiries))
	copy(out, f.inquiries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeInquiryStore) Count(_ context.Context) (int, error) {
	return len(f.inquiries), nil
}

// fakeCache is an in-memory Cache.
type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (f *fakeCache) Get(key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeCache) Set(key string, value any, _ time.Duration) error {
	f.values[key] = toString(value)
	return nil
}

func (f *fakeCache) SetNX(key string, value any, _ time.Duration) (bool, error) {
	if _, exists := f.values[key]; exists {
		return false, nil
	}
	f.values[key] = toString(value)
	return true, nil
}

func (f *fakeCache) Delete(key string) error {
	delete(f.values, key)
	return nil
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// fakeMailer records notification sends.
type fakeMailer struct {
	orderMails   int
	inquiryMails int
}

func (f *fakeMailer) SendOrderConfirmation(_ *tables.Order) { f.orderMails++ }
func (f *fakeMailer) SendInquiryAcknowledgement(_ *tables.Inquiry) { f.inquiryMails++ }
