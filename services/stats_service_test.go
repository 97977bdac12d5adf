package services

import (
	"context"
	"tennisbot_server/config"
	"tennisbot_server/structs/tables"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsServiceForTest(orders OrderStore, inquiries InquiryStore, cache Cache) *StatsService {
	return NewStatsService(gecho.NewDefaultLogger(), config.GetConfig(), orders, inquiries, cache)
}

func TestGetStatsEmpty(t *testing.T) {
	svc := newStatsServiceForTest(newFakeOrderStore(), &fakeInquiryStore{}, nil)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalOrders)
	assert.Equal(t, int64(0), stats.TotalRevenue)
	// Guarded division: no orders means a zero average, not NaN
	assert.Equal(t, float64(0), stats.AverageOrderValue)
}

func TestGetStatsTotals(t *testing.T) {
	store := newFakeOrderStore()
	now := time.Now().UTC()
	store.orders["order_1_aaaaaaaaa"] = tables.Order{
		Id: "order_1_aaaaaaaaa", Price: tables.ProductPrice,
		Status: tables.OrderStatusPending, CreatedAt: now, UpdatedAt: now,
	}
	store.orders["order_2_bbbbbbbbb"] = tables.Order{
		Id: "order_2_bbbbbbbbb", Price: tables.ProductPrice,
		Status: tables.OrderStatusDelivered, CreatedAt: now, UpdatedAt: now,
	}

	inquiries := &fakeInquiryStore{inquiries: []tables.Inquiry{{Id: "inquiry_1_aaaaaaaaa"}}}

	svc := newStatsServiceForTest(store, inquiries, nil)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.TotalInquiries)
	assert.Equal(t, int64(10000), stats.TotalRevenue)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 1, stats.CompletedOrders)
	assert.Equal(t, float64(5000), stats.AverageOrderValue)
}

func TestGetStatsUsesCache(t *testing.T) {
	store := newFakeOrderStore()
	cache := newFakeCache()
	svc := newStatsServiceForTest(store, &fakeInquiryStore{}, cache)

	_, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	// A new order appears, but within the TTL the cached snapshot is served
	now := time.Now().UTC()
	store.orders["order_9_zzzzzzzzz"] = tables.Order{
		Id: "order_9_zzzzzzzzz", Price: tables.ProductPrice,
		Status: tables.OrderStatusPending, CreatedAt: now, UpdatedAt: now,
	}

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalOrders)
}

func TestOrderCreationInvalidatesStatsCache(t *testing.T) {
	store := newFakeOrderStore()
	cache := newFakeCache()
	statsSvc := newStatsServiceForTest(store, &fakeInquiryStore{}, cache)
	orderSvc := newOrderServiceForTest(store, cache, nil)

	_, err := statsSvc.GetStats(context.Background())
	require.NoError(t, err)

	_, err = orderSvc.CreateOrder(context.Background(), validOrderRequest(), "")
	require.NoError(t, err)

	stats, err := statsSvc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, int64(tables.ProductPrice), stats.TotalRevenue)
}

func TestStatsRoundTripThroughCache(t *testing.T) {
	store := newFakeOrderStore()
	now := time.Now().UTC()
	store.orders["order_1_aaaaaaaaa"] = tables.Order{
		Id: "order_1_aaaaaaaaa", Price: tables.ProductPrice,
		Status: tables.OrderStatusPending, CreatedAt: now, UpdatedAt: now,
	}

	cache := newFakeCache()
	svc := newStatsServiceForTest(store, &fakeInquiryStore{}, cache)

	first, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	second, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
}
