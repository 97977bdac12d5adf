package services

import (
	"context"
	"encoding/json"
	"tennisbot_server/structs"

	"github.com/MonkyMars/gecho"
)

const statsCacheKey = "stats:admin"

type StatsService struct {
	logger    *gecho.Logger
	cfg       *structs.Config
	orders    OrderStore
	inquiries InquiryStore
	cache     Cache
}

func NewStatsService(logger *gecho.Logger, cfg *structs.Config, orders OrderStore, inquiries InquiryStore, cache Cache) *StatsService {
	return &StatsService{
		logger:    logger,
		cfg:       cfg,
		orders:    orders,
		inquiries: inquiries,
		cache:     cache,
	}
}

// GetStats aggregates order and inquiry totals. Orders in the delivered
// state count as completed. The result is cached briefly since the admin
// dashboard polls this endpoint.
func (ss *StatsService) GetStats(ctx context.Context) (*structs.Stats, error) {
	if ss.cache != nil {
		if cached, err := ss.cache.Get(statsCacheKey); err == nil && cached != "" {
			var stats structs.Stats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
			// Corrupt entry, fall through to recompute
		}
	}

	agg, err := ss.orders.Aggregates(ctx)
	if err != nil {
		return nil, err
	}

	inquiryCount, err := ss.inquiries.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &structs.Stats{
		TotalOrders:     agg.TotalOrders,
		TotalInquiries:  inquiryCount,
		TotalRevenue:    agg.TotalRevenue,
		PendingOrders:   agg.PendingOrders,
		CompletedOrders: agg.DeliveredOrders,
	}
	if agg.TotalOrders > 0 {
		stats.AverageOrderValue = float64(agg.TotalRevenue) / float64(agg.TotalOrders)
	}

	if ss.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := ss.cache.Set(statsCacheKey, payload, ss.cfg.Cache.StatsTTL); err != nil {
				ss.logger.Warn("Failed to cache stats", gecho.Field("error", err))
			}
		}
	}

	return stats, nil
}
