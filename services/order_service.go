package services

import (
	"context"
	"errors"
	"fmt"
	"tennisbot_server/lib"
	"tennisbot_server/structs"
	"tennisbot_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
)

type OrderService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	store  OrderStore
	cache  Cache
	mailer Mailer
}

func NewOrderService(logger *gecho.Logger, cfg *structs.Config, store OrderStore, cache Cache, mailer Mailer) *OrderService {
	return &OrderService{
		logger: logger,
		cfg:    cfg,
		store:  store,
		cache:  cache,
		mailer: mailer,
	}
}

func idempotencyCacheKey(key string) string {
	return fmt.Sprintf("idempotency:order:%s", key)
}

// CreateOrder persists a new order with the fixed product snapshot. When an
// idempotency key is supplied the key is reserved in the cache first; a
// replay returns the originally created order instead of a duplicate.
func (os *OrderService) CreateOrder(ctx context.Context, req *structs.OrderRequest, idempotencyKey string) (*tables.Order, error) {
	orderId := lib.NewOrderID()

	if idempotencyKey != "" && os.cache != nil {
		reserved, err := os.cache.SetNX(idempotencyCacheKey(idempotencyKey), orderId, os.cfg.Cache.IdempotencyTTL)
		if err != nil {
			// Cache trouble must not block intake
			os.logger.Warn("Idempotency key reservation failed, proceeding without",
				gecho.Field("error", err))
		} else if !reserved {
			existingId, err := os.cache.Get(idempotencyCacheKey(idempotencyKey))
			if err == nil && existingId != "" {
				existing, err := os.store.GetByID(ctx, existingId)
				if err == nil {
					os.logger.Info("Replayed order creation via idempotency key",
						gecho.Field("order_id", existingId))
					return existing, nil
				}
				if !errors.Is(err, lib.ErrNotFound) {
					return nil, err
				}
				// Key reserved but the record never made it; finish the
				// original creation under the reserved id.
				orderId = existingId
			}
		}
	}

	now := time.Now().UTC()
	order := &tables.Order{
		Id:           orderId,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Organization: req.Organization,
		Message:      req.Message,
		Product:      tables.ProductName,
		Price:        tables.ProductPrice,
		Currency:     tables.Currency,
		Status:       tables.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := os.store.Insert(ctx, order); err != nil {
		return nil, err
	}

	os.logger.Info("Order created",
		gecho.Field("order_id", order.Id),
		gecho.Field("email", order.Email))

	if os.cache != nil {
		if err := os.cache.Delete(statsCacheKey); err != nil {
			os.logger.Warn("Failed to invalidate stats cache", gecho.Field("error", err))
		}
	}

	if os.mailer != nil {
		os.mailer.SendOrderConfirmation(order)
	}

	return order, nil
}

// GetOrder fetches a single order by id.
func (os *OrderService) GetOrder(ctx context.Context, id string) (*tables.Order, error) {
	return os.store.GetByID(ctx, id)
}

// GetCustomerOrders returns the orders placed under an email address, newest
// first. An unknown email yields an empty list, not an error.
func (os *OrderService) GetCustomerOrders(ctx context.Context, email string) ([]tables.Order, error) {
	orders, err := os.store.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []tables.Order{}
	}
	return orders, nil
}

// ListOrders returns all orders newest first, optionally filtered by status.
func (os *OrderService) ListOrders(ctx context.Context, status *tables.OrderStatus) ([]tables.Order, error) {
	orders, err := os.store.ListAll(ctx, status)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []tables.Order{}
	}
	return orders, nil
}

// UpdateOrderStatus sets an order's status. Only the recognized states are
// accepted; anything else is rejected before touching the store.
func (os *OrderService) UpdateOrderStatus(ctx context.Context, id string, status tables.OrderStatus) (*tables.Order, error) {
	if !status.Valid() {
		return nil, lib.ErrInvalidStatus
	}

	order, err := os.store.UpdateStatus(ctx, id, status, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	os.logger.Info("Order status updated",
		gecho.Field("order_id", id),
		gecho.Field("status", status))

	if os.cache != nil {
		// Aggregates changed; next stats call recomputes
		if err := os.cache.Delete(statsCacheKey); err != nil {
			os.logger.Warn("Failed to invalidate stats cache", gecho.Field("error", err))
		}
	}

	return order, nil
}
