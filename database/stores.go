package database

import (
	"context"
	"tennisbot_server/lib"
	"tennisbot_server/structs"
	"tennisbot_server/structs/tables"
	"time"
)

// OrderStore is the Postgres-backed store for orders.
type OrderStore struct {
	db      *DB
	timeout time.Duration
}

func NewOrderStore(db *DB, timeout time.Duration) *OrderStore {
	return &OrderStore{db: db, timeout: timeout}
}

func (s *OrderStore) Insert(ctx context.Context, order *tables.Order) error {
	_, err := Query[tables.Order](s.db).WithTimeout(s.timeout).Insert(ctx, order)
	return lib.MapPgError(err)
}

func (s *OrderStore) GetByID(ctx context.Context, id string) (*tables.Order, error) {
	order, err := Query[tables.Order](s.db).
		WithTimeout(s.timeout).
		Where("id = ?", id).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

func (s *OrderStore) ListByEmail(ctx context.Context, email string) ([]tables.Order, error) {
	return Query[tables.Order](s.db).
		WithTimeout(s.timeout).
		Where("email = ?", email).
		OrderBy("created_at DESC").
		All(ctx)
}

func (s *OrderStore) ListAll(ctx context.Context, status *tables.OrderStatus) ([]tables.Order, error) {
	q := Query[tables.Order](s.db).
		WithTimeout(s.timeout).
		OrderBy("created_at DESC")

	if status != nil {
		q = q.Where("status = ?", *status)
	}

	return q.All(ctx)
}

// UpdateStatus overwrites status and updated_at only and returns the updated
// order. Returns lib.ErrNotFound when no order matches.
func (s *OrderStore) UpdateStatus(ctx context.Context, id string, status tables.OrderStatus, updatedAt time.Time) (*tables.Order, error) {
	affected, err := Query[tables.Order](s.db).
		WithTimeout(s.timeout).
		Where("id = ?", id).
		Update(ctx, map[string]any{
			"status":     status,
			"updated_at": updatedAt,
		})
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if affected == 0 {
		return nil, lib.ErrNotFound
	}

	return s.GetByID(ctx, id)
}

// Aggregates computes the order-side statistics in a single query instead of
// resolving every record.
func (s *OrderStore) Aggregates(ctx context.Context) (*structs.OrderAggregates, error) {
	var agg structs.OrderAggregates

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := WithRetry(ctx, func() error {
		return s.db.NewSelect().
			Model((*tables.Order)(nil)).
			ColumnExpr("count(*)").
			ColumnExpr("coalesce(sum(price), 0)").
			ColumnExpr("count(*) FILTER (WHERE status = ?)", tables.OrderStatusPending).
			ColumnExpr("count(*) FILTER (WHERE status = ?)", tables.OrderStatusDelivered).
			Scan(ctx, &agg.TotalOrders, &agg.TotalRevenue, &agg.PendingOrders, &agg.DeliveredOrders)
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return &agg, nil
}

// InquiryStore is the Postgres-backed store for contact inquiries.
type InquiryStore struct {
	db      *DB
	timeout time.Duration
}

func NewInquiryStore(db *DB, timeout time.Duration) *InquiryStore {
	return &InquiryStore{db: db, timeout: timeout}
}

func (s *InquiryStore) Insert(ctx context.Context, inquiry *tables.Inquiry) error {
	_, err := Query[tables.Inquiry](s.db).WithTimeout(s.timeout).Insert(ctx, inquiry)
	return lib.MapPgError(err)
}

func (s *InquiryStore) ListAll(ctx context.Context) ([]tables.Inquiry, error) {
	return Query[tables.Inquiry](s.db).
		WithTimeout(s.timeout).
		OrderBy("created_at DESC").
		All(ctx)
}

func (s *InquiryStore) Count(ctx context.Context) (int, error) {
	return Query[tables.Inquiry](s.db).WithTimeout(s.timeout).Count(ctx)
}
