package services

import (
	"context"
	"tennisbot_server/structs"
	"tennisbot_server/structs/tables"
	"time"
)

// OrderStore is the persistence contract the order service depends on.
// The Postgres implementation lives in the database package.
type OrderStore interface {
	Insert(ctx context.Context, order *tables.Order) error
	GetByID(ctx context.Context, id string) (*tables.Order, error)
	ListByEmail(ctx context.Context, email string) ([]tables.Order, error)
	ListAll(ctx context.Context, status *tables.OrderStatus) ([]tables.Order, error)
	UpdateStatus(ctx context.Context, id string, status tables.OrderStatus, updatedAt time.Time) (*tables.Order, error)
	Aggregates(ctx context.Context) (*structs.OrderAggregates, error)
}

// InquiryStore is the persistence contract for contact inquiries.
type InquiryStore interface {
	Insert(ctx context.Context, inquiry *tables.Inquiry) error
	ListAll(ctx context.Context) ([]tables.Inquiry, error)
	Count(ctx context.Context) (int, error)
}

// Cache is the subset of the cache service other services consume.
type Cache interface {
	Get(key string) (string, error)
	Set(key string, value any, ttl time.Duration) error
	SetNX(key string, value any, ttl time.Duration) (bool, error)
	Delete(key string) error
}

// Mailer sends customer-facing notification emails. Implementations must not
// block the request path.
type Mailer interface {
	SendOrderConfirmation(order *tables.Order)
	SendInquiryAcknowledgement(inquiry *tables.Inquiry)
}
