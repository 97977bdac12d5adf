package tables

import (
	"time"
)

// Product and pricing are fixed: the shop sells exactly one product.
const (
	ProductName  = "TennisBot Pro"
	ProductPrice = 5000
	Currency     = "USD"
)

type Order struct {
	// Table name and identifier
	tableName struct{} `bun:"table:orders,alias:o"`
	Id        string   `bun:"id,pk" json:"id"`

	// Customer data
	Name         string `bun:"name,notnull" json:"name" validate:"required,min=2,max=100"`
	Email        string `bun:"email,notnull" json:"email" validate:"required,email"`
	Phone        string `bun:"phone,notnull" json:"phone" validate:"required,min=7,max=20"`
	Organization string `bun:"organization" json:"organization,omitempty" validate:"omitempty,max=200"`
	Message      string `bun:"message" json:"message,omitempty" validate:"omitempty,max=2000"`

	// Product snapshot
	Product  string `bun:"product,notnull" json:"product"`
	Price    int64  `bun:"price,notnull" json:"price"`
	Currency string `bun:"currency,notnull" json:"currency"`

	// Order data
	Status    OrderStatus `bun:"status,notnull,default:'pending'" json:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled"`
	CreatedAt time.Time   `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time   `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the recognized order states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
