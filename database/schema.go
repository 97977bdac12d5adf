package database

import (
	"context"
	"fmt"
	"tennisbot_server/structs/tables"
)

// EnsureSchema creates the tables and secondary indexes this service relies
// on when they do not exist yet. Listing by customer email and newest-first
// ordering are both index-backed.
func (db *DB) EnsureSchema(ctx context.Context) error {
	models := []any{
		(*tables.Order)(nil),
		(*tables.Inquiry)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	indexes := []struct {
		name   string
		model  any
		column string
	}{
		{"orders_email_idx", (*tables.Order)(nil), "email"},
		{"orders_created_at_idx", (*tables.Order)(nil), "created_at"},
		{"inquiries_created_at_idx", (*tables.Inquiry)(nil), "created_at"},
	}

	for _, idx := range indexes {
		_, err := db.NewCreateIndex().
			Model(idx.model).
			Index(idx.name).
			Column(idx.column).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
