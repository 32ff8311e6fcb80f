package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema holds the marketplace DDL. Orders embed nothing; line items live in
// order_items with the denormalized name/price captured at add-to-cart time.
const Schema = `
	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price DOUBLE PRECISION NOT NULL,
		category TEXT NOT NULL,
		image_url TEXT,
		options JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		customer_email TEXT NOT NULL,
		customer_note TEXT,
		total_amount DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id TEXT NOT NULL,
		product_name TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		selected_options JSONB
	);

	CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id);
`

// EnsureSchema creates the marketplace tables when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		logger.Error().Err(err).Msg("failed to ensure database schema")
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	logger.Debug().Msg("database schema ensured")
	return nil
}
