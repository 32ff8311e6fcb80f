package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"digikart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for catalogue data access.
type ProductRepository interface {
	// GetAll retrieves the full catalogue, ordered by name.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// ValidateProductsExist checks if all provided product IDs exist in the database.
	// Returns error if any product ID does not exist.
	ValidateProductsExist(ctx context.Context, ids []string) error

	// Count returns the number of products in the catalogue.
	Count(ctx context.Context) (int, error)

	// InsertProducts inserts catalogue entries, used for first-run seeding.
	InsertProducts(ctx context.Context, products []model.Product) error
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts the order's line items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetAll retrieves every order, newest first, with line items embedded.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves an order with its line items, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
}

// marshalOptions encodes an options map for a JSONB column; nil and empty
// maps become SQL NULL.
func marshalOptions(opts model.Options) ([]byte, error) {
	if len(opts) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal options: %w", err)
	}
	return data, nil
}

// unmarshalOptions decodes a JSONB column; NULL stays a nil map.
func unmarshalOptions(data []byte) (model.Options, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var opts model.Options
	if err := json.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal options: %w", err)
	}
	return opts, nil
}
