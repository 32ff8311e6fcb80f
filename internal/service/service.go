package service

import (
	"context"

	"digikart/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for catalogue access.
type ProductService interface {
	// GetAll retrieves the full catalogue.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// CreateOrder validates the request, computes the total server-side and
	// persists the order with its line items.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// List retrieves every order, newest first.
	List(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves an order by its ID with all line items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
}
