package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusPending is the status every newly created order carries.
const OrderStatusPending = "pending"

// Order represents a customer order with its line items embedded.
type Order struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	CustomerEmail string      `json:"customer_email" db:"customer_email"`
	CustomerNote  *string     `json:"customer_note,omitempty" db:"customer_note"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"total_amount" db:"total_amount"`
	Status        string      `json:"status" db:"status"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
}

// OrderItem represents a line item in an order. Name and price are captured
// at add-to-cart time, not re-fetched from the catalogue.
type OrderItem struct {
	ID              uuid.UUID `json:"-" db:"id"`
	OrderID         uuid.UUID `json:"-" db:"order_id"`
	ProductID       string    `json:"product_id" db:"product_id"`
	ProductName     string    `json:"product_name" db:"product_name"`
	Price           float64   `json:"price" db:"price"`
	Quantity        int       `json:"quantity" db:"quantity"`
	SelectedOptions Options   `json:"selected_options,omitempty" db:"selected_options"`
}

// OrderRequest represents the request payload for creating an order.
// The total is never part of the payload; the server computes it.
type OrderRequest struct {
	CustomerEmail string      `json:"customer_email"`
	CustomerNote  *string     `json:"customer_note,omitempty"`
	Items         []OrderItem `json:"items"`
}
