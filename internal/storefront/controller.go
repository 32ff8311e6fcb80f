// Package storefront holds the storefront's application state: the product
// catalogue, the shopping cart, the checkout workflow and the notification
// feed. One Controller owns the state of one browser session; views receive
// snapshot copies and dispatch intents through its methods instead of
// mutating shared state.
package storefront

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"digikart/internal/model"

	"github.com/rs/zerolog"
)

// Backend is the remote marketplace store the controller collaborates with.
// It is the sole source of truth for products and persisted orders.
type Backend interface {
	FetchProducts(ctx context.Context) ([]model.Product, error)
	FetchOrders(ctx context.Context) ([]model.Order, error)
	SubmitOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)
}

// Controller is the injectable application-state object for one session.
// All methods are safe for concurrent use.
type Controller struct {
	backend Backend
	logger  zerolog.Logger

	mu         sync.Mutex
	products   []model.Product
	cart       *Cart
	feed       *Feed
	submitting bool
	email      string
	note       string
}

// NewController creates a controller with an empty catalogue and cart.
func NewController(backend Backend, notificationTTL time.Duration, logger zerolog.Logger) *Controller {
	return &Controller{
		backend: backend,
		logger:  logger.With().Str("component", "storefront").Logger(),
		cart:    NewCart(),
		feed:    NewFeed(notificationTTL),
	}
}

// LoadProducts fetches the full product list from the backend. On failure
// the existing (possibly empty) catalogue is left unchanged, an error
// notification is pushed, and no retry is attempted.
func (c *Controller) LoadProducts(ctx context.Context) error {
	products, err := c.backend.FetchProducts(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to load products")
		c.feed.Push(LevelError, "Could not load products")
		return fmt.Errorf("load products: %w", err)
	}

	c.mu.Lock()
	c.products = products
	c.mu.Unlock()

	c.logger.Debug().Int("count", len(products)).Msg("catalogue loaded")
	return nil
}

// Products returns a snapshot of the loaded catalogue.
func (c *Controller) Products() []model.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Product looks up a catalogue entry by id.
func (c *Controller) Product(id string) (model.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// AddToCart puts a catalogue product into the cart. A line with the same
// (product, options) identity is merged by incrementing its quantity;
// differing options create a distinct line. A confirmation notification
// naming the product is always pushed on success. Products whose category
// carries static options pass those through when the caller selected none.
func (c *Controller) AddToCart(productID string, selected model.Options) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var product *model.Product
	for i := range c.products {
		if c.products[i].ID == productID {
			product = &c.products[i]
			break
		}
	}
	if product == nil {
		c.logger.Warn().Str("product_id", productID).Msg("add to cart for unknown product")
		return model.ErrProductNotFound
	}

	if selected == nil && product.Category != model.CategoryArt {
		selected = product.Options
	}

	c.cart.Add(*product, selected)
	c.feed.Push(LevelSuccess, fmt.Sprintf("%s added to cart", product.Name))

	return nil
}

// RemoveFromCart removes the line item at the given position.
func (c *Controller) RemoveFromCart(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cart.Remove(index) {
		return model.ErrInvalidIndex
	}
	return nil
}

// UpdateQuantity replaces the quantity of the line item at the given
// position; zero removes the line.
func (c *Controller) UpdateQuantity(index, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cart.UpdateQuantity(index, quantity) {
		return model.ErrInvalidIndex
	}
	return nil
}

// CartLines returns a snapshot of the cart.
func (c *Controller) CartLines() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.Lines()
}

// CartTotal recomputes the cart total.
func (c *Controller) CartTotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.Total()
}

// Checkout validates the form, snapshots the cart and submits the order.
//
// Rejections before submission (empty email, empty cart) make no backend
// call and change no state beyond the retained form fields. Exactly one
// submission may be in flight at a time. On success the cart and form are
// cleared; on failure both are preserved so the user can retry manually.
// There is no automatic retry.
func (c *Controller) Checkout(ctx context.Context, email, note string) (*model.Order, error) {
	c.mu.Lock()

	c.email, c.note = email, note

	if strings.TrimSpace(email) == "" {
		c.feed.Push(LevelError, "Email is required")
		c.mu.Unlock()
		return nil, model.ErrEmailRequired
	}

	if c.cart.Len() == 0 {
		c.feed.Push(LevelError, "Cart is empty")
		c.mu.Unlock()
		return nil, model.ErrEmptyCart
	}

	if c.submitting {
		c.mu.Unlock()
		return nil, model.ErrCheckoutInFlight
	}
	c.submitting = true

	req := &model.OrderRequest{
		CustomerEmail: strings.TrimSpace(email),
		Items:         c.cart.Items(),
	}
	if trimmed := strings.TrimSpace(note); trimmed != "" {
		req.CustomerNote = &trimmed
	}

	c.mu.Unlock()

	// The backend recomputes and owns the total of record; the locally
	// computed total is never sent.
	order, err := c.backend.SubmitOrder(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false

	if err != nil {
		c.logger.Error().Err(err).Msg("order submission failed")
		c.feed.Push(LevelError, "Order submission failed. Please try again.")
		return nil, fmt.Errorf("checkout: %w", err)
	}

	c.cart.Clear()
	c.email, c.note = "", ""
	c.feed.Push(LevelSuccess, "Order placed successfully!")

	c.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(order.Items)).
		Msg("checkout completed")

	return order, nil
}

// CheckoutForm returns the retained email and note fields. They survive a
// failed submission and reset on a successful one.
func (c *Controller) CheckoutForm() (email, note string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.email, c.note
}

// Submitting reports whether a checkout is in flight.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Orders fetches the full order list for the admin panel. No pagination, no
// filtering; failure produces an error notification and an empty list.
func (c *Controller) Orders(ctx context.Context) ([]model.Order, error) {
	orders, err := c.backend.FetchOrders(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to load orders")
		c.feed.Push(LevelError, "Could not load orders")
		return nil, fmt.Errorf("load orders: %w", err)
	}

	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// Notifications returns the session's unexpired notifications.
func (c *Controller) Notifications() []Notification {
	return c.feed.Active()
}
