package storefront

import (
	"encoding/json"
	"math"
	"strconv"

	"digikart/internal/model"
)

// LineItem is one entry in the cart: a product, the options chosen for it,
// and a quantity. Name and unit price are captured at add time and never
// re-fetched.
type LineItem struct {
	ProductID       string        `json:"product_id"`
	ProductName     string        `json:"product_name"`
	Price           float64       `json:"price"`
	Quantity        int           `json:"quantity"`
	SelectedOptions model.Options `json:"selected_options,omitempty"`

	key string
}

// Cart is an ordered sequence of line items. It is transient, per-session
// state; it is never persisted. Identity of a line item is the pair
// (product id, selected options): adding the same pair again increments the
// quantity, different options create a distinct line.
//
// Cart is not safe for concurrent use; the owning Controller serialises
// access.
type Cart struct {
	lines []LineItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// lineKey builds the canonical identity key for a (product, options) pair.
// encoding/json sorts map keys recursively, so two option maps with equal
// values always produce the same key regardless of insertion order. Nil and
// empty option maps collapse to the same key.
func lineKey(productID string, opts model.Options) string {
	if len(opts) == 0 {
		return productID + "\x00null"
	}
	encoded, err := json.Marshal(opts)
	if err != nil {
		// Options come out of decoded JSON, so this cannot happen for any
		// payload the storefront accepts.
		return productID + "\x00unencodable"
	}
	return productID + "\x00" + string(encoded)
}

// Add puts a product into the cart. An existing line with the same identity
// key gets its quantity incremented by one; otherwise a new line with
// quantity one is appended.
func (c *Cart) Add(p model.Product, opts model.Options) {
	key := lineKey(p.ID, opts)

	for i := range c.lines {
		if c.lines[i].key == key {
			c.lines[i].Quantity++
			return
		}
	}

	c.lines = append(c.lines, LineItem{
		ProductID:       p.ID,
		ProductName:     p.Name,
		Price:           p.Price,
		Quantity:        1,
		SelectedOptions: opts,
		key:             key,
	})
}

// Remove deletes the line item at the given position. It reports whether the
// index was in range.
func (c *Cart) Remove(index int) bool {
	if index < 0 || index >= len(c.lines) {
		return false
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return true
}

// UpdateQuantity replaces the quantity of the line item at the given
// position; a quantity of zero removes the line. Negative quantities are a
// caller error and are stored as-is.
func (c *Cart) UpdateQuantity(index, quantity int) bool {
	if index < 0 || index >= len(c.lines) {
		return false
	}
	if quantity == 0 {
		return c.Remove(index)
	}
	c.lines[index].Quantity = quantity
	return true
}

// Total recomputes the cart total from scratch: the sum of unit price times
// quantity across all lines. There is no hidden accumulator to drift.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Len returns the number of line items.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy of the cart's line items.
func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// Items captures the cart contents as order items: the snapshot submitted at
// checkout, detached from further cart mutation.
func (c *Cart) Items() []model.OrderItem {
	items := make([]model.OrderItem, len(c.lines))
	for i, line := range c.lines {
		items[i] = model.OrderItem{
			ProductID:       line.ProductID,
			ProductName:     line.ProductName,
			Price:           line.Price,
			Quantity:        line.Quantity,
			SelectedOptions: line.SelectedOptions,
		}
	}
	return items
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// FormatAmount renders a monetary value with two-decimal display rounding.
// Amounts are stored unrounded; rounding happens only at presentation time.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', 2, 64)
}
