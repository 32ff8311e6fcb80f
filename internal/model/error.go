package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeEmailRequired    = "EMAIL_REQUIRED"
	ErrCodeEmptyOrder       = "EMPTY_ORDER"
	ErrCodeEmptyCart        = "CART_EMPTY"
	ErrCodeInvalidQuantity  = "INVALID_QUANTITY"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeStyleRequired    = "STYLE_REQUIRED"
	ErrCodeInvalidIndex     = "INVALID_INDEX"
	ErrCodeCheckoutInFlight = "CHECKOUT_IN_FLIGHT"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmailRequired    = NewDomainError(ErrCodeEmailRequired, "Customer email is required")
	ErrEmptyOrder       = NewDomainError(ErrCodeEmptyOrder, "Order must contain at least one item")
	ErrEmptyCart        = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrInvalidQuantity  = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrStyleRequired    = NewDomainError(ErrCodeStyleRequired, "Art products require a style selection")
	ErrInvalidIndex     = NewDomainError(ErrCodeInvalidIndex, "Cart line index out of range")
	ErrCheckoutInFlight = NewDomainError(ErrCodeCheckoutInFlight, "A checkout is already in progress")
	ErrOrderNotFound    = NewDomainError(ErrCodeOrderNotFound, "Order not found")
)
