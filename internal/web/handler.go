package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"digikart/internal/model"
	"digikart/internal/storefront"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// errCodeBackend marks failures of the remote marketplace store.
const errCodeBackend = "BACKEND_ERROR"

// Handler serves the storefront's JSON API: catalogue, cart, checkout, the
// admin order panel and the notification feed.
type Handler struct {
	sessions *SessionManager
	logger   zerolog.Logger
}

// NewHandler creates a storefront handler.
func NewHandler(sessions *SessionManager, logger zerolog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger.With().Str("handler", "storefront").Logger(),
	}
}

// AddItemRequest is the payload for putting a product into the cart.
type AddItemRequest struct {
	ProductID       string        `json:"product_id"`
	SelectedOptions model.Options `json:"selected_options,omitempty"`
}

// UpdateQuantityRequest is the payload for changing a line item's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest is the payload for submitting the cart as an order.
type CheckoutRequest struct {
	CustomerEmail string `json:"customer_email"`
	CustomerNote  string `json:"customer_note,omitempty"`
}

// CartView is the cart as rendered to the page: the lines, the raw total,
// and the total rounded to two decimals for display.
type CartView struct {
	Items        []storefront.LineItem `json:"items"`
	Total        float64               `json:"total"`
	DisplayTotal string                `json:"display_total"`
}

// Catalog handles GET /api/catalog. An empty catalogue triggers one fetch
// from the backend, which is how a page load populates the product display;
// a failed fetch leaves it empty and surfaces a notification.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	ctrl := h.sessions.Attach(w, r)

	products := ctrl.Products()
	if len(products) == 0 {
		if err := ctrl.LoadProducts(r.Context()); err != nil {
			respondError(w, http.StatusBadGateway, errCodeBackend, "could not load products")
			return
		}
		products = ctrl.Products()
	}

	respondJSON(w, http.StatusOK, products)
}

// GetCart handles GET /api/cart.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctrl := h.sessions.Attach(w, r)
	respondJSON(w, http.StatusOK, cartView(ctrl))
}

// AddItem handles POST /api/cart/items. Art products require a style
// selection before they may be added; other categories pass through the
// static options the product carries.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctrl := h.sessions.Attach(w, r)

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid JSON body")
		return
	}

	product, ok := ctrl.Product(req.ProductID)
	if !ok {
		respondError(w, http.StatusNotFound, model.ErrCodeProductNotFound, "product not found")
		return
	}

	if product.Category == model.CategoryArt {
		if req.SelectedOptions == nil || req.SelectedOptions["style"] == nil {
			respondError(w, http.StatusUnprocessableEntity, model.ErrCodeStyleRequired, model.ErrStyleRequired.Message)
			return
		}
	}

	if err := ctrl.AddToCart(req.ProductID, req.SelectedOptions); err != nil {
		h.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, cartView(ctrl))
}

// UpdateItem handles PUT /api/cart/items/{index}. A quantity of zero removes
// the line.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctrl := h.sessions.Attach(w, r)

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, model.ErrCodeInvalidIndex, "index must be an integer")
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid JSON body")
		return
	}

	if err := ctrl.UpdateQuantity(index, req.Quantity); err != nil {
		h.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartView(ctrl))
}

// RemoveItem handles DELETE /api/cart/items/{index}.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctrl := h.sessions.Attach(w, r)

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, model.ErrCodeInvalidIndex, "index must be an integer")
		return
	}

	if err := ctrl.RemoveFromCart(index); err != nil {
		h.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartView(ctrl))
}

// Checkout handles POST /api/checkout. A 201 means the order was accepted
// and the cart cleared; the page closes the checkout dialog. Any other
// status leaves cart and form intact so the user can retry.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctrl := h.sessions.Attach(w, r)

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid JSON body")
		return
	}

	order, err := ctrl.Checkout(r.Context(), req.CustomerEmail, req.CustomerNote)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

// AdminOrders handles GET /api/admin/orders: the whole order list, newest
// first. Failure produces an error status; the panel renders an empty list.
func (h *Handler) AdminOrders(w http.ResponseWriter, r *http.Request) {
	ctrl := h.sessions.Attach(w, r)

	orders, err := ctrl.Orders(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, errCodeBackend, "could not load orders")
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// Notifications handles GET /api/notifications.
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	ctrl := h.sessions.Attach(w, r)

	notifications := ctrl.Notifications()
	if notifications == nil {
		notifications = []storefront.Notification{}
	}

	respondJSON(w, http.StatusOK, notifications)
}

// respondDomainError maps controller errors to HTTP statuses: unknown
// product 404, in-flight checkout 409, other business rejections 422, and
// backend failures 502.
func (h *Handler) respondDomainError(w http.ResponseWriter, err error) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusUnprocessableEntity
		switch domainErr.Code {
		case model.ErrCodeProductNotFound, model.ErrCodeOrderNotFound:
			status = http.StatusNotFound
		case model.ErrCodeCheckoutInFlight:
			status = http.StatusConflict
		}
		respondError(w, status, domainErr.Code, domainErr.Message)
		return
	}

	h.logger.Error().Err(err).Msg("backend call failed")
	respondError(w, http.StatusBadGateway, errCodeBackend, "backend request failed")
}

// cartView snapshots the session cart for rendering.
func cartView(ctrl *storefront.Controller) CartView {
	lines := ctrl.CartLines()
	if lines == nil {
		lines = []storefront.LineItem{}
	}
	total := ctrl.CartTotal()

	return CartView{
		Items:        lines,
		Total:        total,
		DisplayTotal: storefront.FormatAmount(total),
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return
	}
}

// respondError writes a standardised error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, model.ErrorResponse{Error: message, Code: code})
}
