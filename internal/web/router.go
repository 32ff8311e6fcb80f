package web

import (
	"net/http"

	"digikart/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter creates the storefront router with all routes and middleware
// configured.
func NewRouter(h *Handler, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", h.Catalog)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Post("/items", h.AddItem)
			r.Put("/items/{index}", h.UpdateItem)
			r.Delete("/items/{index}", h.RemoveItem)
		})

		r.Post("/checkout", h.Checkout)
		r.Get("/admin/orders", h.AdminOrders)
		r.Get("/notifications", h.Notifications)
	})

	return r
}
