package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nyrazari/storefront/internal/service"
	"github.com/nyrazari/storefront/pkg/health"
	"github.com/nyrazari/storefront/pkg/middleware"
)

// RouterConfig carries the dependencies of the HTTP surface.
type RouterConfig struct {
	Catalog       *service.CatalogService
	Carts         *service.CartService
	Checkout      *service.CheckoutService
	Health        *health.Handler
	Logger        *slog.Logger
	AdminPassword string
	AdminToken    string
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(cfg.Logger))

	// Health check endpoints
	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Catalog API endpoints. Reads are public; mutations sit behind the
	// admin token gate.
	catalogHandler := NewCatalogHandler(cfg.Catalog, cfg.Logger)

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", catalogHandler.ListProducts)
		r.Get("/{id}", catalogHandler.GetProduct)

		r.Group(func(r chi.Router) {
			r.Use(AdminOnly(cfg.AdminToken))

			r.Post("/", catalogHandler.CreateProduct)
			r.Patch("/{id}", catalogHandler.UpdateProduct)
			r.Delete("/{id}", catalogHandler.DeleteProduct)
		})
	})

	r.Get("/api/v1/categories", catalogHandler.ListCategories)

	// Cart API endpoints, one cart per shopper session.
	cartHandler := NewCartHandler(cfg.Carts, cfg.Catalog, cfg.Logger)

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(SessionIDFromHeader)

		r.Get("/", cartHandler.GetCart)
		r.Delete("/", cartHandler.ClearCart)

		r.Post("/items", cartHandler.AddItem)
		r.Put("/items/{productId}", cartHandler.UpdateItemQuantity)
		r.Delete("/items/{productId}", cartHandler.RemoveItem)
	})

	// Checkout
	checkoutHandler := NewCheckoutHandler(cfg.Checkout, cfg.Logger)

	r.Route("/api/v1/checkout", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(SessionIDFromHeader)

		r.Post("/", checkoutHandler.Checkout)
	})

	// Admin login
	adminHandler := NewAdminHandler(cfg.AdminPassword, cfg.AdminToken, cfg.Logger)

	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/login", adminHandler.Login)
	})

	return r
}
