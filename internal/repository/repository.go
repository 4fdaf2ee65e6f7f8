package repository

import (
	"context"

	"github.com/nyrazari/storefront/internal/domain"
)

// CatalogStore persists the product list as a single whole-collection
// snapshot under a fixed key. It is a side-effect port: the in-memory copy
// held by the catalog service stays authoritative.
type CatalogStore interface {
	// Load reads the catalog snapshot. Returns an error matching
	// apperrors.ErrNotFound when no snapshot exists.
	Load(ctx context.Context) ([]domain.Product, error)

	// Save overwrites the catalog snapshot.
	Save(ctx context.Context, products []domain.Product) error
}

// CartStore persists one cart snapshot per shopper session.
type CartStore interface {
	// Get retrieves a cart by its session ID. Returns an error matching
	// apperrors.ErrNotFound when the session has no cart.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)

	// Save persists a cart, overwriting any existing cart for the session.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes the cart for the session.
	Delete(ctx context.Context, sessionID string) error
}
