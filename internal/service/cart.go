package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nyrazari/storefront/internal/domain"
	"github.com/nyrazari/storefront/internal/repository"
	apperrors "github.com/nyrazari/storefront/pkg/errors"
)

// CartService tracks what a single shopper session intends to buy. Carts are
// stored as per-session snapshots; derived aggregates (item count, total) are
// methods on the domain cart and are never stored.
type CartService struct {
	store  repository.CartStore
	logger *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(store repository.CartStore, logger *slog.Logger) *CartService {
	return &CartService{
		store:  store,
		logger: logger,
	}
}

// Get retrieves the cart for a session. If no cart exists, returns an empty cart.
func (s *CartService) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return newEmptyCart(sessionID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

// AddItem adds a product to the session's cart. If a line for the product
// already exists, its quantity is incremented; otherwise a new line is
// inserted with a snapshot of the product (id, name, effective price, first
// image) taken now. Quantities below 1 are normalized to 1. The operation is
// total: it does not check stock and never rejects a well-formed product.
func (s *CartService) AddItem(ctx context.Context, sessionID string, product domain.Product, quantity int) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if product.ID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if quantity < 1 {
		quantity = 1
	}

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if idx := cart.FindItemIndex(product.ID); idx >= 0 {
		cart.Items[idx].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.EffectivePrice(),
			Image:     product.PrimaryImage(),
			Quantity:  quantity,
		})
	}

	cart.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("session_id", sessionID),
		slog.String("product_id", product.ID),
		slog.Int("quantity", quantity),
		slog.Int("item_count", cart.ItemCount()),
	)

	return cart, nil
}

// SetQuantity overwrites the quantity of the line for the given product.
// A quantity below 1 removes the line. Returns a not-found error when the
// product is not in the cart.
func (s *CartService) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	if quantity < 1 {
		return s.RemoveItem(ctx, sessionID, productID)
	}

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := cart.FindItemIndex(productID)
	if idx < 0 {
		return nil, apperrors.NotFound("cart item", productID)
	}

	cart.Items[idx].Quantity = quantity
	cart.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.logger.InfoContext(ctx, "cart item quantity updated",
		slog.String("session_id", sessionID),
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
	)

	return cart, nil
}

// RemoveItem deletes the line for the given product from the cart. Returns a
// not-found error when the product is not in the cart.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := cart.FindItemIndex(productID)
	if idx < 0 {
		return nil, apperrors.NotFound("cart item", productID)
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	cart.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("session_id", sessionID),
		slog.String("product_id", productID),
	)

	return cart, nil
}

// Clear removes all lines from the session's cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.InvalidInput("session id is required")
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	s.logger.InfoContext(ctx, "cart cleared",
		slog.String("session_id", sessionID),
	)

	return nil
}

// newEmptyCart creates a new empty cart for the given session.
func newEmptyCart(sessionID string) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		SessionID: sessionID,
		Items:     []domain.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
