package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nyrazari/storefront/internal/domain"
	"github.com/nyrazari/storefront/internal/repository"
	apperrors "github.com/nyrazari/storefront/pkg/errors"
)

// CatalogService owns the authoritative in-memory product list. Every
// mutation is mirrored to the snapshot store; a failed mirror write is
// logged and absorbed, so the in-memory copy never diverges from what
// callers observe.
type CatalogService struct {
	mu       sync.RWMutex
	products []domain.Product

	store  repository.CatalogStore
	logger *slog.Logger
}

// NewCatalogService loads the catalog snapshot from the store. When no
// snapshot exists or the stored value cannot be parsed, it falls back to the
// provided default catalog and persists that.
func NewCatalogService(ctx context.Context, store repository.CatalogStore, defaults []domain.Product, logger *slog.Logger) *CatalogService {
	s := &CatalogService{
		store:  store,
		logger: logger,
	}

	products, err := store.Load(ctx)
	if err != nil {
		logger.WarnContext(ctx, "catalog snapshot unusable, falling back to default catalog",
			slog.String("error", err.Error()),
			slog.Int("default_count", len(defaults)),
		)
		products = defaults
		if err := store.Save(ctx, products); err != nil {
			logger.ErrorContext(ctx, "failed to persist default catalog",
				slog.String("error", err.Error()),
			)
		}
	}

	s.products = products
	return s
}

// CreateProductInput holds the parameters for adding a product.
type CreateProductInput struct {
	Name        string
	Description string
	Category    string
	Price       int64
	OfferPrice  *int64
	Stock       int
	Images      []string
}

// UpdateProductInput holds the parameters for a partial product update.
// Nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Category    *string
	Price       *int64
	OfferPrice  *int64
	Stock       *int
	Images      []string
}

// Add assigns a fresh unique id to the product, appends it to the catalog,
// and returns the stored record.
func (s *CatalogService) Add(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if input.Price <= 0 {
		return nil, apperrors.InvalidInput("price must be greater than 0")
	}
	if input.Stock < 0 {
		return nil, apperrors.InvalidInput("stock must not be negative")
	}
	if len(input.Images) == 0 {
		return nil, apperrors.InvalidInput("at least one image is required")
	}

	now := time.Now().UTC()
	product := domain.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		OfferPrice:  input.OfferPrice,
		Stock:       input.Stock,
		Images:      input.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.products = append(s.products, product)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "product added",
		slog.String("product_id", product.ID),
		slog.String("category", product.Category),
	)

	return &product, nil
}

// Update merges the non-nil fields of input into the matching product and
// returns the updated record. Returns a not-found error for a missing id.
func (s *CatalogService) Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return nil, apperrors.NotFound("product", id)
	}

	// Validate everything before touching the record so a rejected update
	// never leaves a partial merge behind.
	if input.Price != nil && *input.Price <= 0 {
		return nil, apperrors.InvalidInput("price must be greater than 0")
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, apperrors.InvalidInput("stock must not be negative")
	}

	p := &s.products[idx]
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.OfferPrice != nil {
		p.OfferPrice = input.OfferPrice
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	if len(input.Images) > 0 {
		p.Images = input.Images
	}
	p.UpdatedAt = time.Now().UTC()

	s.persistLocked(ctx)

	s.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", id),
	)

	updated := *p
	return &updated, nil
}

// Delete removes the matching product. Returns a not-found error for a
// missing id.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return apperrors.NotFound("product", id)
	}

	s.products = append(s.products[:idx], s.products[idx+1:]...)
	s.persistLocked(ctx)

	s.logger.InfoContext(ctx, "product deleted",
		slog.String("product_id", id),
	)

	return nil
}

// GetByID returns the product with the given id.
func (s *CatalogService) GetByID(id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return nil, apperrors.NotFound("product", id)
	}

	p := s.products[idx]
	return &p, nil
}

// List returns all products in insertion order.
func (s *CatalogService) List() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetByCategory returns all products in the given category, preserving
// catalog order.
func (s *CatalogService) GetByCategory(category string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search returns all products whose name, description, or category contains
// the query, case-insensitively.
func (s *CatalogService) Search(query string) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Product
	for _, p := range s.products {
		if p.Matches(query) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category values present in the catalog,
// in first-seen order.
func (s *CatalogService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// indexOfLocked returns the index of the product with the given id, or -1.
// Callers must hold s.mu.
func (s *CatalogService) indexOfLocked(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// persistLocked mirrors the in-memory catalog to the snapshot store. Write
// failures are logged, not returned: the in-memory copy stays authoritative
// for the session, matching the storefront's storage-as-mirror semantics.
// Callers must hold s.mu.
func (s *CatalogService) persistLocked(ctx context.Context) {
	snapshot := make([]domain.Product, len(s.products))
	copy(snapshot, s.products)

	if err := s.store.Save(ctx, snapshot); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist catalog snapshot",
			slog.String("error", err.Error()),
		)
	}
}
