package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nyrazari/storefront/internal/domain"
	apperrors "github.com/nyrazari/storefront/pkg/errors"
)

// catalogKey is the fixed key the whole-catalog snapshot lives under.
const catalogKey = "storefront:products"

// CatalogStore implements repository.CatalogStore using Redis. The catalog is
// stored as one JSON document, read back on startup and rewritten after every
// mutation.
type CatalogStore struct {
	client *redis.Client
}

// NewCatalogStore creates a new Redis-backed catalog store.
func NewCatalogStore(client *redis.Client) *CatalogStore {
	return &CatalogStore{client: client}
}

// Load reads the catalog snapshot from Redis.
func (s *CatalogStore) Load(ctx context.Context) ([]domain.Product, error) {
	data, err := s.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFound("catalog snapshot", catalogKey)
		}
		return nil, fmt.Errorf("redis get catalog: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("unmarshal catalog snapshot: %w", err)
	}

	return products, nil
}

// Save overwrites the catalog snapshot in Redis. The snapshot has no TTL:
// the catalog outlives shopper sessions.
func (s *CatalogStore) Save(ctx context.Context, products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal catalog snapshot: %w", err)
	}

	if err := s.client.Set(ctx, catalogKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set catalog: %w", err)
	}

	return nil
}
