package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyrazari/storefront/internal/domain"
	apperrors "github.com/nyrazari/storefront/pkg/errors"
)

// --- Fake store ---

type fakeCartStore struct {
	carts   map[string]*domain.Cart
	getErr  error
	saveErr error
	delErr  error
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[string]*domain.Cart)}
}

func (f *fakeCartStore) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	cart, ok := f.carts[sessionID]
	if !ok {
		return nil, apperrors.NotFound("cart", sessionID)
	}
	return cart, nil
}

func (f *fakeCartStore) Save(ctx context.Context, cart *domain.Cart) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.carts[cart.SessionID] = cart
	return nil
}

func (f *fakeCartStore) Delete(ctx context.Context, sessionID string) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.carts, sessionID)
	return nil
}

// --- Helpers ---

func newTestCart(t *testing.T) (*CartService, *fakeCartStore) {
	t.Helper()
	store := newFakeCartStore()
	return NewCartService(store, newTestLogger()), store
}

func ringProduct() domain.Product {
	return domain.Product{
		ID:       "p1",
		Name:     "Rose Gold Wedding Band",
		Price:    79900,
		Stock:    15,
		Category: "rings",
		Images:   []string{"/assets/band.jpg", "/assets/band-side.jpg"},
	}
}

// --- Get ---

func TestCartGet_EmptyForNewSession(t *testing.T) {
	svc, _ := newTestCart(t)

	cart, err := svc.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", cart.SessionID)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalAmount())
}

func TestCartGet_RequiresSession(t *testing.T) {
	svc, _ := newTestCart(t)

	_, err := svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCartGet_PropagatesStoreError(t *testing.T) {
	svc, store := newTestCart(t)
	store.getErr = errors.New("redis down")

	_, err := svc.Get(context.Background(), "sess-1")
	assert.Error(t, err)
}

// --- AddItem ---

func TestAddItem_SnapshotsProduct(t *testing.T) {
	svc, _ := newTestCart(t)

	cart, err := svc.AddItem(context.Background(), "sess-1", ringProduct(), 2)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.Equal(t, "p1", item.ProductID)
	assert.Equal(t, "Rose Gold Wedding Band", item.Name)
	assert.Equal(t, int64(79900), item.Price)
	assert.Equal(t, "/assets/band.jpg", item.Image)
	assert.Equal(t, 2, item.Quantity)
}

func TestAddItem_UsesOfferPrice(t *testing.T) {
	svc, _ := newTestCart(t)

	p := ringProduct()
	off := int64(69900)
	p.OfferPrice = &off

	cart, err := svc.AddItem(context.Background(), "sess-1", p, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(69900), cart.Items[0].Price)
}

func TestAddItem_MergesExistingLine(t *testing.T) {
	svc, _ := newTestCart(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", ringProduct(), 2)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "sess-1", ringProduct(), 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.ItemCount())
}

func TestAddItem_KeepsOriginalPriceSnapshot(t *testing.T) {
	svc, _ := newTestCart(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", ringProduct(), 1)
	require.NoError(t, err)

	// Price changed in the catalog after the line was created.
	p := ringProduct()
	p.Price = 99900
	cart, err := svc.AddItem(ctx, "sess-1", p, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(79900), cart.Items[0].Price)
	assert.Equal(t, int64(159800), cart.TotalAmount())
}

func TestAddItem_NormalizesQuantity(t *testing.T) {
	svc, _ := newTestCart(t)

	cart, err := svc.AddItem(context.Background(), "sess-1", ringProduct(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart, err = svc.AddItem(context.Background(), "sess-2", ringProduct(), -3)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddItem_DistinctProductsDistinctLines(t *testing.T) {
	svc, _ := newTestCart(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", ringProduct(), 1)
	require.NoError(t, err)

	other := domain.Product{ID: "p2", Name: "Gold Chain Necklace", Price: 159900, Images: []string{"/assets/chain.jpg"}}
	cart, err := svc.AddItem(ctx, "sess-1", other, 2)
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.ItemCount())
	assert.Equal(t, int64(79900+2*159900), cart.TotalAmount())
}

func TestAddItem_SessionsAreIsolated(t *testing.T) {
	svc, _ := newTestCart(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-a", ringProduct(), 1)
	require.NoError(t, err)

	cart, err := svc.Get(ctx, "sess-b")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

// --- SetQuantity ---

func TestSetQuantity(t *testing.T) {
	svc, _ := newTestCart(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", ringProduct(), 1)
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, "sess-1", "p1", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.Equal(t, int64(4*79900), cart.TotalAmount())
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	svc, _ := newTestCart(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", ringProduct(), 2)
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, "sess-1", "p1", 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestSetQuantity_MissingLine(t *testing.T) {
	svc, _ := newTestCart(t)

	_, err := svc.SetQuantity(context.Background(), "sess-1", "p1", 2)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// --- RemoveItem ---

func TestRemoveItem(t *testing.T) {
	svc, _ := newTestCart(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", ringProduct(), 1)
	require.NoError(t, err)
	other := domain.Product{ID: "p2", Name: "Gold Chain Necklace", Price: 159900, Images: []string{"/assets/chain.jpg"}}
	_, err = svc.AddItem(ctx, "sess-1", other, 1)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "sess-1", "p1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestRemoveItem_MissingLine(t *testing.T) {
	svc, _ := newTestCart(t)

	_, err := svc.RemoveItem(context.Background(), "sess-1", "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// --- Clear ---

func TestClear(t *testing.T) {
	svc, store := newTestCart(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sess-1", ringProduct(), 2)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "sess-1"))

	assert.NotContains(t, store.carts, "sess-1")
	cart, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
