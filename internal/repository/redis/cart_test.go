package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyrazari/storefront/internal/domain"
	apperrors "github.com/nyrazari/storefront/pkg/errors"
)

func setupCartStore(t *testing.T) (*CartStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCartStore(client, 24*time.Hour), mr
}

func sampleCart() *domain.Cart {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &domain.Cart{
		SessionID: "sess-001",
		Items: []domain.CartItem{
			{
				ProductID: "2",
				Name:      "Rose Gold Wedding Band",
				Price:     79900,
				Image:     "/assets/ring-rose-gold-band.jpg",
				Quantity:  2,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ---------------------------------------------------------------------------
// Get
// ---------------------------------------------------------------------------

func TestCartStore_Get_Success(t *testing.T) {
	store, mr := setupCartStore(t)

	cart := sampleCart()
	data, err := json.Marshal(cart)
	require.NoError(t, err)
	require.NoError(t, mr.Set("storefront:cart:"+cart.SessionID, string(data)))

	got, err := store.Get(context.Background(), cart.SessionID)
	require.NoError(t, err)
	assert.Equal(t, cart.SessionID, got.SessionID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "2", got.Items[0].ProductID)
	assert.Equal(t, int64(79900), got.Items[0].Price)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestCartStore_Get_NotFound(t *testing.T) {
	store, _ := setupCartStore(t)

	got, err := store.Get(context.Background(), "no-such-session")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartStore_Get_InvalidJSON(t *testing.T) {
	store, mr := setupCartStore(t)

	require.NoError(t, mr.Set("storefront:cart:sess-bad", "{{not-valid-json"))

	got, err := store.Get(context.Background(), "sess-bad")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal cart")
}

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

func TestCartStore_Save_Success(t *testing.T) {
	store, mr := setupCartStore(t)

	cart := sampleCart()
	require.NoError(t, store.Save(context.Background(), cart))

	assert.True(t, mr.Exists("storefront:cart:"+cart.SessionID))

	raw, err := mr.Get("storefront:cart:" + cart.SessionID)
	require.NoError(t, err)

	var stored domain.Cart
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, cart.SessionID, stored.SessionID)
	assert.Equal(t, cart.Items, stored.Items)
}

func TestCartStore_Save_SetsTTL(t *testing.T) {
	store, mr := setupCartStore(t)

	require.NoError(t, store.Save(context.Background(), sampleCart()))

	ttl := mr.TTL("storefront:cart:sess-001")
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestCartStore_Save_Overwrites(t *testing.T) {
	store, _ := setupCartStore(t)
	ctx := context.Background()

	cart := sampleCart()
	require.NoError(t, store.Save(ctx, cart))

	cart.Items[0].Quantity = 5
	require.NoError(t, store.Save(ctx, cart))

	got, err := store.Get(ctx, cart.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Items[0].Quantity)
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestCartStore_Delete(t *testing.T) {
	store, mr := setupCartStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleCart()))
	require.NoError(t, store.Delete(ctx, "sess-001"))

	assert.False(t, mr.Exists("storefront:cart:sess-001"))
}

func TestCartStore_Delete_MissingIsNoError(t *testing.T) {
	store, _ := setupCartStore(t)

	assert.NoError(t, store.Delete(context.Background(), "never-existed"))
}
