package repositories

import (
	"context"
	"testing"

	"cart-gateway/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestGetMissingCartReturnsEmpty(t *testing.T) {
	repo := NewGuestCartRepository(NewMemoryStore())

	cart, err := repo.Get(context.Background(), "g1")
	require.NoError(t, err)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}

func TestSaveThenGetRoundTrip(t *testing.T) {
	repo := NewGuestCartRepository(NewMemoryStore())
	ctx := context.Background()

	saved := &models.Cart{Items: []models.CartItem{
		{ID: "1693526400000_ab12", ProductID: intPtr(5), ProductName: "Argan Oil", Price: 120, Quantity: 2},
	}}
	require.NoError(t, repo.Save(ctx, "g1", saved))

	got, err := repo.Get(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, saved.Items[0], got.Items[0])
}

func TestCorruptPayloadReadsAsEmptyCart(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Write(context.Background(), "guest_cart:g1", "{not json"))

	repo := NewGuestCartRepository(store)
	cart, err := repo.Get(context.Background(), "g1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestDeleteDropsTheKey(t *testing.T) {
	store := NewMemoryStore()
	repo := NewGuestCartRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "g1", &models.Cart{Items: []models.CartItem{{ID: "x", Quantity: 1}}}))
	require.NoError(t, repo.Delete(ctx, "g1"))

	_, found, err := store.Read(ctx, "guest_cart:g1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCartsAreScopedPerGuest(t *testing.T) {
	repo := NewGuestCartRepository(NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "g1", &models.Cart{Items: []models.CartItem{{ID: "x", Quantity: 1}}}))

	other, err := repo.Get(ctx, "g2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}
