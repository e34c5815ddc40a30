package repositories

import (
	"context"
	"encoding/json"
	"log"

	"cart-gateway/models"
)

const guestCartKeyPrefix = "guest_cart:"

// GuestCartRepository persists guest carts as JSON blobs in a CartStore.
// Every operation is a full read or a full write of the cart; there are no
// field-level updates, so the last writer wins.
type GuestCartRepository struct {
	store CartStore
}

func NewGuestCartRepository(store CartStore) *GuestCartRepository {
	return &GuestCartRepository{store: store}
}

func guestCartKey(guestID string) string {
	return guestCartKeyPrefix + guestID
}

// Get returns the stored cart, or an empty cart when none exists.
// A payload that fails to parse is treated as an empty cart rather than an
// error, so a corrupted guest cart never blocks checkout.
func (r *GuestCartRepository) Get(ctx context.Context, guestID string) (*models.Cart, error) {
	raw, found, err := r.store.Read(ctx, guestCartKey(guestID))
	if err != nil {
		return nil, err
	}
	if !found {
		return models.EmptyCart(), nil
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		log.Printf("Discarding unparseable guest cart for %s: %v", guestID, err)
		return models.EmptyCart(), nil
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

func (r *GuestCartRepository) Save(ctx context.Context, guestID string, cart *models.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.store.Write(ctx, guestCartKey(guestID), string(raw))
}

// Delete drops the cart entry outright. Clearing never writes an empty cart.
func (r *GuestCartRepository) Delete(ctx context.Context, guestID string) error {
	return r.store.Delete(ctx, guestCartKey(guestID))
}
