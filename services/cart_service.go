package services

import (
	"context"
	"log"
	"strconv"

	"cart-gateway/models"
	"cart-gateway/repositories"
	"cart-gateway/utils"
)

// Catalog resolves product ids, for snapshotting guest cart lines.
type Catalog interface {
	GetProductByID(ctx context.Context, id int) (*models.Product, error)
}

// ServerCart is the authenticated cart owned by the upstream backend.
type ServerCart interface {
	GetCart(ctx context.Context, token string) (*models.Cart, error)
	AddItem(ctx context.Context, token string, item models.ServerAddItem) (*models.Cart, error)
	UpdateItem(ctx context.Context, token string, itemID models.ItemID, quantity int) (*models.Cart, error)
	RemoveItem(ctx context.Context, token string, itemID models.ItemID) (*models.Cart, error)
	ClearCart(ctx context.Context, token string) (*models.Cart, error)
}

// CartService presents one set of cart operations whose backing store is
// picked per call from the session: the upstream cart when a credential is
// present, the guest cart otherwise. Callers cannot tell which one served
// them; every operation hands back the same {items} shape.
type CartService struct {
	guestCarts *repositories.GuestCartRepository
	catalog    Catalog
	serverCart ServerCart
	notifier   *Notifier
}

func NewCartService(guestCarts *repositories.GuestCartRepository, catalog Catalog, serverCart ServerCart, notifier *Notifier) *CartService {
	return &CartService{
		guestCarts: guestCarts,
		catalog:    catalog,
		serverCart: serverCart,
		notifier:   notifier,
	}
}

func variantsEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// sameLine decides whether an existing line absorbs the add instead of a new
// line being appended. Catalog lines match on productId+variantId (both
// absent counts as equal); virtual lines match on name+price.
func sameLine(existing models.CartItem, req models.AddRequest) bool {
	switch add := req.(type) {
	case models.CatalogAdd:
		return existing.ProductID != nil &&
			*existing.ProductID == add.ProductID &&
			variantsEqual(existing.ProductVariantID, add.VariantID)
	case models.VirtualAdd:
		return existing.ProductID == nil &&
			existing.ProductName == add.Name &&
			existing.Price == add.Price
	}
	return false
}

// findLine locates a guest line by id. The locally minted guest id wins;
// as a fallback for carts persisted before guest ids existed, the id is
// compared against the line's productId.
func findLine(items []models.CartItem, itemID string) int {
	for i, item := range items {
		if string(item.ID) == itemID {
			return i
		}
	}
	for i, item := range items {
		if item.ProductID != nil && strconv.Itoa(*item.ProductID) == itemID {
			return i
		}
	}
	return -1
}

// Add appends the requested item, combining with an existing same line.
func (s *CartService) Add(ctx context.Context, sess models.Session, req models.AddRequest) (*models.Cart, error) {
	if sess.Authenticated() {
		add, ok := req.(models.CatalogAdd)
		if !ok {
			// The upstream cart API only speaks catalog references.
			return nil, models.ErrInvalidAddRequest
		}
		cart, err := s.serverCart.AddItem(ctx, sess.Token, models.ServerAddItem{
			ProductID:        add.ProductID,
			Quantity:         add.Quantity,
			ProductVariantID: add.VariantID,
		})
		if err != nil {
			return nil, err
		}
		s.notifier.Emit()
		return cart, nil
	}

	// Resolve the snapshot before touching the stored cart, so a failed
	// lookup leaves no partial write behind.
	var line models.CartItem
	switch add := req.(type) {
	case models.CatalogAdd:
		product, err := s.catalog.GetProductByID(ctx, add.ProductID)
		if err != nil {
			return nil, err
		}
		productID := add.ProductID
		line = models.CartItem{
			ID:               models.ItemID(utils.GenerateGuestItemID()),
			ProductID:        &productID,
			ProductVariantID: add.VariantID,
			ProductName:      product.Name,
			Price:            product.Price,
			ImageURL:         product.FirstImage(),
			Quantity:         add.Quantity,
		}
	case models.VirtualAdd:
		line = models.CartItem{
			ID:          models.ItemID(utils.GenerateGuestItemID()),
			ProductName: add.Name,
			Price:       add.Price,
			ImageURL:    add.ImageURL,
			Quantity:    add.Quantity,
			VariantName: add.VariantLabel,
		}
	default:
		return nil, models.ErrInvalidAddRequest
	}

	cart, err := s.guestCarts.Get(ctx, sess.GuestID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if sameLine(cart.Items[i], req) {
			cart.Items[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, line)
	}

	if err := s.guestCarts.Save(ctx, sess.GuestID, cart); err != nil {
		return nil, err
	}
	s.notifier.Emit()
	return cart, nil
}

// Get returns the current cart. A guest with no stored cart gets an empty
// one, never an error.
func (s *CartService) Get(ctx context.Context, sess models.Session) (*models.Cart, error) {
	if sess.Authenticated() {
		return s.serverCart.GetCart(ctx, sess.Token)
	}
	return s.guestCarts.Get(ctx, sess.GuestID)
}

// Count sums line quantities, for the cart badge.
func (s *CartService) Count(ctx context.Context, sess models.Session) (int, error) {
	cart, err := s.Get(ctx, sess)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

// UpdateQuantity sets the quantity of an existing line. A quantity below 1
// removes the line. A guest update naming a line that does not exist fails
// with ErrItemNotFound; it never silently no-ops.
func (s *CartService) UpdateQuantity(ctx context.Context, sess models.Session, itemID string, quantity int) (*models.Cart, error) {
	if sess.Authenticated() {
		cart, err := s.serverCart.UpdateItem(ctx, sess.Token, models.ItemID(itemID), quantity)
		if err != nil {
			return nil, err
		}
		s.notifier.Emit()
		return cart, nil
	}

	cart, err := s.guestCarts.Get(ctx, sess.GuestID)
	if err != nil {
		return nil, err
	}

	idx := findLine(cart.Items, itemID)
	if idx < 0 {
		return nil, models.ErrItemNotFound
	}

	if quantity < 1 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Quantity = quantity
	}

	if err := s.guestCarts.Save(ctx, sess.GuestID, cart); err != nil {
		return nil, err
	}
	s.notifier.Emit()
	return cart, nil
}

// Remove drops a line. Guest removal is idempotent: the cart is persisted
// and the change broadcast even when nothing matched.
func (s *CartService) Remove(ctx context.Context, sess models.Session, itemID string, variantID *int) (*models.Cart, error) {
	if sess.Authenticated() {
		cart, err := s.serverCart.RemoveItem(ctx, sess.Token, models.ItemID(itemID))
		if err != nil {
			return nil, err
		}
		s.notifier.Emit()
		return cart, nil
	}

	cart, err := s.guestCarts.Get(ctx, sess.GuestID)
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if string(item.ID) == itemID {
			continue
		}
		// Legacy entries were persisted without a local id; they are
		// addressed by productId plus variant.
		if item.ID == "" && item.ProductID != nil &&
			strconv.Itoa(*item.ProductID) == itemID &&
			variantsEqual(item.ProductVariantID, variantID) {
			continue
		}
		kept = append(kept, item)
	}
	cart.Items = kept

	if err := s.guestCarts.Save(ctx, sess.GuestID, cart); err != nil {
		return nil, err
	}
	s.notifier.Emit()
	return cart, nil
}

// Clear empties the cart. The guest entry is deleted outright, not
// rewritten as an empty list.
func (s *CartService) Clear(ctx context.Context, sess models.Session) (*models.Cart, error) {
	if sess.Authenticated() {
		cart, err := s.serverCart.ClearCart(ctx, sess.Token)
		if err != nil {
			return nil, err
		}
		s.notifier.Emit()
		return cart, nil
	}

	if err := s.guestCarts.Delete(ctx, sess.GuestID); err != nil {
		return nil, err
	}
	s.notifier.Emit()
	return models.EmptyCart(), nil
}

// MergeOnLogin drains the guest cart into the freshly authenticated user's
// server cart, one sequential add per line so the upstream never sees
// concurrent mutations of the same cart. On any failure the loop stops and
// the guest cart is left untouched, so a later retry loses nothing; items
// already sent stay in the server cart. Virtual lines cannot be represented
// upstream: they are skipped and counted so the caller can warn the user.
func (s *CartService) MergeOnLogin(ctx context.Context, guestID, token string) models.MergeResult {
	cart, err := s.guestCarts.Get(ctx, guestID)
	if err != nil {
		log.Printf("Guest cart merge aborted, read failed for %s: %v", guestID, err)
		return models.MergeResult{}
	}
	if len(cart.Items) == 0 {
		return models.MergeResult{Merged: true}
	}

	result := models.MergeResult{}
	for _, item := range cart.Items {
		if item.ProductID == nil {
			result.SkippedVirtual++
			continue
		}
		_, err := s.serverCart.AddItem(ctx, token, models.ServerAddItem{
			ProductID:        *item.ProductID,
			Quantity:         item.Quantity,
			ProductVariantID: item.ProductVariantID,
		})
		if err != nil {
			log.Printf("Guest cart merge aborted for %s: %v", guestID, err)
			return result
		}
		result.ItemsMerged++
	}

	if result.SkippedVirtual > 0 {
		log.Printf("Guest cart merge for %s skipped %d virtual item(s)", guestID, result.SkippedVirtual)
	}

	if err := s.guestCarts.Delete(ctx, guestID); err != nil {
		log.Printf("Guest cart cleanup failed for %s: %v", guestID, err)
		return result
	}

	result.Merged = true
	s.notifier.Emit()
	return result
}

// ClearGuestResidue drops any leftover guest cart on logout, so the next
// guest session starts empty.
func (s *CartService) ClearGuestResidue(ctx context.Context, guestID string) error {
	return s.guestCarts.Delete(ctx, guestID)
}
