package models

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound is returned when an update names a cart line that no
	// longer exists. Removal is idempotent and never returns it.
	ErrItemNotFound = errors.New("cart item not found")

	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInvalidAddRequest = errors.New("request must carry a productId or a productName and price")

	// ErrProductNotFound is surfaced when the catalog lookup rejects the id.
	ErrProductNotFound = errors.New("product does not exist")
)

// UpstreamError carries a backend failure through unchanged so the HTTP
// layer can mirror the upstream status.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Body)
}
