package models

import (
	"encoding/json"
	"fmt"
)

// ItemID identifies a cart line. Server-side lines carry the backend-assigned
// id (the upstream API serializes it as a number); guest lines carry a locally
// minted token. Both are handled as strings on this side.
type ItemID string

func (id *ItemID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ItemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid cart item id: %s", string(b))
	}
	*id = ItemID(n.String())
	return nil
}

// CartItem is a single cart line. Name, price and image are snapshotted at
// add time so the cart renders without refetching the product.
// A nil ProductID marks a virtual line (ad hoc bundle not backed by the
// catalog); a nil ProductVariantID means the base product.
type CartItem struct {
	ID               ItemID  `json:"id"`
	ProductID        *int    `json:"productId"`
	ProductVariantID *int    `json:"productVariantId,omitempty"`
	ProductName      string  `json:"productName"`
	Price            float64 `json:"price"`
	ImageURL         string  `json:"imageUrl,omitempty"`
	Quantity         int     `json:"quantity"`
	VariantName      string  `json:"variantName,omitempty"`
}

type Cart struct {
	Items []CartItem `json:"items"`
}

func EmptyCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// Count sums line quantities, for the cart badge.
func (c *Cart) Count() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// MergeResult reports what happened to a guest cart on login.
// Virtual lines have no upstream representation and are skipped; callers
// should warn the user when SkippedVirtual > 0.
type MergeResult struct {
	Merged         bool `json:"merged"`
	ItemsMerged    int  `json:"itemsMerged"`
	SkippedVirtual int  `json:"skippedVirtual"`
}
