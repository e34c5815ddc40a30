package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAddRequestCatalogForm(t *testing.T) {
	productID := 5
	variantID := 2
	req, err := AddItemRequest{ProductID: &productID, ProductVariantID: &variantID, Quantity: 3}.ToAddRequest()
	require.NoError(t, err)

	add, ok := req.(CatalogAdd)
	require.True(t, ok)
	assert.Equal(t, 5, add.ProductID)
	require.NotNil(t, add.VariantID)
	assert.Equal(t, 2, *add.VariantID)
	assert.Equal(t, 3, add.Quantity)
}

func TestToAddRequestVirtualForm(t *testing.T) {
	price := 10.0
	req, err := AddItemRequest{ProductName: "Gift Box", Price: &price, VariantName: "Deluxe", Quantity: 1}.ToAddRequest()
	require.NoError(t, err)

	add, ok := req.(VirtualAdd)
	require.True(t, ok)
	assert.Equal(t, "Gift Box", add.Name)
	assert.Equal(t, 10.0, add.Price)
	assert.Equal(t, "Deluxe", add.VariantLabel)
}

func TestToAddRequestRejectsIncompleteBody(t *testing.T) {
	price := 10.0

	_, err := AddItemRequest{Quantity: 1}.ToAddRequest()
	assert.ErrorIs(t, err, ErrInvalidAddRequest)

	_, err = AddItemRequest{ProductName: "Gift Box", Quantity: 1}.ToAddRequest()
	assert.ErrorIs(t, err, ErrInvalidAddRequest)

	_, err = AddItemRequest{Price: &price, Quantity: 1}.ToAddRequest()
	assert.ErrorIs(t, err, ErrInvalidAddRequest)
}

func TestToAddRequestRejectsNonPositiveQuantity(t *testing.T) {
	productID := 5
	_, err := AddItemRequest{ProductID: &productID, Quantity: 0}.ToAddRequest()
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestItemIDAcceptsNumbersAndStrings(t *testing.T) {
	var item CartItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"quantity":1}`), &item))
	assert.Equal(t, ItemID("42"), item.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"1693526400000_ab12","quantity":1}`), &item))
	assert.Equal(t, ItemID("1693526400000_ab12"), item.ID)

	assert.Error(t, json.Unmarshal([]byte(`{"id":{},"quantity":1}`), &item))
}
