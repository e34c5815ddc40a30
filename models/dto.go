package models

// AddItemRequest is the wire shape of POST /cart/add. It carries either a
// catalog reference (productId, optional productVariantId) or a full virtual
// item description (productName + price). Use ToAddRequest to resolve which.
type AddItemRequest struct {
	ProductID        *int     `json:"productId"`
	ProductVariantID *int     `json:"productVariantId"`
	Quantity         int      `json:"quantity" binding:"required,min=1"`
	ProductName      string   `json:"productName"`
	Price            *float64 `json:"price"`
	ImageURL         string   `json:"imageUrl"`
	VariantName      string   `json:"variantName"`
}

// AddRequest is the resolved form of an add: exactly one of the two variants.
type AddRequest interface {
	isAddRequest()
}

// CatalogAdd references an existing catalog product.
type CatalogAdd struct {
	ProductID int
	VariantID *int
	Quantity  int
}

// VirtualAdd describes an ad hoc line with no catalog backing.
type VirtualAdd struct {
	Name         string
	Price        float64
	ImageURL     string
	VariantLabel string
	Quantity     int
}

func (CatalogAdd) isAddRequest() {}
func (VirtualAdd) isAddRequest() {}

// ToAddRequest resolves the polymorphic body into a tagged variant.
// A productId wins over a virtual description if a client sends both.
func (r AddItemRequest) ToAddRequest() (AddRequest, error) {
	if r.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if r.ProductID != nil {
		return CatalogAdd{
			ProductID: *r.ProductID,
			VariantID: r.ProductVariantID,
			Quantity:  r.Quantity,
		}, nil
	}
	if r.ProductName == "" || r.Price == nil {
		return nil, ErrInvalidAddRequest
	}
	return VirtualAdd{
		Name:         r.ProductName,
		Price:        *r.Price,
		ImageURL:     r.ImageURL,
		VariantLabel: r.VariantName,
		Quantity:     r.Quantity,
	}, nil
}

// ServerAddItem is the payload the upstream cart API expects.
type ServerAddItem struct {
	ProductID        int  `json:"productId"`
	Quantity         int  `json:"quantity"`
	ProductVariantID *int `json:"productVariantId"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	Merge *MergeResult `json:"merge,omitempty"`
}
