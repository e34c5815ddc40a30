package libs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cart-gateway/models"
)

// UpstreamClient talks to the commerce backend that owns the catalog, the
// server-side carts and the user accounts. The bearer token is attached per
// call when present; the gateway never caches it.
type UpstreamClient struct {
	baseURL string
	http    *http.Client
}

func NewUpstreamClient(baseURL string) *UpstreamClient {
	return &UpstreamClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type upstreamEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *UpstreamClient) do(ctx context.Context, method, path, token string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &models.UpstreamError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil {
		return nil
	}

	// Some endpoints wrap payloads in {success, message, data}; others
	// return the payload bare. Try the envelope first.
	var env upstreamEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(raw, out)
}

// GetProductByID resolves a catalog product, for snapshotting name, price
// and image into a guest cart line.
func (c *UpstreamClient) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), "", nil, &product); err != nil {
		var upErr *models.UpstreamError
		if errors.As(err, &upErr) && upErr.Status == http.StatusNotFound {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (c *UpstreamClient) GetCart(ctx context.Context, token string) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodGet, "/cart", token, nil, &cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

func (c *UpstreamClient) AddItem(ctx context.Context, token string, item models.ServerAddItem) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodPost, "/cart/add", token, item, &cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

func (c *UpstreamClient) UpdateItem(ctx context.Context, token string, itemID models.ItemID, quantity int) (*models.Cart, error) {
	var cart models.Cart
	body := models.UpdateQuantityRequest{Quantity: quantity}
	if err := c.do(ctx, http.MethodPut, "/cart/"+string(itemID), token, body, &cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

func (c *UpstreamClient) RemoveItem(ctx context.Context, token string, itemID models.ItemID) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodDelete, "/cart/"+string(itemID), token, nil, &cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

func (c *UpstreamClient) ClearCart(ctx context.Context, token string) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodDelete, "/cart", token, nil, &cart); err != nil {
		return nil, err
	}
	cart.Items = []models.CartItem{}
	return &cart, nil
}

// Login proxies credentials to the upstream auth endpoint and returns the
// issued bearer token.
func (c *UpstreamClient) Login(ctx context.Context, email, password string) (string, error) {
	var token string
	body := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &token); err != nil {
		return "", err
	}
	return token, nil
}
