// Package client is the storefront's REST client for the shop API. One
// method per backend operation; every call takes a context and returns
// the decoded response or an *APIError carrying the backend message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"shopeasy/internal/domain"
)

// APIError is a non-2xx reply from the shop API. Message is the
// backend-supplied error when the body carried one, else a generic
// fallback so callers always have something to surface.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client for the API at baseURL (e.g.
// "http://localhost:5000/api"). Timeouts are the httpClient's concern;
// pass nil to use http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Products fetches the full catalog.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Cart fetches the user's cart; the backend creates an empty one on
// first fetch.
func (c *Client) Cart(ctx context.Context, userID string) (*domain.Cart, error) {
	var out domain.Cart
	if err := c.do(ctx, http.MethodGet, "/cart/"+url.PathEscape(userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddItem adds quantity units of a product and returns the updated cart.
func (c *Client) AddItem(ctx context.Context, userID string, productID int64, quantity int) (*domain.Cart, error) {
	body := map[string]interface{}{"productId": productID, "quantity": quantity}
	var out domain.Cart
	if err := c.do(ctx, http.MethodPost, "/cart/"+url.PathEscape(userID)+"/add", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateQuantity sets a line's quantity and returns the updated cart.
func (c *Client) UpdateQuantity(ctx context.Context, userID string, productID int64, quantity int) (*domain.Cart, error) {
	body := map[string]interface{}{"productId": productID, "quantity": quantity}
	var out domain.Cart
	if err := c.do(ctx, http.MethodPost, "/cart/"+url.PathEscape(userID)+"/update", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveItem removes a line entirely and returns the updated cart.
func (c *Client) RemoveItem(ctx context.Context, userID string, productID int64) (*domain.Cart, error) {
	body := map[string]interface{}{"productId": productID}
	var out domain.Cart
	if err := c.do(ctx, http.MethodPost, "/cart/"+url.PathEscape(userID)+"/remove", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApplyDiscount applies a discount code to the cart. The backend is
// authoritative on validity and single-use enforcement.
func (c *Client) ApplyDiscount(ctx context.Context, userID, code string) (*domain.Cart, error) {
	body := map[string]string{"discountCode": code}
	var out domain.Cart
	if err := c.do(ctx, http.MethodPost, "/cart/"+url.PathEscape(userID)+"/apply-discount", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type checkoutRequest struct {
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	PaymentInfo     domain.PaymentInfo     `json:"paymentInfo"`
}

// Checkout submits the validated shipping and payment data.
// idempotencyKey is sent as the Idempotency-Key header; the backend
// replays the stored order for a key it has already fulfilled.
func (c *Client) Checkout(ctx context.Context, userID string, shipping domain.ShippingAddress, payment domain.PaymentInfo, idempotencyKey string) (*domain.OrderResponse, error) {
	headers := http.Header{}
	if idempotencyKey != "" {
		headers.Set("Idempotency-Key", idempotencyKey)
	}
	var out domain.OrderResponse
	req := checkoutRequest{ShippingAddress: shipping, PaymentInfo: payment}
	if err := c.do(ctx, http.MethodPost, "/checkout/"+url.PathEscape(userID), headers, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminStats fetches the aggregate dashboard, gated on the admin key.
func (c *Client) AdminStats(ctx context.Context, adminKey string) (*domain.AdminStats, error) {
	var out domain.AdminStats
	path := "/admin/stats?adminKey=" + url.QueryEscape(adminKey)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateDiscount mints a new discount code via the admin endpoint.
func (c *Client) GenerateDiscount(ctx context.Context, adminKey string) (string, error) {
	body := map[string]string{"adminKey": adminKey}
	var out struct {
		DiscountCode string `json:"discountCode"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/generate-discount", nil, body, &out); err != nil {
		return "", err
	}
	return out.DiscountCode, nil
}

func (c *Client) do(ctx context.Context, method, path string, headers http.Header, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) *APIError {
	var body struct {
		Error string `json:"error"`
	}
	msg := ""
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		msg = body.Error
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
