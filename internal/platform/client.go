// Package platform wraps the remote menu platform REST API: shop profiles,
// menu catalog, tables and orders. The platform owns all persistence; the
// gateway only reads, caches briefly, and submits.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/daleelbalady/storefront-gateway/internal/catalog"
	"github.com/daleelbalady/storefront-gateway/internal/checkout"
	pkgerrors "github.com/daleelbalady/storefront-gateway/pkg/errors"
)

const responseBodyReadLimit int64 = 1 << 20

var errBaseURLRequired = errors.New("platform base url is required")

// Client talks to the menu platform API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient builds a platform client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// GetShop resolves a shop slug or id to its public profile.
func (c *Client) GetShop(ctx context.Context, identifier string) (*catalog.Shop, error) {
	var shop catalog.Shop
	path := "/api/shops/public/details/" + url.PathEscape(identifier)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

// GetMenu fetches the full catalog for a shop.
func (c *Client) GetMenu(ctx context.Context, shopID string) ([]catalog.MenuItem, error) {
	var items []catalog.MenuItem
	path := "/api/menu/" + url.PathEscape(shopID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetMenuItem fetches one catalog item.
func (c *Client) GetMenuItem(ctx context.Context, itemID string) (*catalog.MenuItem, error) {
	var item catalog.MenuItem
	path := "/api/menu/item/" + url.PathEscape(itemID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetTables lists the shop's tables, occupied ones included; the wizard
// filters availability itself.
func (c *Client) GetTables(ctx context.Context, shopID string) ([]catalog.Table, error) {
	var tables []catalog.Table
	path := "/api/tables/" + url.PathEscape(shopID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

// CreateTable adds a table on behalf of the shop owner.
func (c *Client) CreateTable(ctx context.Context, token string, table catalog.Table) (*catalog.Table, error) {
	var created catalog.Table
	if err := c.do(ctx, http.MethodPost, "/api/tables", token, table, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTableStatus flips a table's occupancy flag.
func (c *Client) UpdateTableStatus(ctx context.Context, token, tableID string, occupied bool) error {
	path := "/api/tables/" + url.PathEscape(tableID) + "/status"
	payload := map[string]bool{"isOccupied": occupied}
	return c.do(ctx, http.MethodPut, path, token, payload, nil)
}

// DeleteTable removes a table.
func (c *Client) DeleteTable(ctx context.Context, token, tableID string) error {
	path := "/api/tables/" + url.PathEscape(tableID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

// CreateOrder submits an assembled order draft.
func (c *Client) CreateOrder(ctx context.Context, draft checkout.OrderDraft) (*checkout.OrderConfirmation, error) {
	var confirmation checkout.OrderConfirmation
	if err := c.do(ctx, http.MethodPost, "/api/orders", "", draft, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

// ListOrders fetches the owner's orders for the dashboard.
func (c *Client) ListOrders(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches a single order.
func (c *Client) GetOrder(ctx context.Context, token, orderID string) (*Order, error) {
	var order Order
	path := "/api/orders/" + url.PathEscape(orderID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus advances an order through its lifecycle.
func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID, status string) error {
	path := "/api/orders/" + url.PathEscape(orderID) + "/status"
	payload := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, path, token, payload, nil)
}

// CancelOrder cancels an order on the platform.
func (c *Client) CancelOrder(ctx context.Context, token, orderID string) error {
	path := "/api/orders/" + url.PathEscape(orderID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

// Ping probes the platform health endpoint for readiness checks.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, payload, dest any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode platform request")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build platform request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "call platform")
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, responseBodyReadLimit)).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode platform response")
	}
	return nil
}

func statusError(resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	message := fmt.Sprintf("platform returned %d", resp.StatusCode)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return pkgerrors.New(pkgerrors.CodeNotFound, "resource not found on platform")
	case http.StatusUnauthorized:
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "platform rejected credentials")
	case http.StatusForbidden:
		return pkgerrors.New(pkgerrors.CodeForbidden, "platform denied access")
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return pkgerrors.New(pkgerrors.CodeValidation, message).
			WithDetails(map[string]any{"body": strings.TrimSpace(string(snippet))})
	default:
		return pkgerrors.New(pkgerrors.CodeDependency, message).
			WithDetails(map[string]any{"body": strings.TrimSpace(string(snippet))})
	}
}
