// Package shopapi is the storefront's HTTP client for the shop backend. It
// speaks the backend's plain wire format: list responses carry a total plus
// an items array, failures carry a single "error" string.
package shopapi

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

	"github.com/sethvargo/go-retry"

	"github.com/larekshop/storefront/internal/catalog"
	"github.com/larekshop/storefront/pkg/config"
	"github.com/larekshop/storefront/pkg/enums"
	pkgerrors "github.com/larekshop/storefront/pkg/errors"
)

const errorBodyReadLimit int64 = 1024

var errBaseURLRequired = errors.New("shop api base url is required")

// Client fetches the catalog and submits orders.
type Client struct {
	httpClient *http.Client
	baseURL    string
	retries    uint64
	backoff    time.Duration
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

// NewClient builds the shop backend client.
func NewClient(cfg config.ShopAPIConfig, opts ...Option) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errBaseURLRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	backoff := cfg.FetchBackoff
	if backoff <= 0 {
		backoff = 250 * time.Millisecond
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retries:    cfg.FetchRetries,
		backoff:    backoff,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// OrderRequest is the order submission payload. Total and Items must already
// be sanitized down to purchasable products.
type OrderRequest struct {
	Payment enums.PaymentMethod `json:"payment"`
	Email   string              `json:"email"`
	Phone   string              `json:"phone"`
	Address string              `json:"address"`
	Total   int64               `json:"total"`
	Items   []string            `json:"items"`
}

// OrderResult is the backend's acknowledgment of a placed order.
type OrderResult struct {
	ID    string `json:"id"`
	Total int64  `json:"total"`
}

// Products fetches the full catalog. Transient failures are retried with a
// constant backoff so a briefly unreachable backend does not leave the
// storefront empty.
func (c *Client) Products(ctx context.Context) ([]catalog.Product, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "shop api client not configured")
	}

	var items []catalog.Product
	backoff := retry.WithMaxRetries(c.retries, retry.NewConstant(c.backoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		fetched, err := c.fetchProducts(ctx)
		if err != nil {
			if pkgerrors.As(err).Code() == pkgerrors.CodeDependency {
				return retry.RetryableError(err)
			}
			return err
		}
		items = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) fetchProducts(ctx context.Context) ([]catalog.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/product/", nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build product list request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute product list request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.responseError(resp, "product list request failed")
	}

	var apiResp struct {
		Total int               `json:"total"`
		Items []catalog.Product `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode product list response")
	}

	return apiResp.Items, nil
}

// Product fetches one catalog item by ID.
func (c *Client) Product(ctx context.Context, id string) (catalog.Product, error) {
	if c == nil {
		return catalog.Product{}, pkgerrors.New(pkgerrors.CodeDependency, "shop api client not configured")
	}
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return catalog.Product{}, pkgerrors.New(pkgerrors.CodeValidation, "product ID is required")
	}

	endpoint := fmt.Sprintf("%s/product/%s", c.baseURL, url.PathEscape(trimmed))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return catalog.Product{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build product request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return catalog.Product{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute product request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return catalog.Product{}, c.responseError(resp, "product request failed")
	}

	var product catalog.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return catalog.Product{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode product response")
	}

	return product, nil
}

// PlaceOrder submits a completed order. Rejections surface the backend's
// error message so the checkout can show it verbatim.
func (c *Client) PlaceOrder(ctx context.Context, order OrderRequest) (OrderResult, error) {
	if c == nil {
		return OrderResult{}, pkgerrors.New(pkgerrors.CodeDependency, "shop api client not configured")
	}

	payload, err := json.Marshal(order)
	if err != nil {
		return OrderResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal order request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/order", bytes.NewReader(payload))
	if err != nil {
		return OrderResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build order request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return OrderResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute order request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return OrderResult{}, c.responseError(resp, "order request failed")
	}

	var result OrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return OrderResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode order response")
	}

	return result, nil
}

// responseError maps a non-success response to a coded error. The error's
// message is the backend's {"error": msg} body when present, so the checkout
// can show the rejection verbatim.
func (c *Client) responseError(resp *http.Response, context string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))

	message := strings.TrimSpace(string(body))
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		message = envelope.Error
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	code := pkgerrors.CodeDependency
	switch {
	case resp.StatusCode == http.StatusNotFound:
		code = pkgerrors.CodeNotFound
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		code = pkgerrors.CodeValidation
	}

	return pkgerrors.Wrap(code, fmt.Errorf("%s: status %d", context, resp.StatusCode), message)
}
