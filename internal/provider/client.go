// Package provider talks to a single upstream catalog service.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rogerio-castellano/catalog-aggregator/internal/models"
)

// maxResponseSize caps how much of an upstream body is read (10MB).
const maxResponseSize = 10 * 1024 * 1024

const (
	OpFetchCategory = "fetch_category"
	OpFetchByID     = "fetch_by_id"
)

// DefaultTimeout is used when a provider is configured without one.
const DefaultTimeout = 5 * time.Second

// Provider is the static configuration of one upstream service.
type Provider struct {
	Name    string        `mapstructure:"name" json:"name"`
	BaseURL string        `mapstructure:"base_url" json:"base_url"`
	Timeout time.Duration `mapstructure:"timeout" json:"timeout"`
}

// Normalize fills defaults and validates the base URL.
func (p Provider) Normalize() (Provider, error) {
	p.BaseURL = strings.TrimRight(strings.TrimSpace(p.BaseURL), "/")
	if p.BaseURL == "" {
		return p, fmt.Errorf("provider %q: base url is required", p.Name)
	}
	u, err := url.Parse(p.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return p, fmt.Errorf("provider %q: invalid base url %q", p.Name, p.BaseURL)
	}
	if p.Name == "" {
		p.Name = u.Host
	}
	if p.Timeout <= 0 {
		p.Timeout = DefaultTimeout
	}
	return p, nil
}

// Client fetches products from one provider over HTTP.
type Client struct {
	provider   Provider
	httpClient *http.Client
}

// NewClient builds a client for p. p is expected to be normalized.
func NewClient(p Provider) *Client {
	return NewClientWithHTTP(p, &http.Client{Timeout: p.Timeout})
}

// NewClientWithHTTP lets callers share or stub the transport.
func NewClientWithHTTP(p Provider, httpClient *http.Client) *Client {
	return &Client{provider: p, httpClient: httpClient}
}

// Name identifies the provider in errors, logs and stats.
func (c *Client) Name() string {
	return c.provider.Name
}

// FetchCategory returns every product the provider lists for category, in upstream order.
func (c *Client) FetchCategory(ctx context.Context, category string) ([]models.Product, error) {
	endpoint := fmt.Sprintf("%s/categories/%s/products", c.provider.BaseURL, url.PathEscape(category))

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, newError(c.Name(), OpFetchCategory, 0, ErrProviderUnavailable, err)
	}
	if status != http.StatusOK {
		return nil, newError(c.Name(), OpFetchCategory, status, ErrProviderUnavailable, nil)
	}

	var records []models.ProductRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, newError(c.Name(), OpFetchCategory, status, ErrMalformedRecord, err)
	}

	products := make([]models.Product, 0, len(records))
	for i, rec := range records {
		p, err := rec.Product()
		if err != nil {
			return nil, newError(c.Name(), OpFetchCategory, status, ErrMalformedRecord, fmt.Errorf("record %d: %w", i, err))
		}
		products = append(products, p)
	}
	return products, nil
}

// FetchByID returns the product with the given id, or nil when the provider answers 404.
// Any other failure is returned as an *Error so callers can decide whether to mask it.
func (c *Client) FetchByID(ctx context.Context, category, id string) (*models.Product, error) {
	endpoint := fmt.Sprintf("%s/categories/%s/products/%s", c.provider.BaseURL, url.PathEscape(category), url.PathEscape(id))

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, newError(c.Name(), OpFetchByID, 0, ErrProviderUnavailable, err)
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, newError(c.Name(), OpFetchByID, status, ErrProviderUnavailable, nil)
	}

	var rec models.ProductRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, newError(c.Name(), OpFetchByID, status, ErrMalformedRecord, err)
	}
	p, err := rec.Product()
	if err != nil {
		return nil, newError(c.Name(), OpFetchByID, status, ErrMalformedRecord, err)
	}
	return &p, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	return body, resp.StatusCode, nil
}
