package catalog

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

	pkgerrors "github.com/angelmondragon/shopfront/pkg/errors"
)

const (
	defaultProductsPath         = "/api/products"
	responseBodyReadLimit int64 = 1024
	maxCatalogBodyBytes   int64 = 16 << 20
)

var (
	errBaseURLRequired = errors.New("catalog base url is required")
)

// ProductSource lists every product in the catalog.
type ProductSource interface {
	ListProducts(ctx context.Context) ([]ProductRecord, error)
}

// Client reads the remote product catalog over HTTP.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	productsPath string
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

// WithProductsPath overrides the products endpoint path.
func WithProductsPath(path string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(path)
		if trimmed != "" {
			c.productsPath = trimmed
		}
	}
}

// WithTimeout bounds each request. Zero keeps the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout <= 0 {
			return
		}
		clone := *c.httpClient
		clone.Timeout = timeout
		c.httpClient = &clone
	}
}

// NewClient builds a catalog client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("invalid catalog base url %q", baseURL)
	}

	client := &Client{
		httpClient:   &http.Client{},
		baseURL:      trimmed,
		productsPath: defaultProductsPath,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// ProductsURL is the endpoint ListProducts calls.
func (c *Client) ProductsURL() string {
	return fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(c.productsPath, "/"))
}

// ListProducts issues a single GET for the product list. Any transport
// failure, non-2xx status or non-array body is a dependency error.
func (c *Client) ListProducts(ctx context.Context) ([]ProductRecord, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "catalog client not configured")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ProductsURL(), nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build catalog request")
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute catalog request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "catalog request failed")
	}

	var raw json.RawMessage
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxCatalogBodyBytes)).Decode(&raw); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode catalog response")
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "catalog response is not an array")
	}

	var records []ProductRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode catalog products")
	}
	if records == nil {
		records = []ProductRecord{}
	}
	return records, nil
}
