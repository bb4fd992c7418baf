package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	defaultBaseURL      = "https://fakestoreapi.com"
	defaultProductsPath = "/products"
)

// ErrStatus is returned (wrapped) when the product source answers with a
// non-success HTTP status.
var ErrStatus = errors.New("product source returned non-success status")

// Client fetches the product catalog from a remote HTTP source.
//
// The client applies no timeout and never retries: the one fetch either
// completes or the caller stays in its loading state, which is the
// documented behavior for a slow source.
type Client struct {
	baseURL      string
	productsPath string
	http         *http.Client
}

// New creates a Client for the given base URL. Empty arguments fall back to
// the public demo source.
func New(baseURL, productsPath string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if productsPath == "" {
		productsPath = defaultProductsPath
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		productsPath: "/" + strings.TrimLeft(productsPath, "/"),
		http:         &http.Client{},
	}
}

// URL returns the resolved products endpoint.
func (c *Client) URL() string {
	return c.baseURL + c.productsPath
}

// Fetch issues one GET to the products endpoint and decodes the response.
// The returned slice is never nil on success.
func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("building product request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading product response: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON array of products. Empty input and a JSON null both
// decode to an empty catalog.
func Parse(data []byte) ([]Product, error) {
	if len(data) == 0 {
		return []Product{}, nil
	}
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parsing product JSON: %w", err)
	}
	if products == nil {
		return []Product{}, nil
	}
	return products, nil
}
