package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProductFetcher defines the interface for fetching storefront products.
// This interface is implemented by *Client and can be used for testing.
type ProductFetcher interface {
	FetchProducts(ctx context.Context, query ProductQuery) (ProductListResponse, error)
}

// Ensure Client implements ProductFetcher at compile time.
var _ ProductFetcher = (*Client)(nil)

// Client talks to the storefront HTTP API.
type Client struct {
	baseURL      *url.URL
	productsPath string
	http         *http.Client
	userAgent    string
}

const (
	defaultAPIBase      = "127.0.0.1:8088"
	DefaultProductsPath = "/api/products"
	defaultUserAgent    = "satchel/0.1"
	requestTimeout      = 5 * time.Second
)

// NewClient builds a Client for the storefront at apiBase. An empty
// productsPath uses DefaultProductsPath.
func NewClient(apiBase, productsPath string) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	path := strings.TrimSpace(productsPath)
	if path == "" {
		path = DefaultProductsPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return &Client{
		baseURL:      base,
		productsPath: path,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// ProductQuery configures product list requests.
type ProductQuery struct {
	Offset      int
	Limit       int
	ProductType string
}

// Values encodes the query, skipping zero-valued fields.
func (q ProductQuery) Values() url.Values {
	values := url.Values{}
	if pt := strings.TrimSpace(q.ProductType); pt != "" {
		values.Set("product_type", pt)
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	return values
}

// FetchProducts retrieves one page of the product list.
func (c *Client) FetchProducts(ctx context.Context, query ProductQuery) (ProductListResponse, error) {
	if c == nil {
		return ProductListResponse{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: c.productsPath, RawQuery: query.Values().Encode()}
	var payload ProductListResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return ProductListResponse{}, err
	}
	return payload, nil
}

// BaseURL returns the normalized storefront base URL.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", "req_"+uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
