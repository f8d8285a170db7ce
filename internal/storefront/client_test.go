package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIBase {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIBase)
	}

	u, err = parseBaseURL("https://shop.example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestNewClient_NormalizesProductsPath(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.productsPath != DefaultProductsPath {
		t.Fatalf("productsPath = %q, want %q", c.productsPath, DefaultProductsPath)
	}

	c, err = NewClient("127.0.0.1:1", "  v2/items ")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.productsPath != "/v2/items" {
		t.Fatalf("productsPath = %q, want /v2/items", c.productsPath)
	}
}

func TestProductQuery_ValuesSkipsZeroFields(t *testing.T) {
	if got := (ProductQuery{}).Values().Encode(); got != "" {
		t.Fatalf("empty query encoded to %q, want empty", got)
	}
	got := ProductQuery{Offset: 20, Limit: 10, ProductType: " workbook "}.Values()
	if got.Get("offset") != "20" || got.Get("limit") != "10" || got.Get("product_type") != "workbook" {
		t.Fatalf("Values = %v, want offset/limit/product_type", got)
	}
}

func TestClient_FetchProductsEncodesQuery(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotUserAgent, gotRequestID, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ProductListResponse{
			Products: []RawProduct{
				{ID: 7, Title: "Algebra I", SourceType: "textbook", Price: 18000},
				{ID: 8, Title: "Algebra I Drills", SourceType: "workbook", Price: 9000},
			},
			Pagination: Pagination{Offset: 10, Limit: 5, Total: 42},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	resp, err := c.FetchProducts(ctx, ProductQuery{Offset: 10, Limit: 5, ProductType: "textbook"})
	if err != nil {
		t.Fatalf("FetchProducts returned error: %v", err)
	}
	if len(resp.Products) != 2 || resp.Products[0].ID != 7 || resp.Products[1].Title != "Algebra I Drills" {
		t.Fatalf("FetchProducts products = %#v, want 2 decoded products", resp.Products)
	}
	if resp.Pagination.Total != 42 {
		t.Fatalf("Pagination.Total = %d, want 42", resp.Pagination.Total)
	}
	if gotPath != DefaultProductsPath {
		t.Fatalf("path = %q, want %q", gotPath, DefaultProductsPath)
	}
	if gotQuery.Get("offset") != "10" || gotQuery.Get("limit") != "5" || gotQuery.Get("product_type") != "textbook" {
		t.Fatalf("query = %v, want params encoded", gotQuery)
	}
	if !strings.HasPrefix(gotUserAgent, "satchel/") {
		t.Fatalf("User-Agent = %q, want satchel/*", gotUserAgent)
	}
	if !strings.HasPrefix(gotRequestID, "req_") {
		t.Fatalf("X-Request-ID = %q, want req_ prefix", gotRequestID)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/broken":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	broken, err := NewClient(server.URL, "/broken")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = broken.FetchProducts(context.Background(), ProductQuery{})
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchProducts error = %v, want decode response error", err)
	}

	failing, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = failing.FetchProducts(context.Background(), ProductQuery{})
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchProducts error = %v, want status 500 error", err)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchProducts(context.Background(), ProductQuery{}); err == nil {
		t.Fatalf("FetchProducts on nil client returned nil error")
	}
	if c.BaseURL() != "" {
		t.Fatalf("BaseURL on nil client = %q, want empty", c.BaseURL())
	}
}

func TestRawProduct_ParsedCreatedAt(t *testing.T) {
	cases := map[string]bool{
		"2025-03-01T09:00:00Z": true,
		"2025-03-01 09:00:00":  true,
		"2025-03-01":           true,
		"":                     false,
		"yesterday":            false,
	}
	for value, ok := range cases {
		got := RawProduct{CreatedAt: value}.ParsedCreatedAt()
		if got.IsZero() == ok {
			t.Fatalf("ParsedCreatedAt(%q) = %v, want parsed=%v", value, got, ok)
		}
	}
}
