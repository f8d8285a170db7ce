// Package command holds single-purpose objects that wrap one network call
// and its side effects on the shared store.
package command

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/five82/satchel/internal/catalog"
	"github.com/five82/satchel/internal/state"
	"github.com/five82/satchel/internal/storefront"
)

var errNoFetcher = errors.New("no product fetcher configured")

// FetchProductsQuery selects one page of products.
type FetchProductsQuery struct {
	Offset      int
	Limit       int
	ProductType string
	// Append merges the page into the store instead of replacing it.
	Append bool
}

// FetchProducts loads a product page and, when it was built with a store,
// writes the converted products and pagination into it.
type FetchProducts struct {
	fetcher storefront.ProductFetcher
	store   *state.Store
	log     *logrus.Logger

	mu      sync.Mutex
	lastErr error
}

// NewFetchProducts builds the command. store may be nil; logger may be nil.
func NewFetchProducts(fetcher storefront.ProductFetcher, store *state.Store, logger *logrus.Logger) *FetchProducts {
	if logger == nil {
		logger = logrus.New()
	}
	return &FetchProducts{fetcher: fetcher, store: store, log: logger}
}

// Execute calls the storefront once. It returns nil when the request fails
// and leaves the store untouched; LastError then holds the cause. An empty
// page is a non-nil response with no products.
func (c *FetchProducts) Execute(ctx context.Context, query FetchProductsQuery) *storefront.ProductListResponse {
	q := storefront.ProductQuery{
		Offset:      query.Offset,
		Limit:       query.Limit,
		ProductType: query.ProductType,
	}
	fields := logrus.Fields{
		"offset":       q.Offset,
		"limit":        q.Limit,
		"product_type": q.ProductType,
		"append":       query.Append,
	}

	if c.fetcher == nil {
		c.fail(fields, errNoFetcher)
		return nil
	}

	resp, err := c.fetcher.FetchProducts(ctx, q)
	if err != nil {
		c.fail(fields, err)
		return nil
	}
	c.setErr(nil)

	if c.store != nil {
		converted := catalog.FromServerList(resp.Products)
		if query.Append {
			c.store.Append(converted, resp.Pagination)
		} else {
			c.store.Update(converted, resp.Pagination)
		}
		if len(resp.Filters) > 0 {
			c.store.SetFilters(catalog.FiltersFromServer(resp.Filters))
		}
	}

	c.log.WithFields(fields).WithFields(logrus.Fields{
		"count": len(resp.Products),
		"total": resp.Pagination.Total,
	}).Debug("products fetched")
	return &resp
}

// LastError returns the error from the most recent failed Execute, or nil
// when the last call succeeded.
func (c *FetchProducts) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *FetchProducts) fail(fields logrus.Fields, err error) {
	c.setErr(err)
	c.log.WithFields(fields).WithError(err).Warn("product fetch failed")
}

func (c *FetchProducts) setErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = err
}
