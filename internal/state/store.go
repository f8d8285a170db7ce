package state

import (
	"sync"
	"time"

	"github.com/five82/satchel/internal/catalog"
	"github.com/five82/satchel/internal/storefront"
)

// Snapshot represents the latest product data available to the UI.
type Snapshot struct {
	Products    []catalog.Product
	Pagination  storefront.Pagination
	Filters     []catalog.FilterList
	HasData     bool
	LastUpdated time.Time
}

// Store coordinates concurrent updates to the product snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the product list and pagination.
func (s *Store) Update(products []catalog.Product, pagination storefront.Pagination) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Products = cloneProducts(products)
	s.snapshot.Pagination = pagination
	s.snapshot.HasData = true
	s.snapshot.LastUpdated = time.Now()
}

// Append adds a further page to the product list. Products whose ID is
// already present are replaced in place.
func (s *Store) Append(products []catalog.Product, pagination storefront.Pagination) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := make(map[int64]int, len(s.snapshot.Products))
	for i, p := range s.snapshot.Products {
		index[p.ID] = i
	}
	merged := cloneProducts(s.snapshot.Products)
	for _, p := range products {
		if i, ok := index[p.ID]; ok {
			merged[i] = p
			continue
		}
		index[p.ID] = len(merged)
		merged = append(merged, p)
	}
	s.snapshot.Products = merged
	s.snapshot.Pagination = pagination
	s.snapshot.HasData = true
	s.snapshot.LastUpdated = time.Now()
}

// SetFilters replaces the stored filter groups.
func (s *Store) SetFilters(filters []catalog.FilterList) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Filters = catalog.CloneFilters(filters)
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Products = cloneProducts(s.snapshot.Products)
	snap.Filters = catalog.CloneFilters(s.snapshot.Filters)
	return snap
}

func cloneProducts(items []catalog.Product) []catalog.Product {
	if len(items) == 0 {
		return nil
	}
	dup := make([]catalog.Product, len(items))
	copy(dup, items)
	return dup
}
