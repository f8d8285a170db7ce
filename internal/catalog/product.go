// Package catalog holds the client-side product model: products, their
// list projection, pagination windows and the static filter groups.
package catalog

import (
	"strings"
	"time"

	"github.com/five82/satchel/internal/storefront"
)

// SourceType classifies a product.
type SourceType string

const (
	SourceUnknown  SourceType = ""
	SourceTextbook SourceType = "textbook"
	SourceWorkbook SourceType = "workbook"
	SourceHandout  SourceType = "handout"
)

// SourceTypes lists the known source types in display order.
var SourceTypes = []SourceType{SourceTextbook, SourceWorkbook, SourceHandout}

// ParseSourceType normalizes a raw source_type value.
func ParseSourceType(value string) SourceType {
	switch SourceType(strings.ToLower(strings.TrimSpace(value))) {
	case SourceTextbook:
		return SourceTextbook
	case SourceWorkbook:
		return SourceWorkbook
	case SourceHandout:
		return SourceHandout
	}
	return SourceUnknown
}

// Label returns the plural display label.
func (s SourceType) Label() string {
	switch s {
	case SourceTextbook:
		return "Textbooks"
	case SourceWorkbook:
		return "Workbooks"
	case SourceHandout:
		return "Handouts"
	}
	return "Other"
}

// Product is a fetched storefront product. Values are not modified after
// conversion.
type Product struct {
	ID         int64
	Title      string
	SourceType SourceType
	Price      int64
	Publisher  string
	Grade      string
	Subject    string
	CreatedAt  time.Time
}

// ProductListItem is the list row projection of a Product.
type ProductListItem struct {
	ID      int64
	Title   string
	Product Product
}

// FromServer converts a transport record to a Product.
func FromServer(raw storefront.RawProduct) Product {
	return Product{
		ID:         raw.ID,
		Title:      strings.TrimSpace(raw.Title),
		SourceType: ParseSourceType(raw.SourceType),
		Price:      raw.Price,
		Publisher:  strings.TrimSpace(raw.Publisher),
		Grade:      strings.TrimSpace(raw.Grade),
		Subject:    strings.TrimSpace(raw.Subject),
		CreatedAt:  raw.ParsedCreatedAt(),
	}
}

// FromServerList converts a page of transport records, preserving order.
func FromServerList(raws []storefront.RawProduct) []Product {
	if len(raws) == 0 {
		return nil
	}
	out := make([]Product, len(raws))
	for i, raw := range raws {
		out[i] = FromServer(raw)
	}
	return out
}

// ToListItem projects a Product into a list row.
func ToListItem(p Product) ProductListItem {
	return ProductListItem{ID: p.ID, Title: p.Title, Product: p}
}

// ToListItems projects products into list rows.
func ToListItems(products []Product) []ProductListItem {
	items := make([]ProductListItem, len(products))
	for i, p := range products {
		items[i] = ToListItem(p)
	}
	return items
}
