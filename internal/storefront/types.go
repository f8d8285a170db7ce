package storefront

import "time"

// ProductListResponse mirrors the payload returned by the product list endpoint.
type ProductListResponse struct {
	Products   []RawProduct  `json:"products"`
	Pagination Pagination    `json:"pagination"`
	Filters    []FilterGroup `json:"filters,omitempty"`
}

// Pagination describes where a product page sits in the full list.
type Pagination struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Total  int `json:"total"`
}

// RawProduct is a product record in transport form.
type RawProduct struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	SourceType string `json:"source_type"`
	Price      int64  `json:"price"`
	Publisher  string `json:"publisher"`
	Grade      string `json:"grade"`
	Subject    string `json:"subject"`
	CreatedAt  string `json:"created_at"`
}

// FilterGroup is a server-provided checkbox group.
type FilterGroup struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	List     []string `json:"list"`
	Category string   `json:"category"`
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (p RawProduct) ParsedCreatedAt() time.Time {
	return parseTime(p.CreatedAt)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, time.DateTime, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
