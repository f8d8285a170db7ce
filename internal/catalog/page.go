package catalog

// DefaultPageLimit is used when no page size is configured.
const DefaultPageLimit = 10

// Page tracks the current pagination window. It is mutated in place as the
// list advances.
type Page struct {
	Offset int
	Limit  int
	Total  int
}

// NewPage returns the first page with the given size.
func NewPage(pageSize int) *Page {
	if pageSize <= 0 {
		pageSize = DefaultPageLimit
	}
	return &Page{Limit: pageSize}
}

// Next computes the window for pageIndex without changing p. The index is
// clamped to the known page range; an unknown total only clamps below.
func (p Page) Next(pageIndex int) Page {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if pageIndex < 0 {
		pageIndex = 0
	}
	if p.Total > 0 {
		if last := (p.Total - 1) / limit; pageIndex > last {
			pageIndex = last
		}
	}
	return Page{Offset: pageIndex * limit, Limit: limit, Total: p.Total}
}

// SetCurrent overwrites the window.
func (p *Page) SetCurrent(offset, limit, total int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = p.Limit
	}
	if total < 0 {
		total = 0
	}
	p.Offset = offset
	p.Limit = limit
	p.Total = total
}

// Index returns the zero-based index of the current page.
func (p Page) Index() int {
	if p.Limit <= 0 {
		return 0
	}
	return p.Offset / p.Limit
}

// Count returns the number of pages, at least one.
func (p Page) Count() int {
	if p.Limit <= 0 || p.Total <= 0 {
		return 1
	}
	return (p.Total + p.Limit - 1) / p.Limit
}

// NextOffset is the offset of the page after the current one.
func (p Page) NextOffset() int {
	return p.Offset + p.Limit
}

// HasMore reports whether items exist past the current window.
func (p Page) HasMore() bool {
	return p.NextOffset() < p.Total
}
