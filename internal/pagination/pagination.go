package pagination

// PageRequest holds pagination parameters parsed from query strings. Both
// fields are optional; a zero request means "everything on one page".
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Requested reports whether the client asked for pagination at all.
func (p *PageRequest) Requested() bool {
	return p.Page != 0 || p.PageSize != 0
}

// Defaults fills in default values when page or page_size are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 20
	}
}

// Slice applies the page window to an already-ordered in-memory list.
// Aggregation results are sorted by the report engine rather than by the
// store, so paging happens after the engine has run.
func Slice[T any](items []T, req PageRequest) []T {
	req.Defaults()
	start := (req.Page - 1) * req.PageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + req.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
