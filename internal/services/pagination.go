package services

const (
	DefaultPageSize = 10
	MaxPageSize     = 1000
)

// PageLimits holds the page size bounds applied to list operations
type PageLimits struct {
	Default int
	Max     int
}

// DefaultPageLimits returns the built-in page size bounds
func DefaultPageLimits() PageLimits {
	return PageLimits{Default: DefaultPageSize, Max: MaxPageSize}
}

// clamp normalises offset and limit the way every list endpoint does
func (p PageLimits) clamp(offset, limit int) (int, int) {
	if p.Default <= 0 {
		p.Default = DefaultPageSize
	}
	if p.Max <= 0 {
		p.Max = MaxPageSize
	}

	if limit <= 0 {
		limit = p.Default
	}
	if limit > p.Max {
		limit = p.Max
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

// paginate slices items to the window [offset, offset+limit)
func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
