package utils

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Paginate turns a 1-based page and a page size into offset and limit.
// Missing values fall back to the first page of DefaultLimit rows.
func Paginate(page, limit int) (offset, size int) {
	if page < 1 {
		page = 1
	}
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return (page - 1) * limit, limit
}
