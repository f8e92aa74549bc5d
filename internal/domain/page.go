package domain

import "strconv"

// DefaultPageSize is the number of posts on one feed page.
const DefaultPageSize = 10

// Page is one slice of an ordered result set together with its position.
type Page[T any] struct {
	Items    []T
	Number   int
	NumPages int
	Total    int
	Size     int
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.NumPages }

// HasPrevious reports whether an earlier page exists.
func (p Page[T]) HasPrevious() bool { return p.Number > 1 }

// NextNumber returns the next page number (only meaningful when HasNext).
func (p Page[T]) NextNumber() int { return p.Number + 1 }

// PreviousNumber returns the previous page number (only meaningful when HasPrevious).
func (p Page[T]) PreviousNumber() int { return p.Number - 1 }

// Len returns the number of items on this page.
func (p Page[T]) Len() int { return len(p.Items) }

// PageRange returns 1..NumPages.
func (p Page[T]) PageRange() []int {
	out := make([]int, p.NumPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// PageWindow is the resolved position of a requested page inside a result set.
type PageWindow struct {
	Number   int
	NumPages int
	Limit    int
	Offset   int
}

// Paginate resolves requested against total items split into pages of size.
// An empty result set still has one (empty) page. Any number outside
// 1..NumPages resolves to the last page.
func Paginate(requested, total, size int) PageWindow {
	if size <= 0 {
		size = DefaultPageSize
	}
	numPages := 1
	if total > 0 {
		numPages = (total + size - 1) / size
	}

	number := requested
	if number < 1 || number > numPages {
		number = numPages
	}

	return PageWindow{
		Number:   number,
		NumPages: numPages,
		Limit:    size,
		Offset:   (number - 1) * size,
	}
}

// NewPage assembles a Page from a resolved window and the fetched items.
func NewPage[T any](w PageWindow, total int, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:    items,
		Number:   w.Number,
		NumPages: w.NumPages,
		Total:    total,
		Size:     w.Limit,
	}
}

// ParsePageNumber parses the 1-based "page" query parameter. Missing or
// non-integer values mean the first page; integers are returned as-is so
// Paginate can clamp them.
func ParsePageNumber(raw string) int {
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}
