// Package query implements the listing pipeline shared by collection
// endpoints: bounded pagination/sort parameters, predicate-based
// filtering, and sorting by a field name chosen at request time.
package query

const (
	// MaxPageSize is the hard ceiling on page size; larger values are
	// clamped, never rejected.
	MaxPageSize = 100

	// DefaultPageSize applies when the client sends no size.
	DefaultPageSize = 50

	Ascending  = "asc"
	Descending = "desc"
)

// Params carries pagination and sort inputs for one request. The zero
// value is not usable; construct with NewParams so defaults hold.
//
// Size and SortOrder are deliberately lenient: out-of-range or
// malformed values are absorbed rather than rejected, because existing
// clients send them and expect a 200.
type Params struct {
	Page   int
	SortBy string

	size      int
	sortOrder string
}

func NewParams() Params {
	return Params{
		Page:      1,
		SortBy:    "id",
		size:      DefaultPageSize,
		sortOrder: Ascending,
	}
}

// SetSize clamps to MaxPageSize. There is no lower bound: a zero or
// negative size passes through and produces an empty page downstream.
func (p *Params) SetSize(n int) {
	if n > MaxPageSize {
		n = MaxPageSize
	}
	p.size = n
}

func (p Params) Size() int {
	return p.size
}

// SetSortOrder accepts only "asc" or "desc"; anything else is a no-op
// and the previous value is retained.
func (p *Params) SetSortOrder(order string) {
	if order == Ascending || order == Descending {
		p.sortOrder = order
	}
}

func (p Params) SortOrder() string {
	return p.sortOrder
}

// Offset is the number of records to skip. Pages below 1 are treated
// as page 1 so the skip count can never go negative.
func (p Params) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return p.size * (page - 1)
}
