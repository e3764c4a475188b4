package query

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownSortField is returned when a sort field has no registered
// comparator. Callers that want the lenient ignore-and-keep-natural-
// order behavior should check Has before calling Sort.
var ErrUnknownSortField = errors.New("unknown sort field")

// Comparator orders two items: negative if a sorts before b, zero if
// equal, positive if after.
type Comparator[T any] func(a, b T) int

// SortRegistry maps externally supplied field names to typed
// comparators. Build one per entity type at init; it replaces runtime
// reflection over struct fields with a compile-time-checked dispatch
// table.
type SortRegistry[T any] struct {
	fields map[string]Comparator[T]
}

func NewSortRegistry[T any]() *SortRegistry[T] {
	return &SortRegistry[T]{fields: make(map[string]Comparator[T])}
}

func (r *SortRegistry[T]) Register(field string, cmp Comparator[T]) {
	r.fields[field] = cmp
}

// Has reports whether field has a registered comparator.
func (r *SortRegistry[T]) Has(field string) bool {
	_, ok := r.fields[field]
	return ok
}

// Fields returns the registered field names.
func (r *SortRegistry[T]) Fields() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Sort returns a sorted copy of items; the input slice is not
// mutated. Only the literal "desc" reverses the order, any other
// value sorts ascending. The sort is stable so ties keep their
// natural order.
func (r *SortRegistry[T]) Sort(items []T, field, order string) ([]T, error) {
	cmp, ok := r.fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortField, field)
	}

	sorted := slices.Clone(items)
	if order == Descending {
		slices.SortStableFunc(sorted, func(a, b T) int { return -cmp(a, b) })
	} else {
		slices.SortStableFunc(sorted, cmp)
	}
	return sorted, nil
}
