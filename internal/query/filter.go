package query

// Predicate reports whether an item belongs in the result set.
type Predicate[T any] func(T) bool

// Filter applies predicates left to right as a narrowing conjunction.
// There is no OR or negation; an item survives only if every predicate
// accepts it.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	if len(preds) == 0 {
		return items
	}
	out := make([]T, 0, len(items))
next:
	for _, item := range items {
		for _, pred := range preds {
			if !pred(item) {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}

// Paginate skips offset items and takes up to limit. A limit of zero
// or less yields an empty page; an offset past the end yields an empty
// page rather than an error.
func Paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) || limit <= 0 {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
