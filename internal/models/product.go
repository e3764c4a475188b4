package models

import (
	"cmp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yourorg/catalog/internal/query"
)

// Product is a catalog record. IDs are assigned by the store on
// insert; updates replace the full record keyed by ID.
type Product struct {
	ID          int
	Name        string
	Sku         string
	Price       decimal.Decimal
	IsAvailable bool
}

// ProductQuery carries everything a listing request resolved to:
// pagination/sort params plus the optional product filters. All
// filters are independent; there is no cross-field validation, so
// MinPrice > MaxPrice simply yields an empty page.
type ProductQuery struct {
	query.Params

	// Sku filters by exact, case-sensitive match when non-empty.
	Sku string
	// MinPrice and MaxPrice bound the price inclusively. The range
	// filter applies only when both are set; a single bound is ignored.
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	// Name filters by case-insensitive substring when non-empty.
	Name string

	// IncludeUnavailable distinguishes the API variants: v1 lists every
	// record, v2 pins visibility to available records before any user
	// filter runs.
	IncludeUnavailable bool
}

func NewProductQuery() ProductQuery {
	return ProductQuery{Params: query.NewParams()}
}

// SortFields is the dispatch table for sortBy values on product
// listings. Field names not present here leave the collection in its
// natural (ID) order.
var SortFields = newSortFields()

func newSortFields() *query.SortRegistry[Product] {
	r := query.NewSortRegistry[Product]()
	r.Register("id", func(a, b Product) int { return cmp.Compare(a.ID, b.ID) })
	r.Register("name", func(a, b Product) int { return strings.Compare(a.Name, b.Name) })
	r.Register("sku", func(a, b Product) int { return strings.Compare(a.Sku, b.Sku) })
	r.Register("price", func(a, b Product) int { return a.Price.Cmp(b.Price) })
	r.Register("isAvailable", func(a, b Product) int {
		if a.IsAvailable == b.IsAvailable {
			return 0
		}
		if !a.IsAvailable {
			return -1
		}
		return 1
	})
	return r
}

// Matches reports whether p survives every filter in q.
func (q ProductQuery) Matches(p Product) bool {
	for _, pred := range q.Predicates() {
		if !pred(p) {
			return false
		}
	}
	return true
}

// Predicates expands q into the ordered conjunction the listing
// pipeline applies: visibility first, then price range, SKU, and
// name. Clauses for absent parameters are omitted entirely rather
// than compiled to always-true checks.
func (q ProductQuery) Predicates() []query.Predicate[Product] {
	var preds []query.Predicate[Product]

	if !q.IncludeUnavailable {
		preds = append(preds, func(p Product) bool { return p.IsAvailable })
	}
	if q.MinPrice != nil && q.MaxPrice != nil {
		minPrice, maxPrice := *q.MinPrice, *q.MaxPrice
		preds = append(preds, func(p Product) bool {
			return p.Price.GreaterThanOrEqual(minPrice) && p.Price.LessThanOrEqual(maxPrice)
		})
	}
	if q.Sku != "" {
		preds = append(preds, func(p Product) bool { return p.Sku == q.Sku })
	}
	if q.Name != "" {
		needle := strings.ToLower(q.Name)
		preds = append(preds, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Name), needle)
		})
	}
	return preds
}
