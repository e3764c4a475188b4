package api

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/yourorg/catalog/internal/models"
)

// parseProductQuery decodes listing parameters from the query string.
// Decoding is lenient across the board: malformed numbers are dropped,
// oversized page sizes are clamped, and bad sort orders keep the
// default. Existing clients depend on none of these being an error.
func parseProductQuery(values url.Values) models.ProductQuery {
	q := models.NewProductQuery()

	if v := values.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.Page = n
		}
	}
	if v := values.Get("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.SetSize(n)
		}
	}
	if v := values.Get("sortBy"); v != "" {
		q.SortBy = v
	}
	q.SetSortOrder(values.Get("sortOrder"))

	q.Sku = values.Get("sku")
	q.Name = values.Get("name")
	if v := values.Get("minPrice"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			q.MinPrice = &d
		}
	}
	if v := values.Get("maxPrice"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			q.MaxPrice = &d
		}
	}

	return q
}
