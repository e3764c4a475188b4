package api

import "github.com/shopspring/decimal"

// ProductRequest is the request body for creating or replacing a
// product. On create the ID is ignored; on update it must match the
// route ID.
// @Description Product create/replace payload
type ProductRequest struct {
	ID          int             `json:"id"`
	Name        string          `json:"name" validate:"required,max=255"`
	Sku         string          `json:"sku" validate:"required,max=64"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`
	IsAvailable bool            `json:"isAvailable"`
}

// ProductResponse represents a product resource in API responses.
// @Description Product resource
type ProductResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Sku         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"isAvailable"`
}
