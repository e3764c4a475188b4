package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nhalm/canonlog"
	"github.com/yourorg/catalog/internal/apperrors"
	"github.com/yourorg/catalog/internal/models"
	"github.com/yourorg/catalog/internal/version"
)

// ProductService defines only the methods the API layer needs from the
// product service.
type ProductService interface {
	CreateProduct(ctx context.Context, p models.Product) (*models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	UpdateProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id int) (*models.Product, error)
	ListProducts(ctx context.Context, q models.ProductQuery) ([]models.Product, error)
}

type Handler struct {
	productSvc ProductService
}

func NewHandler(productSvc ProductService) *Handler {
	return &Handler{
		productSvc: productSvc,
	}
}

// ListProducts godoc
// @Summary List products
// @Description Filter, sort, and paginate the catalog. Version 2.0 only lists available products.
// @Param page query int false "1-based page number"
// @Param size query int false "page size, capped at 100"
// @Param sortBy query string false "sort field (id, name, sku, price, isAvailable)"
// @Param sortOrder query string false "asc or desc"
// @Param sku query string false "exact SKU match"
// @Param minPrice query number false "minimum price, applied only with maxPrice"
// @Param maxPrice query number false "maximum price, applied only with minPrice"
// @Param name query string false "case-insensitive name substring"
// @Success 200 {array} ProductResponse
// @Router /products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := parseProductQuery(r.URL.Query())

	// The visibility rule is pinned to the API version and applies
	// before any user filter: v1 sees everything, v2 only available
	// records.
	q.IncludeUnavailable = version.FromContext(r.Context()) == version.V1

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"page":    q.Page,
		"size":    q.Size(),
		"sort_by": q.SortBy,
	})

	products, err := h.productSvc.ListProducts(r.Context(), q)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = convertToProductResponse(p)
	}

	Success(w, responses)
}

// GetProduct godoc
// @Summary Get a product by ID
// @Param id path int true "product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		NotFound(w, r, err, "product not found")
		return
	}

	product, err := h.productSvc.GetProduct(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToProductResponse(*product))
}

// CreateProduct godoc
// @Summary Create a product
// @Param product body ProductRequest true "product to create"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Router /products [post]
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, r, err, "invalid request body", "")
		return
	}

	if err := ValidateStruct(req); err != nil {
		BadRequest(w, r, err, err.Error(), "")
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_name": req.Name,
		"product_sku":  req.Sku,
	})

	product, err := h.productSvc.CreateProduct(r.Context(), models.Product{
		Name:        req.Name,
		Sku:         req.Sku,
		Price:       req.Price,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	CreatedAt(w, fmt.Sprintf("/products/%d", product.ID), convertToProductResponse(*product))
}

// UpdateProduct godoc
// @Summary Replace a product
// @Description Full-record replace. The route ID and body ID must match.
// @Param id path int true "product ID"
// @Param product body ProductRequest true "replacement record"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [put]
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		NotFound(w, r, err, "product not found")
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, r, err, "invalid request body", "")
		return
	}

	// Checked before the store is touched.
	if req.ID != id {
		mismatch := apperrors.NewValidationError("id", "route and body id must match")
		BadRequest(w, r, mismatch, mismatch.Error(), "id")
		return
	}

	if err := ValidateStruct(req); err != nil {
		BadRequest(w, r, err, err.Error(), "")
		return
	}

	if err := h.productSvc.UpdateProduct(r.Context(), models.Product{
		ID:          id,
		Name:        req.Name,
		Sku:         req.Sku,
		Price:       req.Price,
		IsAvailable: req.IsAvailable,
	}); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Deletes the record and returns it.
// @Param id path int true "product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [delete]
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		NotFound(w, r, err, "product not found")
		return
	}

	product, err := h.productSvc.DeleteProduct(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToProductResponse(*product))
}

func convertToProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Sku:         p.Sku,
		Price:       p.Price,
		IsAvailable: p.IsAvailable,
	}
}
