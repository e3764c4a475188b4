package repository

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/yourorg/catalog/internal/models"
	"github.com/yourorg/catalog/internal/query"
)

// MemoryProductRepository is the default store: a mutex-guarded map
// with store-assigned sequential IDs. Natural order is ascending ID,
// which keeps unsorted listings deterministic.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[int]models.Product
	nextID   int
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[int]models.Product),
		nextID:   1,
	}
}

// NewSeededProductRepository returns a memory store preloaded with a
// small demo catalog, for local runs without a database.
func NewSeededProductRepository() *MemoryProductRepository {
	r := NewMemoryProductRepository()
	seed := []models.Product{
		{Name: "Grunge Skater Jeans", Sku: "AWMGSJ", Price: decimal.NewFromFloat(68), IsAvailable: true},
		{Name: "Polka Dot Shirt", Sku: "AWMPS", Price: decimal.NewFromFloat(20), IsAvailable: true},
		{Name: "Denim Jacket", Sku: "AWMDJ", Price: decimal.NewFromFloat(120.50), IsAvailable: false},
		{Name: "Uptown Dress Shirt", Sku: "AWMUDS", Price: decimal.NewFromFloat(45.99), IsAvailable: true},
		{Name: "Flannel Shirt", Sku: "AWMFS", Price: decimal.NewFromFloat(29.95), IsAvailable: false},
		{Name: "Rain Coat", Sku: "AWWRC", Price: decimal.NewFromFloat(80), IsAvailable: true},
	}
	for _, p := range seed {
		_, _ = r.Create(context.Background(), p)
	}
	return r
}

func (r *MemoryProductRepository) Create(_ context.Context, p models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = p
	return &p, nil
}

func (r *MemoryProductRepository) GetByID(_ context.Context, id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// Update replaces the full record keyed by p.ID.
func (r *MemoryProductRepository) Update(_ context.Context, p models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		return ErrNotFound
	}
	r.products[p.ID] = p
	return nil
}

// Delete removes the record and returns it.
func (r *MemoryProductRepository) Delete(_ context.Context, id int) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.products, id)
	return &p, nil
}

// List runs the full listing pipeline over a snapshot: filter, sort
// when the field is registered, then paginate. Unknown sort fields
// never reach the sorter; the snapshot stays in natural order.
func (r *MemoryProductRepository) List(_ context.Context, q models.ProductQuery) ([]models.Product, error) {
	items := r.snapshot()

	items = query.Filter(items, q.Predicates()...)

	if q.SortBy != "" && models.SortFields.Has(q.SortBy) {
		sorted, err := models.SortFields.Sort(items, q.SortBy, q.SortOrder())
		if err != nil {
			return nil, err
		}
		items = sorted
	}

	return query.Paginate(items, q.Offset(), q.Size()), nil
}

// snapshot copies the map into a slice in ascending ID order.
func (r *MemoryProductRepository) snapshot() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		items = append(items, p)
	}
	sorted, err := models.SortFields.Sort(items, "id", query.Ascending)
	if err != nil {
		return items
	}
	return sorted
}
