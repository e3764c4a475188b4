package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourorg/catalog/internal/models"
	"github.com/yourorg/catalog/internal/query"
)

func price(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func allVisible() models.ProductQuery {
	q := models.NewProductQuery()
	q.IncludeUnavailable = true
	return q
}

func seedRepo(t *testing.T, products ...models.Product) *MemoryProductRepository {
	t.Helper()
	repo := NewMemoryProductRepository()
	for _, p := range products {
		_, err := repo.Create(context.Background(), p)
		require.NoError(t, err)
	}
	return repo
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryProductRepository()

	first, err := repo.Create(context.Background(), models.Product{Name: "A", Sku: "A1", Price: price(1), IsAvailable: true})
	require.NoError(t, err)
	second, err := repo.Create(context.Background(), models.Product{ID: 99, Name: "B", Sku: "B1", Price: price(2), IsAvailable: true})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID, "store assigns IDs regardless of the given value")
}

func TestGetByID(t *testing.T) {
	repo := seedRepo(t, models.Product{Name: "A", Sku: "A1", Price: price(1), IsAvailable: true})

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)

	_, err = repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateReplacesFullRecord(t *testing.T) {
	repo := seedRepo(t, models.Product{Name: "A", Sku: "A1", Price: price(1), IsAvailable: true})

	err := repo.Update(context.Background(), models.Product{ID: 1, Name: "B", Sku: "B1", Price: price(2), IsAvailable: false})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)
	assert.Equal(t, "B1", got.Sku)
	assert.False(t, got.IsAvailable)

	err = repo.Update(context.Background(), models.Product{ID: 42, Name: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReturnsTheRecord(t *testing.T) {
	repo := seedRepo(t, models.Product{Name: "A", Sku: "A1", Price: price(1), IsAvailable: true})

	deleted, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "A", deleted.Name)

	_, err = repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingLeavesStoreUnchanged(t *testing.T) {
	repo := seedRepo(t,
		models.Product{Name: "A", Sku: "A1", Price: price(1), IsAvailable: true},
		models.Product{Name: "B", Sku: "B1", Price: price(2), IsAvailable: true},
	)

	_, err := repo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)

	items, err := repo.List(context.Background(), allVisible())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestListNaturalOrderIsAscendingID(t *testing.T) {
	repo := seedRepo(t,
		models.Product{Name: "C", Sku: "C1", Price: price(3), IsAvailable: true},
		models.Product{Name: "A", Sku: "A1", Price: price(1), IsAvailable: true},
		models.Product{Name: "B", Sku: "B1", Price: price(2), IsAvailable: true},
	)

	items, err := repo.List(context.Background(), allVisible())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{items[0].ID, items[1].ID, items[2].ID})
}

func TestListPriceRangeInclusiveBothBounds(t *testing.T) {
	repo := seedRepo(t,
		models.Product{Name: "Cheap", Sku: "C", Price: price(5), IsAvailable: true},
		models.Product{Name: "Low edge", Sku: "L", Price: price(10), IsAvailable: true},
		models.Product{Name: "Mid", Sku: "M", Price: price(15), IsAvailable: true},
		models.Product{Name: "High edge", Sku: "H", Price: price(20), IsAvailable: true},
		models.Product{Name: "Pricey", Sku: "P", Price: price(25), IsAvailable: true},
	)

	q := allVisible()
	lo, hi := price(10), price(20)
	q.MinPrice, q.MaxPrice = &lo, &hi

	items, err := repo.List(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, p := range items {
		assert.True(t, p.Price.GreaterThanOrEqual(lo) && p.Price.LessThanOrEqual(hi))
	}
}

func TestListSingleBoundAppliesNoPriceFilter(t *testing.T) {
	repo := seedRepo(t,
		models.Product{Name: "Cheap", Sku: "C", Price: price(5), IsAvailable: true},
		models.Product{Name: "Pricey", Sku: "P", Price: price(500), IsAvailable: true},
	)

	unfiltered, err := repo.List(context.Background(), allVisible())
	require.NoError(t, err)

	q := allVisible()
	lo := price(100)
	q.MinPrice = &lo
	onlyMin, err := repo.List(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, unfiltered, onlyMin, "one bound present yields the same set as no price filter")
}

func TestListNameFilterIsCaseInsensitive(t *testing.T) {
	repo := seedRepo(t,
		models.Product{Name: "Blue Shirt", Sku: "BS", Price: price(20), IsAvailable: true},
		models.Product{Name: "Flannel SHIRT", Sku: "FS", Price: price(30), IsAvailable: true},
		models.Product{Name: "Rain Coat", Sku: "RC", Price: price(80), IsAvailable: true},
	)

	q := allVisible()
	q.Name = "shirt"

	items, err := repo.List(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestListVisibilityRuleHidesUnavailable(t *testing.T) {
	repo := seedRepo(t,
		models.Product{Name: "A", Sku: "A1", Price: price(1), IsAvailable: true},
		models.Product{Name: "B", Sku: "B1", Price: price(2), IsAvailable: false},
		models.Product{Name: "C", Sku: "C1", Price: price(3), IsAvailable: true},
	)

	visible, err := repo.List(context.Background(), models.NewProductQuery())
	require.NoError(t, err)
	require.Len(t, visible, 2)
	for _, p := range visible {
		assert.True(t, p.IsAvailable)
	}

	all, err := repo.List(context.Background(), allVisible())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListSortByPriceDescending(t *testing.T) {
	repo := seedRepo(t,
		models.Product{Name: "Mid", Sku: "M", Price: price(20), IsAvailable: true},
		models.Product{Name: "Low", Sku: "L", Price: price(10), IsAvailable: true},
		models.Product{Name: "High", Sku: "H", Price: price(30), IsAvailable: true},
	)

	q := allVisible()
	q.SortBy = "price"
	q.SetSortOrder(query.Descending)

	items, err := repo.List(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"High", "Mid", "Low"}, []string{items[0].Name, items[1].Name, items[2].Name})
}

func TestListUnknownSortFieldKeepsNaturalOrder(t *testing.T) {
	repo := seedRepo(t,
		models.Product{Name: "B", Sku: "B1", Price: price(2), IsAvailable: true},
		models.Product{Name: "A", Sku: "A1", Price: price(1), IsAvailable: true},
	)

	q := allVisible()
	q.SortBy = "nonexistent"

	items, err := repo.List(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, []int{1, 2}, []int{items[0].ID, items[1].ID})
}

func TestListPagination(t *testing.T) {
	repo := NewMemoryProductRepository()
	for i := 1; i <= 25; i++ {
		_, err := repo.Create(context.Background(), models.Product{
			Name:        fmt.Sprintf("Product %02d", i),
			Sku:         fmt.Sprintf("SKU%02d", i),
			Price:       price(float64(i)),
			IsAvailable: true,
		})
		require.NoError(t, err)
	}

	q := allVisible()
	q.Page = 2
	q.SetSize(10)

	items, err := repo.List(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, items, 10)
	assert.Equal(t, 11, items[0].ID)
	assert.Equal(t, 20, items[9].ID)

	q.Page = 3
	items, err = repo.List(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, items, 5, "short last page")

	q.Page = 4
	items, err = repo.List(context.Background(), q)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListZeroSizeYieldsEmptyPage(t *testing.T) {
	repo := seedRepo(t, models.Product{Name: "A", Sku: "A1", Price: price(1), IsAvailable: true})

	q := allVisible()
	q.SetSize(0)

	items, err := repo.List(context.Background(), q)
	require.NoError(t, err)
	assert.Empty(t, items)
}
