package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterNarrowsLeftToRight(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}

	even := func(n int) bool { return n%2 == 0 }
	big := func(n int) bool { return n > 4 }

	assert.Equal(t, []int{6, 8}, Filter(items, even, big))
	assert.Equal(t, items, Filter(items), "no predicates leaves the set untouched")
	assert.Empty(t, Filter(items, func(int) bool { return false }))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, 0, 2))
	assert.Equal(t, []int{3, 4}, Paginate(items, 2, 2))
	assert.Equal(t, []int{5}, Paginate(items, 4, 10), "short last page")
	assert.Empty(t, Paginate(items, 5, 10), "offset at the end")
	assert.Empty(t, Paginate(items, 100, 10), "offset past the end")
	assert.Empty(t, Paginate(items, 0, 0), "zero limit")
	assert.Empty(t, Paginate(items, 0, -1), "negative limit")
	assert.Equal(t, []int{1, 2}, Paginate(items, -10, 2), "negative offset clamps to zero")
}

func TestSortRegistry(t *testing.T) {
	type record struct {
		name  string
		price int
	}

	reg := NewSortRegistry[record]()
	reg.Register("price", func(a, b record) int { return a.price - b.price })

	items := []record{{"b", 3}, {"a", 1}, {"c", 2}}

	asc, err := reg.Sort(items, "price", Ascending)
	require.NoError(t, err)
	assert.Equal(t, []record{{"a", 1}, {"c", 2}, {"b", 3}}, asc)
	assert.Equal(t, []record{{"b", 3}, {"a", 1}, {"c", 2}}, items, "input is not mutated")

	desc, err := reg.Sort(items, "price", Descending)
	require.NoError(t, err)
	assert.Equal(t, []record{{"b", 3}, {"c", 2}, {"a", 1}}, desc)

	// Anything other than the desc literal sorts ascending.
	loose, err := reg.Sort(items, "price", "DESCENDING")
	require.NoError(t, err)
	assert.Equal(t, asc, loose)
}

func TestSortRegistryUnknownField(t *testing.T) {
	reg := NewSortRegistry[int]()
	reg.Register("value", func(a, b int) int { return a - b })

	assert.True(t, reg.Has("value"))
	assert.False(t, reg.Has("missing"))
	assert.Equal(t, []string{"value"}, reg.Fields())

	_, err := reg.Sort([]int{2, 1}, "missing", Ascending)
	require.ErrorIs(t, err, ErrUnknownSortField)
}

func TestSortRegistryIsStable(t *testing.T) {
	type record struct {
		id   int
		rank int
	}

	reg := NewSortRegistry[record]()
	reg.Register("rank", func(a, b record) int { return a.rank - b.rank })

	items := []record{{1, 5}, {2, 5}, {3, 1}, {4, 5}}
	sorted, err := reg.Sort(items, "rank", Ascending)
	require.NoError(t, err)

	// Records with equal rank keep their original relative order.
	assert.Equal(t, []record{{3, 1}, {1, 5}, {2, 5}, {4, 5}}, sorted)
}
