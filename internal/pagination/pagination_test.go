package pagination

import (
	"testing"

	"github.com/Mazium/TicketEase/internal/entities"

	"github.com/stretchr/testify/require"
)

type item struct {
	name string
	seq  int
}

func byName(i item) string { return i.name }

func TestPaginateInvalidPageSize(t *testing.T) {
	for _, size := range []int{0, -1, -10} {
		_, err := Paginate([]item{{name: "a"}}, size, 1, byName)
		require.ErrorIs(t, err, entities.ErrInvalidArgument)
	}
}

func TestPaginateSortsAndSlices(t *testing.T) {
	src := []item{{name: "delta"}, {name: "alpha"}, {name: "charlie"}, {name: "bravo"}}

	page, err := Paginate(src, 2, 1, byName)
	require.NoError(t, err)
	require.Equal(t, []item{{name: "alpha"}, {name: "bravo"}}, page.Data)
	require.Equal(t, 4, page.TotalCount)
	require.Equal(t, 2, page.TotalPageCount)

	page, err = Paginate(src, 2, 2, byName)
	require.NoError(t, err)
	require.Equal(t, []item{{name: "charlie"}, {name: "delta"}}, page.Data)
}

func TestPaginateOutOfRangePageIsEmptyWithTotals(t *testing.T) {
	src := []item{{name: "a"}, {name: "b"}, {name: "c"}}

	for _, pageNumber := range []int{0, -1, 5, 100} {
		page, err := Paginate(src, 2, pageNumber, byName)
		require.NoError(t, err)
		require.Empty(t, page.Data)
		require.Equal(t, 3, page.TotalCount)
		require.Equal(t, 2, page.TotalPageCount)
	}
}

func TestPaginateLastPageIsClipped(t *testing.T) {
	src := []item{{name: "a"}, {name: "b"}, {name: "c"}, {name: "d"}, {name: "e"}}

	page, err := Paginate(src, 2, 3, byName)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	require.Equal(t, "e", page.Data[0].name)
	require.Equal(t, 3, page.TotalPageCount)
}

func TestPaginateStableOnEqualKeys(t *testing.T) {
	src := []item{
		{name: "same", seq: 1},
		{name: "aaa", seq: 2},
		{name: "same", seq: 3},
		{name: "same", seq: 4},
	}

	for i := 0; i < 3; i++ {
		page, err := Paginate(src, 10, 1, byName)
		require.NoError(t, err)
		require.Equal(t, []item{
			{name: "aaa", seq: 2},
			{name: "same", seq: 1},
			{name: "same", seq: 3},
			{name: "same", seq: 4},
		}, page.Data)
	}
}

func TestPaginateMultiKeyOrdering(t *testing.T) {
	type account struct{ company, email string }
	src := []account{
		{company: "acme", email: "z@acme.io"},
		{company: "beta", email: "a@beta.io"},
		{company: "acme", email: "a@acme.io"},
	}

	page, err := Paginate(src, 10, 1,
		func(a account) string { return a.company },
		func(a account) string { return a.email },
	)
	require.NoError(t, err)
	require.Equal(t, []account{
		{company: "acme", email: "a@acme.io"},
		{company: "acme", email: "z@acme.io"},
		{company: "beta", email: "a@beta.io"},
	}, page.Data)
}

func TestPaginateAllPagesReproduceWholeSequence(t *testing.T) {
	src := []item{
		{name: "k", seq: 1}, {name: "c", seq: 2}, {name: "c", seq: 3},
		{name: "a", seq: 4}, {name: "z", seq: 5}, {name: "m", seq: 6},
		{name: "b", seq: 7},
	}
	const pageSize = 3

	first, err := Paginate(src, pageSize, 1, byName)
	require.NoError(t, err)
	require.Equal(t, 3, first.TotalPageCount)

	collected := make([]item, 0, len(src))
	for n := 1; n <= first.TotalPageCount; n++ {
		page, err := Paginate(src, pageSize, n, byName)
		require.NoError(t, err)
		require.LessOrEqual(t, len(page.Data), pageSize)
		collected = append(collected, page.Data...)
	}

	require.Len(t, collected, len(src))
	for i := 1; i < len(collected); i++ {
		require.LessOrEqual(t, collected[i-1].name, collected[i].name)
	}
	seen := make(map[int]bool, len(src))
	for _, it := range collected {
		require.False(t, seen[it.seq], "element %d paged twice", it.seq)
		seen[it.seq] = true
	}
}

func TestPaginateDoesNotMutateSource(t *testing.T) {
	src := []item{{name: "b"}, {name: "a"}}

	_, err := Paginate(src, 1, 1, byName)
	require.NoError(t, err)
	require.Equal(t, []item{{name: "b"}, {name: "a"}}, src)
}
