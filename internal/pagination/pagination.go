// Package pagination implements a generic page engine over in-memory snapshots.
package pagination

import (
	"fmt"
	"sort"

	"github.com/Mazium/TicketEase/internal/entities"
)

// KeyFunc extracts a sort key from an element.
type KeyFunc[T any] func(T) string

// Paginate sorts a snapshot of src by the given keys (ascending, in the order
// supplied, ties broken by source order) and returns the requested page.
// Totals are always populated; an out-of-range page yields empty data.
// A non-positive pageSize is an invalid argument.
func Paginate[T any](src []T, pageSize, pageNumber int, keys ...KeyFunc[T]) (entities.Page[T], error) {
	if pageSize < 1 {
		return entities.Page[T]{}, fmt.Errorf("%w: page size must be positive, got %d", entities.ErrInvalidArgument, pageSize)
	}

	sorted := make([]T, len(src))
	copy(sorted, src)
	sort.SliceStable(sorted, func(i, j int) bool {
		for _, key := range keys {
			a, b := key(sorted[i]), key(sorted[j])
			if a != b {
				return a < b
			}
		}
		return false
	})

	total := len(sorted)
	page := entities.Page[T]{
		Data:           make([]T, 0),
		PageNumber:     pageNumber,
		PageSize:       pageSize,
		TotalCount:     total,
		TotalPageCount: (total + pageSize - 1) / pageSize,
	}

	start := (pageNumber - 1) * pageSize
	if pageNumber < 1 || start >= total {
		return page, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	page.Data = append(page.Data, sorted[start:end]...)
	return page, nil
}
