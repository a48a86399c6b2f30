package client

import (
	"context"

	"github.com/notehubapp/notehub-mcp/pkg/dto"
)

// DefaultPageSize is the page size used when a caller passes zero.
const DefaultPageSize = 100

// ListFunc fetches a single page of results.
type ListFunc[T any] func(ctx context.Context, page, limit int) ([]T, *dto.Pagination, error)

// FetchAll drains a paginated list endpoint starting at page 1. It keeps
// going while the metadata says more pages remain, or, when the endpoint
// returns no metadata, while pages come back full. The first failure
// aborts the loop; partial results are discarded, not returned. An empty
// first page yields an empty slice, not an error.
func FetchAll[T any](ctx context.Context, pageSize int, list ListFunc[T]) ([]T, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	var all []T
	for page := 1; ; page++ {
		items, meta, err := list(ctx, page, pageSize)
		if err != nil {
			return nil, err
		}

		all = append(all, items...)

		if meta != nil {
			if page >= meta.TotalPages {
				break
			}
		} else if len(items) < pageSize {
			break
		}
	}

	return all, nil
}
