package upclient

import (
	"context"
	"net/url"
	"strconv"
)

// Page sizes are request parameters only. Changing them must not
// change the concatenated result.
const (
	pageSizeDefault = 100
	pageSizeTags    = 200
)

func pageQuery(size int) url.Values {
	return url.Values{"page[size]": {strconv.Itoa(size)}}
}

// listAll materializes a complete collection by following pagination
// cursors until exhausted. Pages are fetched sequentially and
// concatenated in response order. The first error aborts the walk and
// discards pages already fetched.
func listAll[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var all []T

	var envelope ResourceEnvelope[T]
	if err := c.get(ctx, path, query, &envelope); err != nil {
		return nil, err
	}
	all = append(all, envelope.Data...)

	for envelope.Pagination.Next != "" {
		next := envelope.Pagination.Next
		envelope = ResourceEnvelope[T]{}
		if err := c.getURL(ctx, next, &envelope); err != nil {
			return nil, err
		}
		all = append(all, envelope.Data...)
	}

	return all, nil
}
