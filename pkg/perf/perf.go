// Package perf provides bounded-concurrency helpers
package perf

import (
	"context"
	"sync"
)

// MapCollect applies fn to every item with at most concurrency goroutines
// in flight, bounded by a semaphore to avoid exhausting process-table or
// file-descriptor resources. Results and errors are index-aligned with
// items, so output order is the input order regardless of completion
// order. Unlike fail-fast mappers, an error for one item does not cancel
// the others; callers aggregate the error slice themselves.
//
// When ctx is cancelled, items not yet started report ctx.Err().
func MapCollect[T, R any](ctx context.Context, items []T, concurrency int, fn func(context.Context, T) (R, error)) ([]R, []error) {
	if len(items) == 0 {
		return nil, nil
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]R, len(items))
	errs := make([]error, len(items))
	sem := make(chan struct{}, concurrency)

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			}

			results[idx], errs[idx] = fn(ctx, it)
		}(i, item)
	}
	wg.Wait()

	return results, errs
}
