package pareto

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// DecomposeDimensions runs one independent decomposition per field,
// concurrently. A dimension that fails validation (field missing from all
// records, zero total) yields a nil entry under its key; sibling dimensions
// still succeed. Partial failure is absorbed here — this is the only layer
// that does so.
func DecomposeDimensions(items []Record, fields []string, opts ...Option) map[string]*Result {
	results := make(map[string]*Result, len(fields))

	var mu sync.Mutex
	var g errgroup.Group
	for _, field := range fields {
		g.Go(func() error {
			res, err := Decompose(items, field, opts...)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				results[field] = nil
				return nil
			}
			results[field] = res
			return nil
		})
	}
	// Workers never return errors; Wait is just the join point.
	_ = g.Wait()

	return results
}
