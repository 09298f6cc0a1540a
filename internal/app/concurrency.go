package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PartialResult holds a value or an error for one item of a partial batch.
type PartialResult[T any] struct {
	Value T
	Err   error
}

// ParallelPartialLimit runs fns with bounded concurrency and keeps every outcome.
// A failing item never cancels the others. Items not yet started when ctx is
// cancelled report ctx.Err().
func ParallelPartialLimit[T any](ctx context.Context, limit int, fns ...func(context.Context) (T, error)) []PartialResult[T] {
	results := make([]PartialResult[T], len(fns))

	var g errgroup.Group
	g.SetLimit(normalizeLimit(limit))

	for i, fn := range fns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = PartialResult[T]{Err: err}
				return nil
			}

			value, err := fn(ctx)
			results[i] = PartialResult[T]{Value: value, Err: err}

			return nil
		})
	}

	_ = g.Wait()

	return results
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 1
	}

	return limit
}
