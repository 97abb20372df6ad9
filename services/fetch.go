// Package services holds the view/state synchronization logic: which
// fetches run together, how their results are merged, and how partial
// failure degrades. Two join policies exist side by side on purpose:
// collect-all-or-drop (an item whose fetch fails disappears from the result)
// and collect-with-per-slot-default (a failed slot renders its zero value).
// The aggregate progress view uses the first, the course detail view the
// second; see the call sites.
package services

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// collectOrDrop runs fn for every item concurrently and keeps only the
// successes, preserving input order. This is the all-or-drop join: a failed
// item is absent from the output, never substituted.
func collectOrDrop[T, V any](ctx context.Context, items []T, fn func(context.Context, T) (V, error)) []V {
	results := make([]*V, len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			v, err := fn(gctx, item)
			if err == nil {
				results[i] = &v
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]V, 0, len(items))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// collectWithDefault runs fn for every item concurrently; a failed slot is
// reported to onErr and replaced by def(item). Every input produces exactly
// one output, in order.
func collectWithDefault[T, V any](ctx context.Context, items []T, fn func(context.Context, T) (V, error), def func(T) V, onErr func(T, error)) []V {
	out := make([]V, len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			v, err := fn(gctx, item)
			if err != nil {
				onErr(item, err)
				out[i] = def(item)
				return nil
			}
			out[i] = v
			return nil
		})
	}
	_ = g.Wait()
	return out
}
