package search

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SolveBatch runs Solve for every target on at most workers goroutines and
// returns the outcomes in input order. Per-target failures land in
// BatchResult.Err. The returned error is non-nil only when ctx ends before
// all targets were attempted, or workers < 1.
//
// opts apply to every target; ctx overrides any WithContext among them.
func SolveBatch(ctx context.Context, targets []Target, workers int, opts ...Option) ([]BatchResult, error) {
	if workers < 1 {
		return nil, ErrInvalidOptions
	}
	if ctx == nil {
		ctx = context.Background()
	}

	out := make([]BatchResult, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range targets {
		out[i].Target = targets[i]
	}
	for i := range targets {
		i := i // per-iteration copy; module targets go 1.21 (pre-1.22 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i].Err = err
				return err
			}

			itemOpts := make([]Option, 0, len(opts)+1)
			itemOpts = append(itemOpts, opts...)
			itemOpts = append(itemOpts, WithContext(gctx))

			res, err := Solve(targets[i].Length, targets[i].Sum, itemOpts...)
			out[i].Result, out[i].Err = res, err
			if err != nil && gctx.Err() != nil {
				return gctx.Err()
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	return out, nil
}
