package search

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Option configures optional behavior of Solve.
// Use with Solve(length, sum, opts...).
type Option func(*Options)

// Options holds configurable parameters for one search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is polled every 4096 expanded nodes.
	Ctx context.Context

	// TimeLimit, if positive, is a soft wall-clock budget checked on the
	// same schedule as Ctx. Zero means no limit; negative is rejected.
	TimeLimit time.Duration

	// Logger receives search start/finish records. Defaults to a no-op logger.
	Logger *zap.Logger

	// OnExpand, if non-nil, is invoked with the current chain before its
	// candidates are generated. values is only valid during the call.
	// Returning an error aborts the search with that error.
	// SolveBatch may call it from several goroutines at once.
	OnExpand func(values []int, sum int) error
}

// DefaultOptions returns Options with:
//   - Background context
//   - No time limit
//   - No-op logger
//   - No hook
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		TimeLimit: 0,
		Logger:    zap.NewNop(),
		OnExpand:  nil,
	}
}

// WithContext sets the context polled during the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeLimit sets a soft time budget. Zero disables it.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithLogger installs a zap logger. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand installs fn as the expansion hook.
func WithOnExpand(fn func(values []int, sum int) error) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// validateOptions checks option consistency. Complexity: O(1).
func validateOptions(o Options) error {
	if o.TimeLimit < 0 {
		return ErrInvalidOptions
	}

	return nil
}

// validateTargets checks the (length, sum) pair. Complexity: O(1).
func validateTargets(targetLength, targetSum int) error {
	switch {
	case targetLength < 1:
		return ErrInvalidLength
	case targetLength > MaxLength:
		return ErrLengthTooLarge
	case targetSum < 1:
		return ErrInvalidSum
	}

	return nil
}
