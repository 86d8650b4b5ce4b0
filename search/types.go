package search

import (
	"errors"
	"time"
)

// MaxLength is the largest accepted target length. Past it the 2^(delta+1)
// term of the upper bound no longer fits a signed 64-bit int.
const MaxLength = 62

var (
	// ErrInvalidLength is returned for a target length below 1.
	ErrInvalidLength = errors.New("search: target length must be at least 1")

	// ErrInvalidSum is returned for a target sum below 1.
	ErrInvalidSum = errors.New("search: target sum must be at least 1")

	// ErrLengthTooLarge is returned for a target length above MaxLength.
	ErrLengthTooLarge = errors.New("search: target length too large")

	// ErrInvalidOptions is returned for a negative time limit or a
	// non-positive worker count.
	ErrInvalidOptions = errors.New("search: invalid options")

	// ErrTimeLimit is returned when a positive Options.TimeLimit is exceeded.
	ErrTimeLimit = errors.New("search: time limit exceeded")
)

// Result holds the outcome of one search.
type Result struct {
	// Values is the chain found, nil when Found is false.
	Values []int

	// Sum is the total of Values (the target sum when Found).
	Sum int

	// Found reports whether a chain exists.
	Found bool

	// Nodes counts chains whose candidates were expanded.
	Nodes int64

	// Pruned counts candidates rejected by the sum bounds.
	Pruned int64

	// Elapsed is the wall-clock search time.
	Elapsed time.Duration
}

// Target is one (length, sum) request.
type Target struct {
	Length int `json:"length"`
	Sum    int `json:"sum"`
}

// BatchResult pairs a Target with its outcome. Err carries per-target
// failures (invalid input, time limit); it does not stop the batch.
type BatchResult struct {
	Target Target
	Result *Result
	Err    error
}
