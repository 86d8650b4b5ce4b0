package chain

import "errors"

var (
	// ErrEmpty is returned when a chain is built from or validated against
	// an empty value list.
	ErrEmpty = errors.New("chain: no values")

	// ErrBadStart indicates that the first value is not 1.
	ErrBadStart = errors.New("chain: first value must be 1")

	// ErrNotIncreasing indicates that values[i] <= values[i-1] for some i.
	ErrNotIncreasing = errors.New("chain: values are not strictly increasing")

	// ErrNotSum indicates that some values[i] (i>0) is not values[a]+values[b]
	// for any a, b < i.
	ErrNotSum = errors.New("chain: value is not a sum of two earlier values")

	// ErrLengthMismatch indicates that the element count differs from the target length.
	ErrLengthMismatch = errors.New("chain: length mismatch")

	// ErrSumMismatch indicates that the running sum differs from the target sum.
	ErrSumMismatch = errors.New("chain: sum mismatch")
)

// Chain is a partial or complete addition chain plus its running sum.
//
// The zero value holds no elements and is only useful as a placeholder;
// start every search from New.
type Chain struct {
	// values[0] == 1; strictly increasing.
	values []int

	// sum is maintained incrementally by Add.
	sum int
}
