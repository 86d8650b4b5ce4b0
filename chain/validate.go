// Validation of finished chains.
//
// Validate is the acceptance test for anything a solver returns: it checks
// every structural invariant plus the two targets. Solvers run it once on
// their result before handing it out.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No panics on user input - only the sentinels from types.go, wrapped
//     with the offending index or value.

package chain

import "fmt"

// Validate reports whether values is an addition chain of exactly
// targetLength elements summing to targetSum.
//
// Complexity: O(n²) time, O(n) extra space.
func Validate(values []int, targetLength, targetSum int) error {
	if err := validateStructure(values); err != nil {
		return err
	}
	if len(values) != targetLength {
		return fmt.Errorf("%w: got %d elements, want %d", ErrLengthMismatch, len(values), targetLength)
	}

	var total int
	for _, v := range values {
		total += v
	}
	if total != targetSum {
		return fmt.Errorf("%w: got %d, want %d", ErrSumMismatch, total, targetSum)
	}

	return nil
}

// validateStructure checks start, monotonicity, and the sum property.
//
// Because values are strictly increasing, a set lookup of values[i]-values[a]
// among the earlier elements decides the sum property in O(i) per element.
func validateStructure(values []int) error {
	if len(values) == 0 {
		return ErrEmpty
	}
	if values[0] != 1 {
		return fmt.Errorf("%w: got %d", ErrBadStart, values[0])
	}

	seen := make(map[int]struct{}, len(values))
	seen[1] = struct{}{}

	var (
		i, a  int
		v     int
		found bool
	)
	for i = 1; i < len(values); i++ {
		v = values[i]
		if v <= values[i-1] {
			return fmt.Errorf("%w: values[%d]=%d after %d", ErrNotIncreasing, i, v, values[i-1])
		}
		found = false
		for a = 0; a < i; a++ {
			if _, ok := seen[v-values[a]]; ok {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: values[%d]=%d", ErrNotSum, i, v)
		}
		seen[v] = struct{}{}
	}

	return nil
}
