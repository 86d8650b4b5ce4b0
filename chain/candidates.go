package chain

import "slices"

// NextValues returns every value that may legally follow c: the pairwise sums
// values[i]+values[j] (i <= j) strictly greater than c.Last(), once each, in
// ascending order.
//
// Requiring the next value to exceed the current maximum keeps every chain
// in its strictly increasing form, so permutations of the same chain are
// never generated twice.
//
// Complexity: O(n² log n) time, O(n²) space.
func NextValues(c Chain) []int {
	return AppendNextValues(nil, c.values)
}

// NextValues is the method form of the package-level NextValues.
func (c Chain) NextValues() []int { return NextValues(c) }

// AppendNextValues appends the candidates following values to dst and
// returns the extended slice. values must be a non-empty, strictly
// increasing chain. Only the appended tail is sorted and deduplicated, so
// callers can reuse a buffer across calls with dst[:0].
func AppendNextValues(dst []int, values []int) []int {
	if len(values) == 0 {
		return dst
	}
	var (
		start   = len(dst)
		n       = len(values)
		biggest = values[n-1]
		i, j, s int
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			s = values[i] + values[j]
			if s <= biggest {
				continue // must exceed the current maximum
			}
			dst = append(dst, s)
		}
	}

	tail := dst[start:]
	slices.Sort(tail)
	tail = slices.Compact(tail)

	return dst[:start+len(tail)]
}
