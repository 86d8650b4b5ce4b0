// Bound calculator: the sum range reachable from a partial chain.
//
// Both bounds look only at the largest element, the running sum, and the
// number of slots still free (delta = targetLength - Len):
//
//   - Cheapest completion: every new element exceeds the previous maximum by
//     exactly one, i.e. biggest+1, …, biggest+delta.
//     MinSum = (biggest-1)*(delta+1) + SumN2(delta+1) - biggest + Sum.
//   - Dearest completion: every new element doubles the maximum, since a sum
//     of two elements is at most twice the largest one.
//     MaxSum = biggest*(2^(delta+1) - 2) + Sum.
//
// A search abandons a branch as soon as the target sum leaves [MinSum, MaxSum].
// The check is necessary, not sufficient: (length 5, sum 30) is in range yet
// has no chain.

package chain

// SumN2 returns n(n+1)/2, the sum of 1..n.
func SumN2(n int) int {
	return n * (n + 1) / 2
}

// Pow2 returns 2^n for n >= 0, and 1 for negative n.
func Pow2(n int) int {
	if n <= 0 {
		return 1
	}

	return 1 << uint(n)
}

// MinSum returns the smallest total any valid completion of c to
// targetLength elements can have.
func MinSum(c Chain, targetLength int) int {
	return MinSumFrom(c.Last(), c.Sum(), c.Len(), targetLength)
}

// MaxSum returns the largest total any valid completion of c to
// targetLength elements can have.
func MaxSum(c Chain, targetLength int) int {
	return MaxSumFrom(c.Last(), c.Sum(), c.Len(), targetLength)
}

// MinSumFrom is MinSum expressed on the three quantities it depends on.
func MinSumFrom(last, sum, length, targetLength int) int {
	delta := targetLength - length
	nextN := (last-1)*(delta+1) + SumN2(delta+1) - last // last is already in sum

	return nextN + sum
}

// MaxSumFrom is MaxSum expressed on the three quantities it depends on.
func MaxSumFrom(last, sum, length, targetLength int) int {
	delta := targetLength - length

	return last*(Pow2(delta+1)-2) + sum
}

// MinSum is the method form of the package-level MinSum.
func (c Chain) MinSum(targetLength int) int { return MinSum(c, targetLength) }

// MaxSum is the method form of the package-level MaxSum.
func (c Chain) MaxSum(targetLength int) int { return MaxSum(c, targetLength) }
