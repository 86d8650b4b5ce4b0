package search

import "github.com/katalvlaran/addchain/chain"

// Find searches for an addition chain of exactly targetLength elements
// summing to targetSum. It returns the chain's values and true, or nil and
// false when no chain exists.
//
// Find performs no input validation; use Solve for untrusted input.
func Find(targetLength, targetSum int) ([]int, bool) {
	c, ok := tryChain(targetLength, targetSum, chain.New())
	if !ok {
		return nil, false
	}

	return c.Values(), true
}

// tryChain extends c one candidate at a time, ascending, and returns the
// first complete chain that hits targetSum. Every branch owns its chain.
func tryChain(targetLength, targetSum int, c chain.Chain) (chain.Chain, bool) {
	if c.Len() >= targetLength {
		return c, c.Len() == targetLength && c.Sum() == targetSum
	}

	var next chain.Chain
	for _, v := range c.NextValues() {
		next = c.Add(v)

		if targetSum < next.MinSum(targetLength) {
			continue // every completion overshoots
		}
		if targetSum > next.MaxSum(targetLength) {
			continue // no completion gets there
		}

		if found, ok := tryChain(targetLength, targetSum, next); ok {
			return found, true
		}
	}

	return chain.Chain{}, false
}
