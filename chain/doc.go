// Package chain implements the addition-chain value type and the pure
// helpers the search engine prunes with.
//
// What:
//
//   - Chain: an append-only sequence of positive integers starting at 1,
//     together with its running sum. Add returns a new chain and leaves the
//     receiver untouched, so sibling branches of a search never observe
//     each other's state.
//   - MinSum / MaxSum: the smallest and largest total any completion of a
//     partial chain can reach within a fixed element count. They depend
//     only on (Last, Sum, Len); MinSumFrom / MaxSumFrom expose that form
//     directly for callers that keep their own stack.
//   - NextValues: the strictly ascending, duplicate-free set of values that
//     may legally follow a chain (pairwise sums above the current maximum).
//   - Validate: full invariant check of a finished chain.
//
// Conventions:
//
//   - "Length" in this package is always the element count. The number of
//     additions (the usual "chain length" in the literature) is Len()-1.
//   - Arithmetic is plain int. Bounds for very long targets overflow; the
//     search package caps targets at search.MaxLength for that reason.
//
// Complexity:
//
//   - Add:        O(n) time and space (copy of the parent).
//   - MinSum/MaxSum: O(1).
//   - NextValues: O(n² log n) for n = Len().
//   - Validate:   O(n²).
//
// Errors:
//
//   - ErrEmpty           no values given
//   - ErrBadStart        first value is not 1
//   - ErrNotIncreasing   values are not strictly increasing
//   - ErrNotSum          an element is not the sum of two earlier elements
//   - ErrLengthMismatch  element count differs from the target
//   - ErrSumMismatch     total differs from the target
package chain
