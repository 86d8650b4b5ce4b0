// Package search finds an addition chain with a prescribed element count and
// a prescribed total, by depth-first branch-and-bound.
//
// What:
//
//   - Find(length, sum): the plain search. Each step extends an immutable
//     chain.Chain by one candidate, prunes the branch when the target sum
//     falls outside [chain.MinSum, chain.MaxSum], and recurses. The first
//     success under ascending candidate order is returned.
//   - Solve(length, sum, opts...): the same traversal on an explicit stack
//     with push/pop on backtrack. It adds input validation, cancellation,
//     a soft time limit, an OnExpand hook, zap logging, and node/prune
//     counters. Find and Solve return identical chains for every input.
//   - SolveBatch(ctx, targets, workers, opts...): independent searches on a
//     bounded worker pool, results in input order.
//
// Outcomes:
//
//   - Result.Found == true: Result.Values is a valid chain of the requested
//     length and sum (checked with chain.Validate before returning).
//   - Result.Found == false with a nil error: the search space is exhausted
//     and no chain exists. This is an answer, not a failure.
//   - Non-nil error: invalid input, cancellation, time limit, or a hook error.
//
// Complexity:
//
//   - Exponential in the target length in the worst case; pruning does the work.
//   - Memory (Solve): O(L²) for per-depth candidate buffers, L = target length.
//   - Recursion depth: L.
//
// Errors:
//
//   - ErrInvalidLength    target length < 1
//   - ErrInvalidSum       target sum < 1
//   - ErrLengthTooLarge   target length > MaxLength
//   - ErrInvalidOptions   negative time limit or zero workers
//   - ErrTimeLimit        soft time limit exceeded
//   - context.Canceled / context.DeadlineExceeded from Options.Ctx
package search
