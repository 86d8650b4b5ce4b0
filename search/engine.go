// Stack-based branch-and-bound engine behind Solve.
//
// Rationale (succinct):
//  1. The current chain lives in one preallocated buffer: values[0:depth].
//     Extending writes values[depth]; backtracking just returns, so the
//     next sibling overwrites the slot. The running sum is pushed and
//     popped alongside.
//  2. Candidates for depth d are generated into cands[d], a buffer reused
//     across every visit to that depth.
//  3. Pruning: a candidate v is skipped when the target sum lies outside
//     [MinSumFrom(v, sum+v, d+1, L), MaxSumFrom(...)].
//  4. Branching order is ascending candidate value; the first success ends
//     the search. This is the same traversal as Find.
//  5. Cancellation and the soft time limit are checked every 4096 node
//     events so overhead stays negligible.
//
// Complexity:
//   - Worst case exponential in L (exact search). Practical speed comes from pruning.
//   - Per node: O(d² log d) candidate generation + O(1) per bound check.
//   - Memory: O(L) for the path + O(L²) for candidate buffers.

package search

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/addchain/chain"
)

// engine holds all search data and policies for one Solve call.
type engine struct {
	// Targets
	targetLength int
	targetSum    int

	opts Options

	// Time budget
	useDeadline bool
	deadline    time.Time
	steps       int // sparse interruption checks counter

	// Current search state
	values []int   // values[0:depth] is the current chain, values[0] == 1
	sum    int     // sum of values[0:depth]
	cands  [][]int // cands[d]: candidate buffer for depth d

	// Diagnostics
	nodes  int64
	pruned int64

	// err is set once the search is interrupted; it unwinds the recursion.
	err error
}

func newEngine(targetLength, targetSum int, opts Options) *engine {
	e := &engine{
		targetLength: targetLength,
		targetSum:    targetSum,
		opts:         opts,
		values:       make([]int, targetLength),
		cands:        make([][]int, targetLength),
	}
	e.values[0] = 1
	e.sum = 1
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	return e
}

// interrupted performs a rare context/deadline test (every 4096 node events).
func (e *engine) interrupted() bool {
	if e.err != nil {
		return true
	}
	e.steps++
	if (e.steps & 4095) != 0 {
		return false
	}
	if err := e.opts.Ctx.Err(); err != nil {
		e.err = err
		return true
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.err = ErrTimeLimit
		return true
	}

	return false
}

// try explores every completion of values[0:depth] and reports whether one
// hits the targets. On success values holds the chain.
func (e *engine) try(depth int) bool {
	if depth >= e.targetLength {
		return depth == e.targetLength && e.sum == e.targetSum
	}
	if e.interrupted() {
		return false
	}
	e.nodes++

	if e.opts.OnExpand != nil {
		if err := e.opts.OnExpand(e.values[:depth], e.sum); err != nil {
			e.err = fmt.Errorf("search: OnExpand hook at length %d: %w", depth, err)
			return false
		}
	}

	e.cands[depth] = chain.AppendNextValues(e.cands[depth][:0], e.values[:depth])

	var v, next int
	for _, v = range e.cands[depth] {
		next = e.sum + v
		if e.targetSum < chain.MinSumFrom(v, next, depth+1, e.targetLength) ||
			e.targetSum > chain.MaxSumFrom(v, next, depth+1, e.targetLength) {
			e.pruned++
			continue
		}

		// push
		e.values[depth] = v
		e.sum = next

		if e.try(depth + 1) {
			return true
		}

		// pop
		e.sum -= v
		if e.err != nil {
			return false
		}
	}

	return false
}

// Solve is the option-driven entrypoint: it validates the targets, runs the
// engine, validates the chain found, and reports diagnostics.
//
// Errors:
//   - ErrInvalidLength, ErrInvalidSum, ErrLengthTooLarge for bad targets.
//   - ErrInvalidOptions for a negative time limit.
//   - ErrTimeLimit, or the context's error, when interrupted.
//   - A wrapped hook error if OnExpand fails.
func Solve(targetLength, targetSum int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if err := validateOptions(o); err != nil {
		return nil, err
	}
	if err := validateTargets(targetLength, targetSum); err != nil {
		return nil, err
	}
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	log := o.Logger.With(zap.Int("length", targetLength), zap.Int("sum", targetSum))
	log.Debug("search started", zap.Duration("time_limit", o.TimeLimit))

	e := newEngine(targetLength, targetSum, o)
	start := time.Now()
	found := e.try(1)

	res := &Result{
		Nodes:   e.nodes,
		Pruned:  e.pruned,
		Elapsed: time.Since(start),
	}
	if e.err != nil {
		log.Warn("search interrupted",
			zap.Error(e.err),
			zap.Int64("nodes", res.Nodes),
			zap.Duration("elapsed", res.Elapsed))

		return nil, e.err
	}

	if found {
		values := make([]int, targetLength)
		copy(values, e.values)
		if err := chain.Validate(values, targetLength, targetSum); err != nil {
			return nil, fmt.Errorf("search: engine produced an invalid chain: %w", err)
		}
		res.Values = values
		res.Sum = targetSum
		res.Found = true
	}

	log.Debug("search finished",
		zap.Bool("found", res.Found),
		zap.Ints("chain", res.Values),
		zap.Int64("nodes", res.Nodes),
		zap.Int64("pruned", res.Pruned),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}
