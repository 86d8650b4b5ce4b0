package search_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/addchain/chain"
	"github.com/katalvlaran/addchain/search"
)

// hardLength/hardSum need far more than 4096 expanded nodes, so the sparse
// interruption check is guaranteed to fire before the search completes.
const (
	hardLength = 25
	hardSum    = 1234567
)

// mustValidChain asserts every addition-chain invariant plus both targets.
func mustValidChain(t *testing.T, values []int, length, sum int) {
	t.Helper()
	require.NoError(t, chain.Validate(values, length, sum), "chain %v", values)
}

func TestFind_Solvable(t *testing.T) {
	cases := []struct{ length, sum int }{
		{1, 1}, {2, 3},
		{5, 15}, {5, 18}, {5, 19}, {5, 20}, {5, 31},
		{6, 40}, {8, 100}, {10, 127}, {13, 743},
	}
	for _, tc := range cases {
		values, ok := search.Find(tc.length, tc.sum)
		require.True(t, ok, "Find(%d, %d)", tc.length, tc.sum)
		mustValidChain(t, values, tc.length, tc.sum)
	}
}

func TestFind_Unsolvable(t *testing.T) {
	// 32 is above MaxSum([1], 5), 14 below MinSum([1], 5); 30 is inside the
	// range yet no chain realizes it.
	cases := []struct{ length, sum int }{
		{1, 2}, {5, 32}, {5, 14}, {5, 30},
	}
	for _, tc := range cases {
		values, ok := search.Find(tc.length, tc.sum)
		assert.False(t, ok, "Find(%d, %d)", tc.length, tc.sum)
		assert.Nil(t, values)
	}
}

func TestFind_FirstInAscendingOrder(t *testing.T) {
	want := map[[2]int][]int{
		{2, 3}:    {1, 2},
		{5, 15}:   {1, 2, 3, 4, 5},
		{5, 18}:   {1, 2, 3, 4, 8},
		{5, 19}:   {1, 2, 3, 5, 8},
		{5, 20}:   {1, 2, 3, 6, 8},
		{5, 31}:   {1, 2, 4, 8, 16},
		{10, 127}: {1, 2, 3, 4, 5, 6, 8, 14, 28, 56},
		{13, 743}: {1, 2, 3, 4, 5, 6, 7, 13, 26, 52, 104, 208, 312},
	}
	for k, w := range want {
		got, ok := search.Find(k[0], k[1])
		require.True(t, ok)
		assert.Equal(t, w, got, "Find(%d, %d)", k[0], k[1])
	}
}

func TestFind_BadLengthTerminates(t *testing.T) {
	_, ok := search.Find(0, 1)
	assert.False(t, ok)
}

func TestSolve_MatchesFind(t *testing.T) {
	for length := 1; length <= 7; length++ {
		lo := chain.MinSum(chain.New(), length)
		hi := chain.MaxSum(chain.New(), length)
		for sum := lo - 1; sum <= hi+1; sum++ {
			if sum < 1 {
				continue
			}
			want, wantOK := search.Find(length, sum)
			res, err := search.Solve(length, sum)
			require.NoError(t, err)
			require.Equal(t, wantOK, res.Found, "length=%d sum=%d", length, sum)
			assert.Equal(t, want, res.Values, "length=%d sum=%d", length, sum)
			if res.Found {
				assert.Equal(t, sum, res.Sum)
			}
		}
	}
}

func TestSolve_Diagnostics(t *testing.T) {
	res, err := search.Solve(5, 30)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Values)
	assert.Equal(t, int64(4), res.Nodes)
	assert.Equal(t, int64(7), res.Pruned)

	res, err = search.Solve(2, 3)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{1, 2}, res.Values)
	assert.Equal(t, int64(1), res.Nodes)
	assert.Zero(t, res.Pruned)
}

func TestSolve_Deterministic(t *testing.T) {
	a, err := search.Solve(13, 743)
	require.NoError(t, err)
	b, err := search.Solve(13, 743)
	require.NoError(t, err)
	assert.Equal(t, a.Values, b.Values)
	assert.Equal(t, a.Nodes, b.Nodes)
}

func TestSolve_InvalidInput(t *testing.T) {
	_, err := search.Solve(0, 1)
	assert.ErrorIs(t, err, search.ErrInvalidLength)

	_, err = search.Solve(3, 0)
	assert.ErrorIs(t, err, search.ErrInvalidSum)

	_, err = search.Solve(search.MaxLength+1, 10)
	assert.ErrorIs(t, err, search.ErrLengthTooLarge)

	_, err = search.Solve(3, 7, search.WithTimeLimit(-time.Second))
	assert.ErrorIs(t, err, search.ErrInvalidOptions)
}

func TestSolve_TimeLimit(t *testing.T) {
	res, err := search.Solve(hardLength, hardSum, search.WithTimeLimit(time.Nanosecond))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrTimeLimit)
}

func TestSolve_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := search.Solve(5, 20, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	// Cancel mid-search from the hook; the engine notices on its next poll.
	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	_, err = search.Solve(hardLength, hardSum,
		search.WithContext(ctx),
		search.WithOnExpand(func([]int, int) error {
			cancel()
			return nil
		}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_OnExpand(t *testing.T) {
	var seen [][]int
	res, err := search.Solve(5, 18, search.WithOnExpand(func(values []int, sum int) error {
		total := 0
		for _, v := range values {
			total += v
		}
		assert.Equal(t, total, sum)
		seen = append(seen, append([]int(nil), values...))
		return nil
	}))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Len(t, seen, int(res.Nodes))
	assert.Equal(t, []int{1}, seen[0])

	boom := errors.New("boom")
	_, err = search.Solve(5, 18, search.WithOnExpand(func([]int, int) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestSolve_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	res, err := search.Solve(5, 19, search.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.True(t, res.Found)

	entries := logs.FilterMessage("search finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(5), fields["length"])
	assert.Equal(t, int64(19), fields["sum"])
	assert.Equal(t, true, fields["found"])

	// nil logger keeps the no-op default.
	_, err = search.Solve(2, 3, search.WithLogger(nil), search.WithContext(nil))
	assert.NoError(t, err)
}
