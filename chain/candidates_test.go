package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/addchain/chain"
)

func TestNextValues_Known(t *testing.T) {
	c := chain.New()
	assert.Equal(t, []int{2}, c.NextValues())

	c = c.Add(2)
	assert.Equal(t, []int{3, 4}, c.NextValues())

	c = c.Add(4).Add(8).Add(9)
	assert.Equal(t, []int{10, 11, 12, 13, 16, 17, 18}, c.NextValues())
}

func TestNextValues_AscendingUniqueAboveMax(t *testing.T) {
	chains := [][]int{
		{1, 2, 3},
		{1, 2, 3, 5, 7},
		{1, 2, 4, 5, 9, 10},
		{1, 2, 3, 6, 12, 13, 15},
	}
	for _, vs := range chains {
		c, err := chain.FromValues(vs)
		assert.NoError(t, err)

		next := chain.NextValues(c)
		assert.NotEmpty(t, next)
		for i, v := range next {
			assert.Greater(t, v, c.Last(), "candidate %d of %v", v, vs)
			if i > 0 {
				assert.Greater(t, v, next[i-1], "not strictly ascending for %v: %v", vs, next)
			}
		}
	}
}

func TestNextValues_Complete(t *testing.T) {
	c, err := chain.FromValues([]int{1, 2, 3, 5, 7})
	assert.NoError(t, err)

	want := make(map[int]bool)
	vs := c.Values()
	for i := range vs {
		for j := i; j < len(vs); j++ {
			if s := vs[i] + vs[j]; s > c.Last() {
				want[s] = true
			}
		}
	}
	got := c.NextValues()
	assert.Len(t, got, len(want))
	for _, v := range got {
		assert.True(t, want[v], "unexpected candidate %d", v)
	}
}

func TestAppendNextValues_KeepsPrefix(t *testing.T) {
	buf := []int{-1, -2}
	buf = chain.AppendNextValues(buf, []int{1, 2})
	assert.Equal(t, []int{-1, -2, 3, 4}, buf)

	assert.Empty(t, chain.AppendNextValues(nil, nil))
}
