package chain

import (
	"fmt"
	"strconv"
	"strings"
)

// New returns the canonical starting chain [1] with sum 1.
func New() Chain {
	return Chain{values: []int{1}, sum: 1}
}

// FromValues builds a chain from an explicit value list after checking the
// structural invariants (starts at 1, strictly increasing, every element a
// sum of two earlier ones). Length and sum are not constrained.
//
// Complexity: O(n²).
func FromValues(values []int) (Chain, error) {
	if err := validateStructure(values); err != nil {
		return Chain{}, err
	}

	c := New()
	var i int
	for i = 1; i < len(values); i++ {
		c = c.Add(values[i])
	}

	return c, nil
}

// Add returns a new chain that extends c by v. The receiver is not modified.
// No validation is performed: callers add only values taken from NextValues.
//
// Complexity: O(n) time and space.
func (c Chain) Add(v int) Chain {
	values := make([]int, len(c.values)+1)
	copy(values, c.values)
	values[len(c.values)] = v

	return Chain{values: values, sum: c.sum + v}
}

// Len returns the element count.
func (c Chain) Len() int { return len(c.values) }

// Sum returns the running total of all elements.
func (c Chain) Sum() int { return c.sum }

// Last returns the largest (final) element, or 0 for the zero Chain.
func (c Chain) Last() int {
	if len(c.values) == 0 {
		return 0
	}

	return c.values[len(c.values)-1]
}

// At returns the i-th element. It panics if i is out of range, like a slice index.
func (c Chain) At(i int) int { return c.values[i] }

// Values returns a copy of the elements.
func (c Chain) Values() []int {
	out := make([]int, len(c.values))
	copy(out, c.values)

	return out
}

// String formats the chain as "[1 2 4]".
func (c Chain) String() string {
	return FormatValues(c.values)
}

// GoString renders a debug form including the running sum.
func (c Chain) GoString() string {
	return fmt.Sprintf("chain.Chain{values:%s, sum:%d}", FormatValues(c.values), c.sum)
}

// FormatValues formats an int slice as "[a b c]".
func FormatValues(values []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')

	return b.String()
}
