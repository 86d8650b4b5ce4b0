package search_test

import (
	"testing"

	"github.com/katalvlaran/addchain/search"
)

// BenchmarkFind_13_743 measures the copy-per-branch search.
func BenchmarkFind_13_743(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = search.Find(13, 743)
	}
}

// BenchmarkSolve_13_743 measures the stack engine on the same instance.
func BenchmarkSolve_13_743(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = search.Solve(13, 743)
	}
}

// BenchmarkSolve_Exhaustive_5_30 measures a search that must exhaust the tree.
func BenchmarkSolve_Exhaustive_5_30(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = search.Solve(5, 30)
	}
}
