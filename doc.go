// Package addchain is the root of a small library and CLI for finding
// addition chains with a prescribed length and sum.
//
// What is an addition chain?
//
//	A strictly increasing sequence starting at 1 in which every later
//	element is the sum of two earlier ones (an element may be used twice):
//
//		1  2  3  5  8        (2=1+1, 3=1+2, 5=2+3, 8=3+5)
//
// The problem solved here fixes both the element count and the total, e.g.
// "five elements summing to 19", and asks for any chain that fits.
//
// Under the hood, everything is organized under these packages:
//
//	chain/           the Chain value, MinSum/MaxSum bounds, NextValues candidates, Validate
//	search/          depth-first branch-and-bound: Find, Solve (options, limits, hooks), SolveBatch
//	internal/config/ YAML configuration with ADDCHAIN_* environment overrides
//	internal/store/  SQLite cache of solved (length, sum) pairs
//	internal/cli/    cobra commands behind cmd/addchain
//
// Quick example:
//
//	values, ok := search.Find(5, 19) // [1 2 3 5 8], true
//	_, ok = search.Find(5, 30)       // false: 30 is in range but unreachable
//
// From the shell:
//
//	go install github.com/katalvlaran/addchain/cmd/addchain@latest
//	addchain solve 13 743
package addchain
