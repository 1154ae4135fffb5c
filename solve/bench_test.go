package solve_test

import (
	"testing"

	"github.com/pipetwist/infiniteloop/board"
	"github.com/pipetwist/infiniteloop/solve"
)

// BenchmarkSolve_Puzzle166 measures the full enumeration of the hardest
// canonical puzzle under the deterministic selector.
func BenchmarkSolve_Puzzle166(b *testing.B) {
	p, err := board.Parse(puzzle166)
	if err != nil {
		b.Fatalf("Parse error: %v", err)
	}
	sink := solve.ConsumerFunc(func(*board.Solution) solve.Signal { return solve.Continue })

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = solve.Solve(p, sink, solve.WithSelector(solve.SelectFirst))
	}
}

// BenchmarkSolve_TwoByTwo measures a small ambiguous board, where branch
// copies dominate.
func BenchmarkSolve_TwoByTwo(b *testing.B) {
	p, err := board.Parse(twoByTwo)
	if err != nil {
		b.Fatalf("Parse error: %v", err)
	}
	sink := solve.ConsumerFunc(func(*board.Solution) solve.Signal { return solve.Continue })

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = solve.Solve(p, sink, solve.WithSelector(solve.SelectFirst))
	}
}
