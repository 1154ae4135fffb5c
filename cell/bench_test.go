package cell_test

import (
	"testing"

	"github.com/pipetwist/infiniteloop/cell"
)

// BenchmarkFanout measures the fused fanout across every (code, mask) pair,
// the innermost operation of a propagation sweep.
func BenchmarkFanout(b *testing.B) {
	b.ReportAllocs()
	var sink cell.Code
	for i := 0; i < b.N; i++ {
		for c := cell.Code(0); c <= 0xf; c++ {
			for m := cell.Mask(0); m <= 0xf; m++ {
				sink |= cell.Fanout(c, m)
			}
		}
	}
	_ = sink
}

// BenchmarkRotate measures single-step rotation.
func BenchmarkRotate(b *testing.B) {
	b.ReportAllocs()
	var sink cell.Code
	for i := 0; i < b.N; i++ {
		for c := cell.Code(0); c <= 0xf; c++ {
			sink |= cell.Rotate(c, 0x2)
		}
	}
	_ = sink
}
