package grid_test

import (
	"testing"

	"github.com/katalvlaran/hillclimb/grid"
)

// BenchmarkAppendNeighbours measures the neighbour walk over every cell of a 200×200 grid.
func BenchmarkAppendNeighbours(b *testing.B) {
	const N = 200
	g := grid.New(N, N, 0)
	buf := make([]grid.Coord, 0, 4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for idx := 0; idx < g.Len(); idx++ {
			buf = g.AppendNeighbours(buf[:0], g.Coordinate(idx))
		}
	}
}

// BenchmarkAll measures a full row-major traversal.
func BenchmarkAll(b *testing.B) {
	const N = 200
	g := grid.New(N, N, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for _, v := range g.All() {
			sum += v
		}
		_ = sum
	}
}
