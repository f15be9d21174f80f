package grid

import (
	"fmt"
	"iter"
)

// New returns a width×height grid with every cell set to fill.
// It panics if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New[T any](width, height int, fill T) *Grid[T] {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", width, height))
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid[T]{width: width, height: height, cells: cells}
}

// FromRows builds a grid from rows[y][x]. The input is copied.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	b := NewBuilder[T]()
	for _, row := range rows {
		if err := b.AppendRow(row); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns Width×Height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Get returns the value stored at c.
// It panics if c is out of bounds.
func (g *Grid[T]) Get(c Coord) T {
	return g.cells[g.mustIndex(c)]
}

// Set stores v at c.
// It panics if c is out of bounds.
func (g *Grid[T]) Set(c Coord, v T) {
	g.cells[g.mustIndex(c)] = v
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns an independent copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

// Neighbours returns the in-bounds orthogonal neighbours of c in the
// order N, E, S, W. c itself must be in bounds.
func (g *Grid[T]) Neighbours(c Coord) []Coord {
	return g.AppendNeighbours(make([]Coord, 0, len(offsets)), c)
}

// AppendNeighbours appends the neighbours of c to dst and returns the
// extended slice. Reusing dst keeps a search loop allocation-free.
func (g *Grid[T]) AppendNeighbours(dst []Coord, c Coord) []Coord {
	g.mustIndex(c)
	for _, d := range offsets {
		n := c.Add(d[0], d[1])
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// All yields every cell with its coordinate in row-major order.
// Each call starts a fresh traversal.
func (g *Grid[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for i, v := range g.cells {
			if !yield(g.Coordinate(i), v) {
				return
			}
		}
	}
}

// Rows returns a copy of the grid as rows[y][x].
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for y := range rows {
		rows[y] = make([]T, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}

	return rows
}

// Index maps c to its row-major index: Y*Width + X.
// Complexity: O(1).
func (g *Grid[T]) Index(c Coord) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}

func (g *Grid[T]) mustIndex(c Coord) int {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: coordinate %v out of range [0,%d)x[0,%d)", c, g.width, g.height))
	}

	return g.Index(c)
}
