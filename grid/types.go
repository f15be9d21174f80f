package grid

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Coord identifies a single cell. X is the column and Y the row.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Compare orders coordinates by column, then by row.
// It returns -1, 0 or +1 like cmp.Compare.
func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}

	return cmp.Compare(c.Y, o.Y)
}

// Less reports whether c sorts before o.
func (c Coord) Less(o Coord) bool {
	return c.Compare(o) < 0
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// offsets lists the orthogonal moves in a fixed order: N, E, S, W.
// The order is part of the package contract so that traversals are
// reproducible from run to run.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is a Width×Height rectangle of values stored row-major.
// The zero value is not usable; build one with New, FromRows or Builder.
type Grid[T any] struct {
	width, height int
	cells         []T
}
