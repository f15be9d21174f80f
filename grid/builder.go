package grid

import "fmt"

// Builder assembles a Grid row by row.
type Builder[T any] struct {
	width int
	rows  int
	cells []T
	err   error
}

// NewBuilder returns an empty Builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// AppendRow copies row to the bottom of the grid under construction.
// The first row fixes the width; any later row of another length yields
// ErrNonRectangular, which is also remembered and returned by Build.
func (b *Builder[T]) AppendRow(row []T) error {
	if b.err != nil {
		return b.err
	}
	if b.rows == 0 {
		if len(row) == 0 {
			b.err = ErrEmptyGrid
			return b.err
		}
		b.width = len(row)
	} else if len(row) != b.width {
		b.err = fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, b.rows, len(row), b.width)
		return b.err
	}
	b.cells = append(b.cells, row...)
	b.rows++

	return nil
}

// Rows returns the number of rows appended so far.
func (b *Builder[T]) Rows() int { return b.rows }

// Build returns the finished grid. The builder must not be used afterwards.
func (b *Builder[T]) Build() (*Grid[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.rows == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid[T]{width: b.width, height: b.rows, cells: b.cells}
	b.cells = nil

	return g, nil
}
