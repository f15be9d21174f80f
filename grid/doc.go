// Package grid stores a fixed-size rectangle of values and exposes the
// structural queries a grid search needs.
//
// What:
//
//   - Grid[T] holds Width×Height values in row-major order.
//   - Coord is a small comparable (X, Y) value: X is the column, Y the row.
//   - Neighbours walks the up-to-4 orthogonal cells that lie inside the grid.
//   - All yields every cell in row-major order as an iter.Seq2.
//
// Why:
//
//   - Implicit graphs: edges are derived from cell values on the fly, so the
//     grid only answers "which cells are adjacent" and "what is stored here".
//   - Cost maps: a search keeps its per-cell labels in a Grid of the same shape.
//
// Construction:
//
//   - Builder appends rows one at a time; Build validates the rectangle.
//   - FromRows wraps the builder for a ready [][]T.
//   - New creates a filled grid of a given size.
//
// Complexity:
//
//   - Get, Set, InBounds, Index, Coordinate: O(1).
//   - Neighbours: O(1) (at most 4 results).
//   - All: O(W×H) per traversal.
//
// Errors:
//
//   - ErrEmptyGrid: no rows, or a zero-length first row.
//   - ErrNonRectangular: a row length differs from the first row.
//
// Get and Set panic on coordinates outside [0,Width)×[0,Height). Such an
// access is a defect in the caller, not a data condition.
package grid
