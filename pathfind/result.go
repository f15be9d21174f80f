package pathfind

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/grid"
)

// Result holds the outcome of a Solve call.
type Result struct {
	// Source is the cell the search started from.
	Source grid.Coord
	// Costs maps each cell to its hop count from Source, or Unreached.
	Costs *grid.Grid[uint64]
	// Stats counts pops and improvements.
	Stats Stats

	prev *grid.Grid[grid.Coord] // nil unless WithReturnPath
}

// Cost returns the hop count to c and whether c was reached.
// It panics if c is outside the grid.
func (r *Result) Cost(c grid.Coord) (uint64, bool) {
	cost := r.Costs.Get(c)

	return cost, cost != Unreached
}

// Reached reports whether c was reached from Source.
func (r *Result) Reached(c grid.Coord) bool {
	_, ok := r.Cost(c)

	return ok
}

// PathTo rebuilds one shortest route from Source to dest, both included.
// Requires WithReturnPath; returns ErrPathNotRecorded otherwise, and
// ErrNoPath when dest was not reached.
func (r *Result) PathTo(dest grid.Coord) ([]grid.Coord, error) {
	if r.prev == nil {
		return nil, ErrPathNotRecorded
	}
	if !r.Costs.InBounds(dest) {
		return nil, fmt.Errorf("%w: %v outside grid", ErrNoPath, dest)
	}
	cost, ok := r.Cost(dest)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}

	path := make([]grid.Coord, cost+1)
	at := dest
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = at
		at = r.prev.Get(at)
	}

	return path, nil
}
