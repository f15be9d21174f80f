package frontier

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/grid"
)

// ErrDuplicate indicates an Insert for a coordinate that is already pending.
var ErrDuplicate = errors.New("frontier: coordinate already pending")

// Entry is a pending coordinate tagged with its best known cost.
type Entry struct {
	Cost uint64
	At   grid.Coord
}

// Less orders entries by cost, then by coordinate.
func (e Entry) Less(o Entry) bool {
	if e.Cost != o.Cost {
		return e.Cost < o.Cost
	}

	return e.At.Less(o.At)
}

// String formats the entry as "cost@(x,y)".
func (e Entry) String() string {
	return fmt.Sprintf("%d@%v", e.Cost, e.At)
}
