package frontier_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/frontier"
	"github.com/katalvlaran/hillclimb/grid"
)

// ExampleQueue shows the remove-then-reinsert pattern used when a cell's
// cost improves.
func ExampleQueue() {
	q := frontier.New(4)
	_ = q.Insert(5, grid.C(2, 2))
	_ = q.Insert(3, grid.C(1, 0))

	// (2,2) is now reachable at cost 2: drop the stale pair first.
	q.Remove(5, grid.C(2, 2))
	_ = q.Insert(2, grid.C(2, 2))

	for q.Len() > 0 {
		e, _ := q.PopMin()
		fmt.Println(e)
	}
	// Output:
	// 2@(2,2)
	// 3@(1,0)
}
