package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/grid"
)

// ExampleBFS walks a small ridge where each step may climb at most one unit.
func ExampleBFS() {
	g, _ := grid.FromRows([][]int{
		{0, 1, 2, 3},
		{0, 5, 5, 4},
	})
	res, err := bfs.BFS(g, grid.C(0, 0), func(from, to int) bool { return to <= from+1 })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("depth to (1,1):", res.Depth[grid.C(1, 1)])
	path, _ := res.PathTo(grid.C(3, 1))
	fmt.Println(path)
	// Output:
	// depth to (1,1): 6
	// [(0,0) (1,0) (2,0) (3,0) (3,1)]
}
