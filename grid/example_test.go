package grid_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/grid"
)

// ExampleGrid_Neighbours shows the fixed N, E, S, W neighbour order and how
// cells on the border lose the directions that would leave the grid.
func ExampleGrid_Neighbours() {
	g, err := grid.FromRows([][]int{
		{0, 1, 2},
		{3, 4, 5},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Neighbours(grid.C(1, 0)))
	fmt.Println(g.Neighbours(grid.C(1, 1)))
	// Output:
	// [(2,0) (1,1) (0,0)]
	// [(1,0) (2,1) (0,1)]
}

// ExampleGrid_All walks a grid in row-major order.
func ExampleGrid_All() {
	g, _ := grid.FromRows([][]rune{
		[]rune("ab"),
		[]rune("cd"),
	})
	for c, v := range g.All() {
		fmt.Printf("%v=%c ", c, v)
	}
	fmt.Println()
	// Output: (0,0)=a (1,0)=b (0,1)=c (1,1)=d
}
