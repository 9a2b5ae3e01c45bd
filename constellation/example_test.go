// File: constellation/example_test.go
package constellation_test

import (
	"fmt"

	"github.com/TheDaniel166/IsopGem-sub011/constellation"
)

// ExampleLocate finds the canonical seed of two clusters on one grid:
// a 5-cell path whose center is unique, and a 2×2 block where all four
// cells tie and (row, col) order decides.
//
//	1 1 1 1 1
//	. 2 2 . .
//	. 2 2 . .
func ExampleLocate() {
	g, _ := constellation.NewGrid([][]int{
		{1, 1, 1, 1, 1},
		{-1, 2, 2, -1, -1},
		{-1, 2, 2, -1, -1},
	})

	seeds, _ := constellation.Locate(g)
	fmt.Println("path seed:", seeds[1])
	fmt.Println("block seed:", seeds[2])

	// Output:
	// path seed: (0,2)
	// block seed: (1,1)
}
