// File: cyclic/example_test.go
package cyclic_test

import (
	"fmt"

	"github.com/TheDaniel166/IsopGem-sub011/cyclic"
	"github.com/TheDaniel166/IsopGem-sub011/ditrune"
)

// ExampleGrid_VerifyReflectiveSymmetry builds a 2×3 cyclic grid (N = 6,
// gcd(2,3)=1) whose second half mirrors the conrune of the first, then
// verifies the grid-wide pairing conrune(cell(k)) == cell(N+1−k).
func ExampleGrid_VerifyReflectiveSymmetry() {
	const rows, cols = 2, 3
	n := rows * cols
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
	}
	set := func(k, v int) { values[(k-1)%rows][(k-1)%cols] = v }
	for k := 1; k <= n/2; k++ {
		d, _ := ditrune.FromDecimal(k * 100)
		set(k, k*100)
		set(n+1-k, d.Conrune().Decimal())
	}

	g, _ := cyclic.NewGrid(values)
	rep := g.VerifyReflectiveSymmetry()
	fmt.Println("ok:", rep.OK, "mismatches:", len(rep.Mismatches))

	// Output:
	// ok: true mismatches: 0
}
