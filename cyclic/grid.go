package cyclic

import (
	"fmt"

	"github.com/TheDaniel166/IsopGem-sub011/ditrune"
)

// Grid is an immutable R×C table of ditrunes with coprime dimensions,
// addressed by a 1-based cyclic index. Build one with NewGrid; the input
// is converted and deep-copied, so later mutation of the source slice
// never affects the Grid.
type Grid struct {
	rows, cols int
	cells      [][]ditrune.Ditrune
}

// NewGrid converts a rectangular table of decimal content values into a
// cyclic Grid. Each value must lie in [0, 728]; conversion errors are
// wrapped with the failing cell's coordinates. Returns ErrEmptyGrid,
// ErrNonRectangular, or ErrNotCoprime for shape violations — callers
// must supply coprime dimensions, otherwise the cyclic index would
// silently skip and repeat cells.
// Complexity: O(R·C).
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	if gcd(rows, cols) != 1 {
		return nil, fmt.Errorf("%w: %d×%d", ErrNotCoprime, rows, cols)
	}

	cells := make([][]ditrune.Ditrune, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]ditrune.Ditrune, cols)
		for c := 0; c < cols; c++ {
			d, err := ditrune.FromDecimal(values[r][c])
			if err != nil {
				return nil, fmt.Errorf("cyclic: cell (%d,%d): %w", r, c, err)
			}
			cells[r][c] = d
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the row count R.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count C.
func (g *Grid) Cols() int { return g.cols }

// Size returns N = R·C, the period of the cyclic index.
func (g *Grid) Size() int { return g.rows * g.cols }

// Cell returns the ditrune at 1-based cyclic index k:
// grid[(k−1) mod R][(k−1) mod C]. Because gcd(R, C) = 1, the indices
// 1..N address every cell exactly once; indices beyond N wrap around.
// Complexity: O(1).
func (g *Grid) Cell(k int) ditrune.Ditrune {
	return g.cells[(k-1)%g.rows][(k-1)%g.cols]
}

// gcd computes the greatest common divisor via Euclid's algorithm.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
