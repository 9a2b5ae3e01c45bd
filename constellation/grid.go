package constellation

import "sort"

// neighborOffsets is the fixed 4-directional orthogonal adjacency:
// two cells are adjacent iff they differ by exactly 1 in row or column,
// never both.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an immutable rectangular table of cluster ids. Build one with
// NewGrid; the input is deep-copied and per-cluster member lists are
// precomputed in row-major order, the order every deterministic scan in
// this package relies on.
type Grid struct {
	rows, cols int
	ids        [][]int
	members    map[int][]Coord
}

// NewGrid validates and copies a rectangular cluster-id table. Cells
// with a negative id (conventionally Unassigned) belong to no cluster.
// Returns ErrEmptyGrid or ErrNonRectangular for shape violations.
// Complexity: O(R·C).
func NewGrid(ids [][]int) (*Grid, error) {
	if len(ids) == 0 || len(ids[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(ids), len(ids[0])
	for _, row := range ids {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	copied := make([][]int, rows)
	members := make(map[int][]Coord)
	for r := 0; r < rows; r++ {
		copied[r] = make([]int, cols)
		copy(copied[r], ids[r])
		for c := 0; c < cols; c++ {
			if id := copied[r][c]; id >= 0 {
				// Row-major construction keeps each list (row, col) sorted.
				members[id] = append(members[id], Coord{Row: r, Col: c})
			}
		}
	}

	return &Grid{rows: rows, cols: cols, ids: copied, members: members}, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// ClusterIDs returns every cluster id present in the grid, ascending.
// Complexity: O(ids·log ids).
func (g *Grid) ClusterIDs() []int {
	ids := make([]int, 0, len(g.members))
	for id := range g.members {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Members returns a copy of cluster id's cells in (row, col) ascending
// order; nil for an id absent from the grid.
func (g *Grid) Members(id int) []Coord {
	cells, ok := g.members[id]
	if !ok {
		return nil
	}
	out := make([]Coord, len(cells))
	copy(out, cells)

	return out
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// sameCluster reports whether (row, col) is in bounds and carries id.
func (g *Grid) sameCluster(row, col, id int) bool {
	return g.InBounds(row, col) && g.ids[row][col] == id
}
