package constellation

import "fmt"

// Locate maps every non-empty cluster id to its seed: the member with
// minimum eccentricity under the cluster-restricted 4-adjacency, ties
// broken by ascending (row, col). Absent entry = the id does not occur
// in the grid (asking for seeds of an id-free grid yields an empty map,
// not an error). A singleton cluster is its own seed with eccentricity
// zero.
//
// Under WithStrictConnectivity a fragmented cluster fails with
// ErrClusterDisconnected wrapped with the cluster id; by default all of
// its members sit at Infinite eccentricity and the tie-break alone
// decides, which is degenerate but reproducible.
// Complexity: O(Σ |S|²) over clusters S.
func Locate(g *Grid, opts ...Option) (map[int]Coord, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	seeds := make(map[int]Coord, len(g.members))
	for _, id := range g.ClusterIDs() {
		seed, err := locateOne(g, id, o)
		if err != nil {
			return nil, err
		}
		seeds[id] = seed
	}

	return seeds, nil
}

// Eccentricities returns the eccentricity of every member of cluster id:
// the greatest BFS distance to any other member, Infinite when some
// member is unreachable. Returns ErrUnknownCluster for an absent id.
// Exposed so driver analyses can re-derive and cross-check seed choices.
// Complexity: O(|S|²).
func Eccentricities(g *Grid, id int) (map[Coord]int, error) {
	cells, ok := g.members[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCluster, id)
	}

	ecc := make(map[Coord]int, len(cells))
	for _, v := range cells {
		ecc[v] = eccentricity(g, id, v, len(cells))
	}

	return ecc, nil
}

// locateOne runs the eccentricity scan for one cluster and applies the
// tie-break. Member order is row-major, so keeping the first cell that
// achieves the running minimum implements min-(row, col) exactly.
func locateOne(g *Grid, id int, o Options) (Coord, error) {
	cells := g.members[id]
	if len(cells) == 1 {
		return cells[0], nil
	}

	// Members arrive (row, col) ascending; a strictly-less comparison
	// therefore keeps the lexicographically smallest cell on ties.
	best := cells[0]
	bestEcc := eccentricity(g, id, best, len(cells))
	disconnected := bestEcc == Infinite
	for _, v := range cells[1:] {
		e := eccentricity(g, id, v, len(cells))
		if e == Infinite {
			disconnected = true
		}
		if e < bestEcc {
			bestEcc = e
			best = v
		}
	}
	if disconnected && o.Strict {
		return Coord{}, fmt.Errorf("%w: id %d", ErrClusterDisconnected, id)
	}

	return best, nil
}

// eccentricity runs a BFS from v confined to cluster id and returns the
// greatest distance reached, or Infinite if fewer than size members are
// reachable. Distances use a local map keyed by Coord; the queue is a
// plain slice consumed by index, matching the component scan discipline
// used throughout this library.
// Complexity: O(|S|).
func eccentricity(g *Grid, id int, v Coord, size int) int {
	dist := map[Coord]int{v: 0}
	queue := []Coord{v}
	far := 0
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		du := dist[u]
		if du > far {
			far = du
		}
		for _, d := range neighborOffsets {
			nr, nc := u.Row+d[0], u.Col+d[1]
			if !g.sameCluster(nr, nc, id) {
				continue
			}
			w := Coord{Row: nr, Col: nc}
			if _, seen := dist[w]; seen {
				continue
			}
			dist[w] = du + 1
			queue = append(queue, w)
		}
	}
	if len(dist) < size {
		return Infinite
	}

	return far
}
