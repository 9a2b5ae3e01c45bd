package ditrune

// Transform maps one Ditrune to another. The structural transforms of
// this package satisfy it directly (Ditrune.Conrune, Ditrune.Converse),
// as does any composition a caller builds from them.
type Transform func(Ditrune) Ditrune

// Orbit applies t repeatedly from start and returns the cycle it
// settles into, in first-visit order beginning at the first recurring
// value.
//
// Fixed points are detected before any iteration: if t(start) == start
// the orbit is exactly [start], length 1. This check is deliberate and
// load-bearing — a cycle-length test that only looks for "came back to
// where the walk began" conflates a fixed point with a 2-cycle, which
// mis-assigns the ditrune to an unrelated family.
//
// For non-injective transforms the walk may carry a tail before the
// cycle; the tail is not part of the orbit.
// Complexity: O(tail + cycle length).
func Orbit(start Ditrune, t Transform) ([]Ditrune, error) {
	if t == nil {
		return nil, ErrNilTransform
	}
	if t(start) == start {
		return []Ditrune{start}, nil
	}

	seen := make(map[Ditrune]int) // value → index in walk
	walk := []Ditrune{}
	cur := start
	for {
		if at, ok := seen[cur]; ok {
			return walk[at:], nil
		}
		seen[cur] = len(walk)
		walk = append(walk, cur)
		cur = t(cur)
	}
}

// Canonical returns the representative ("prime") of start's family: the
// lexicographically smallest member of its orbit under t. Fixed width
// makes lexicographic and numeric order coincide, so this is also the
// numerically smallest member.
func Canonical(start Ditrune, t Transform) (Ditrune, error) {
	orbit, err := Orbit(start, t)
	if err != nil {
		return "", err
	}
	min := orbit[0]
	for _, d := range orbit[1:] {
		if d < min {
			min = d
		}
	}

	return min, nil
}

// Families partitions all 729 ditrunes into equivalence classes under t,
// keyed by canonical representative. Each ditrune appears in exactly one
// family; members are listed in ascending order. A ditrune whose walk has
// a tail is grouped with the cycle its walk resolves to.
// Complexity: O(729 · max cycle length).
func Families(t Transform) (map[Ditrune][]Ditrune, error) {
	if t == nil {
		return nil, ErrNilTransform
	}
	fams := make(map[Ditrune][]Ditrune)
	for n := 0; n <= MaxDecimal; n++ {
		d, err := FromDecimal(n)
		if err != nil {
			return nil, err
		}
		rep, err := Canonical(d, t)
		if err != nil {
			return nil, err
		}
		fams[rep] = append(fams[rep], d)
	}
	// Ascending construction order keeps each member list sorted already.

	return fams, nil
}
