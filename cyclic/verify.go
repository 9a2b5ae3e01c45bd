package cyclic

import "strconv"

// VerifyReflectiveSymmetry checks the grid-wide reflective Conrune
// invariant: for every k in [1, ⌊N/2⌋],
//
//	conrune(cell(k)) == cell(N+1−k).
//
// The return is a Report, never an error: a violated pairing is a
// finding about the grid's content, exactly what this pass exists to
// discover. Mismatches are listed in ascending k with the conrune of
// cell(k) as Expected and cell(N+1−k) as Actual.
// Complexity: O(N).
func (g *Grid) VerifyReflectiveSymmetry() Report {
	n := g.Size()
	var mismatches []Mismatch
	for k := 1; k <= n/2; k++ {
		expected := g.Cell(k).Conrune()
		actual := g.Cell(n + 1 - k)
		if expected != actual {
			mismatches = append(mismatches, Mismatch{
				Index:    k,
				Expected: expected.String(),
				Actual:   actual.String(),
			})
		}
	}

	return report(mismatches)
}

// VerifyConverseDelta checks the Converse-Delta identity
//
//	|decimal(x) − decimal(converse(x))| == 26·|upper(x) − lower(x)|
//
// for every cell, sweeping the cyclic index so each cell is visited
// exactly once. Expected carries the trigram side of the identity,
// Actual the positional delta, both rendered in decimal.
// Complexity: O(N).
func (g *Grid) VerifyConverseDelta() Report {
	n := g.Size()
	var mismatches []Mismatch
	for k := 1; k <= n; k++ {
		d := g.Cell(k)
		upper, lower := d.Trigrams()
		diff := upper.Decimal() - lower.Decimal()
		if diff < 0 {
			diff = -diff
		}
		expected := 26 * diff
		actual := d.ConverseDelta()
		if expected != actual {
			mismatches = append(mismatches, Mismatch{
				Index:    k,
				Expected: strconv.Itoa(expected),
				Actual:   strconv.Itoa(actual),
			})
		}
	}

	return report(mismatches)
}
