// Package cyclic verifies global symmetry invariants over a cyclic grid
// of ditrunes.
//
// What:
//
//   - Grid wraps an R×C table of ditrunes whose row and column counts
//     are coprime, so the 1-based cyclic index
//     cell(k) = grid[(k−1) mod R][(k−1) mod C] visits every cell exactly
//     once in a single sweep over k ∈ [1, R·C].
//   - VerifyReflectiveSymmetry checks conrune(cell(k)) == cell(N+1−k)
//     for every index pair across the half-sweep.
//   - VerifyConverseDelta checks the Converse-Delta identity for every
//     cell.
//
// Why:
//
//   - Mismatches are findings about externally supplied data, not
//     programming faults. Both checks therefore return a Report listing
//     every failing index rather than erroring out; only malformed
//     construction input (ragged rows, out-of-range values, non-coprime
//     shape) is an error.
//
// Complexity:
//
//   - Construction and both verification passes: O(R·C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNotCoprime: gcd(R, C) ≠ 1, which would make the cyclic index
//     skip and repeat cells.
package cyclic
