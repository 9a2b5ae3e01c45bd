// Package ditrune implements the 6-digit ternary numeral ("ditrune")
// and its structural symmetry transforms.
//
// What:
//
//   - Ditrune: a validated fixed-width base-3 numeral in [0, 728],
//     decomposing into an upper and a lower Trigram (3 digits each) with
//     decimal = 27·upper + lower.
//   - Conrune: the digit-wise involution 0→0, 1→2, 2→1.
//   - Converse: the positional swap of the two trigram halves.
//   - ConverseDelta: |decimal(x) − decimal(converse(x))|, which equals
//     26·|upper − lower| for every ditrune (the Converse-Delta identity).
//   - Orbit / Canonical / Families: equivalence-class resolution of all
//     729 ditrunes under a caller-supplied Transform, with explicit
//     fixed-point (orbit length 1) handling.
//
// Why:
//
//   - Every grid-level symmetry check in this library reduces to these
//     transforms holding bit-exactly; the package is the algebraic ground
//     truth the verifiers are cross-checked against.
//
// Complexity:
//
//   - All single-ditrune operations: O(1) (fixed width 6).
//   - Orbit: O(cycle length); Families: O(729 · max cycle length).
//
// Errors:
//
//   - ErrMalformedDitrune: input is not exactly 6 ternary digits.
//   - ErrDecimalRange: decimal value outside [0, 728].
//   - ErrNilTransform: orbit resolution invoked without a transform.
package ditrune
