// Package ternary implements a signed base-3 numeral codec.
//
// What:
//
//   - DecimalToTernary / TernaryToDecimal convert between integers and
//     minimal-length base-3 digit strings (most-significant digit first,
//     optional leading '-').
//   - ReverseMagnitude and ReverseToken are two distinct digit-reversal
//     operations: the first reverses only the magnitude and keeps the sign
//     leading, the second reverses the whole token verbatim.
//   - PadLeft zero-pads a non-negative magnitude to a fixed width, as
//     required by fixed-width consumers (ditrune, cyclic).
//
// Why:
//
//   - Base-3 numerals are the atomic representation for every symbolic
//     analysis in this library; all downstream symmetry checks assume the
//     codec is exact. Malformed digits are therefore rejected loudly
//     (ErrInvalidDigit), never coerced.
//
// Complexity:
//
//	All operations are O(len(s)) time and memory.
//
// Errors:
//
//   - ErrInvalidDigit: a character outside {'0','1','2'} (ignoring an
//     optional leading '-').
//   - ErrWidthExceeded: PadLeft called with a magnitude wider than the
//     requested width.
package ternary
