package ditrune

import "fmt"

// Conrune applies the digit-wise involution 0→0, 1→2, 2→1 to a ternary
// string of any width. A single leading '-' passes through unchanged;
// the magnitude length is never altered. Self-inverse:
// Conrune(Conrune(s)) == s for every valid s.
// Complexity: O(len(s)).
func Conrune(s string) (string, error) {
	buf := []byte(s)
	start := 0
	if len(buf) > 0 && buf[0] == '-' {
		start = 1
	}
	for i := start; i < len(buf); i++ {
		switch buf[i] {
		case '0':
			// fixed digit
		case '1':
			buf[i] = '2'
		case '2':
			buf[i] = '1'
		default:
			return "", fmt.Errorf("%w: %q at position %d", ErrMalformedDitrune, buf[i], i)
		}
	}

	return string(buf), nil
}

// Conrune returns the digit-wise involution of d. Fixed width in,
// fixed width out; no error path because d is constructor-validated.
func (d Ditrune) Conrune() Ditrune {
	buf := []byte(d)
	for i := range buf {
		switch buf[i] {
		case '1':
			buf[i] = '2'
		case '2':
			buf[i] = '1'
		}
	}

	return Ditrune(buf)
}

// Converse swaps the upper and lower trigram halves: "121212" → "212121".
// A pure positional swap with no digit substitution. Self-inverse.
func (d Ditrune) Converse() Ditrune {
	return Ditrune(string(d[TrigramWidth:]) + string(d[:TrigramWidth]))
}

// ConverseDelta returns |d.Decimal() − d.Converse().Decimal()|.
//
// The positional-value formula forces the exact identity
//
//	ConverseDelta(d) == 26 · |upper(d) − lower(d)|
//
// for all 729 ditrunes: decimal(d) = 27u+l and decimal(converse(d)) =
// 27l+u, so the difference is 26(u−l). Consumers computing converse
// deltas across a grid rely on this holding bit-exactly.
func (d Ditrune) ConverseDelta() int {
	delta := d.Decimal() - d.Converse().Decimal()
	if delta < 0 {
		delta = -delta
	}

	return delta
}
