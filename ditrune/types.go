// Package ditrune defines the Ditrune and Trigram value types and the
// sentinel errors shared by the package.
package ditrune

import (
	"errors"
	"fmt"

	"github.com/TheDaniel166/IsopGem-sub011/ternary"
)

// Structural constants of the ditrune numeral.
const (
	// Width is the canonical digit width of a Ditrune.
	Width = 6
	// TrigramWidth is the digit width of either trigram half.
	TrigramWidth = 3
	// MaxDecimal is the largest decimal value a Ditrune can hold (3⁶−1).
	MaxDecimal = 728
	// MaxTrigram is the largest decimal value a Trigram can hold (3³−1).
	MaxTrigram = 26
)

// Sentinel errors for ditrune construction and orbit resolution.
var (
	// ErrMalformedDitrune indicates a string that is not exactly 6 ternary digits.
	ErrMalformedDitrune = errors.New("ditrune: value must be exactly 6 ternary digits")
	// ErrDecimalRange indicates a decimal value outside [0, 728].
	ErrDecimalRange = errors.New("ditrune: decimal value outside [0, 728]")
	// ErrNilTransform indicates orbit resolution was invoked without a transform.
	ErrNilTransform = errors.New("ditrune: transform must be non-nil")
)

// Ditrune is a 6-digit base-3 numeral, most-significant digit first.
// Values are produced only by Parse or FromDecimal and are immutable;
// the zero value "" is not a valid Ditrune. Because the width is fixed,
// lexicographic order on Ditrune coincides with numeric order.
type Ditrune string

// Trigram is a 3-digit base-3 numeral: either half of a Ditrune.
type Trigram string

// Parse validates s as exactly Width ternary digits and returns it as a
// Ditrune. Returns ErrMalformedDitrune for any other input, including
// signed or padded-but-overwide forms.
func Parse(s string) (Ditrune, error) {
	if len(s) != Width {
		return "", fmt.Errorf("%w: got %d characters in %q", ErrMalformedDitrune, len(s), s)
	}
	for i := 0; i < Width; i++ {
		if s[i] < '0' || s[i] > '2' {
			return "", fmt.Errorf("%w: %q at position %d", ErrMalformedDitrune, s[i], i)
		}
	}

	return Ditrune(s), nil
}

// FromDecimal converts an integer in [0, MaxDecimal] to its zero-padded
// 6-digit Ditrune form. Returns ErrDecimalRange outside that interval.
func FromDecimal(n int) (Ditrune, error) {
	if n < 0 || n > MaxDecimal {
		return "", fmt.Errorf("%w: %d", ErrDecimalRange, n)
	}
	s, err := ternary.PadLeft(ternary.DecimalToTernary(int64(n)), Width)
	if err != nil {
		// Unreachable for in-range n; surfaced rather than swallowed.
		return "", err
	}

	return Ditrune(s), nil
}

// String returns the 6-digit ternary form.
func (d Ditrune) String() string { return string(d) }

// Decimal returns the integer value in [0, MaxDecimal].
func (d Ditrune) Decimal() int {
	v, _ := ternary.TernaryToDecimal(string(d)) // d is constructor-validated
	return int(v)
}

// Trigrams splits d into its upper (first 3 digits) and lower (last 3
// digits) halves. The positional invariant holds for every Ditrune:
// d.Decimal() == 27*upper.Decimal() + lower.Decimal().
func (d Ditrune) Trigrams() (upper, lower Trigram) {
	return Trigram(d[:TrigramWidth]), Trigram(d[TrigramWidth:])
}

// String returns the 3-digit ternary form.
func (t Trigram) String() string { return string(t) }

// Decimal returns the integer value in [0, MaxTrigram].
func (t Trigram) Decimal() int {
	v, _ := ternary.TernaryToDecimal(string(t))
	return int(v)
}
