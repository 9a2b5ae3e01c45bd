// Package ternary converts between signed decimal integers and base-3
// digit strings. See doc.go for the package overview.
package ternary

import (
	"errors"
	"fmt"
	"strings"
)

// base is the fixed radix of every codec operation in this package.
const base = 3

// Sentinel errors for codec operations.
var (
	// ErrInvalidDigit indicates a character outside {'0','1','2'}
	// (ignoring an optional leading '-').
	ErrInvalidDigit = errors.New("ternary: digit outside {0,1,2}")

	// ErrWidthExceeded indicates a magnitude wider than the padding width.
	ErrWidthExceeded = errors.New("ternary: magnitude wider than requested width")
)

// DecimalToTernary returns the minimal-length base-3 digits of |n|,
// most-significant digit first, prefixed with '-' when n is negative.
// Zero encodes as "0". No width padding is applied; use PadLeft for
// fixed-width forms.
// Complexity: O(log₃ n).
func DecimalToTernary(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	m := n
	if neg {
		m = -m
	}
	// Collect least-significant digits first, then reverse in place.
	buf := make([]byte, 0, 40)
	for m > 0 {
		buf = append(buf, byte('0'+m%base))
		m /= base
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	if neg {
		return "-" + string(buf)
	}

	return string(buf)
}

// TernaryToDecimal parses a base-3 digit string into an integer.
// An optional leading '-' is honored; every remaining character must be
// '0', '1' or '2', else ErrInvalidDigit is returned. The empty digit
// payload (after any sign) parses as 0.
// Complexity: O(len(s)).
func TernaryToDecimal(s string) (int64, error) {
	payload, neg := splitSign(s)
	var v int64
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if c < '0' || c > '2' {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, c, i)
		}
		v = v*base + int64(c-'0')
	}
	if neg {
		v = -v
	}

	return v, nil
}

// ReverseMagnitude reverses the digit payload of s while keeping a
// leading sign character (if present) in place: "-120" → "-021".
// Digits are validated; ErrInvalidDigit is returned for anything
// outside {'0','1','2'} after the sign.
// Complexity: O(len(s)).
func ReverseMagnitude(s string) (string, error) {
	payload, neg := splitSign(s)
	buf := make([]byte, len(payload))
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if c < '0' || c > '2' {
			return "", fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, c, i)
		}
		buf[len(payload)-1-i] = c
	}
	if neg {
		return "-" + string(buf), nil
	}

	return string(buf), nil
}

// ReverseToken reverses the whole token verbatim, sign character
// included: "-120" → "021-". It performs no validation; it is the
// positional counterpart of ReverseMagnitude for callers that treat the
// token as an opaque glyph sequence.
// Complexity: O(len(s)).
func ReverseToken(s string) string {
	buf := []byte(s)
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// PadLeft zero-pads a non-negative ternary magnitude to exactly width
// digits. A leading '-' is not a digit and yields ErrInvalidDigit; a
// magnitude longer than width yields ErrWidthExceeded.
// Complexity: O(width).
func PadLeft(s string, width int) (string, error) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '2' {
			return "", fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, c, i)
		}
	}
	if len(s) > width {
		return "", fmt.Errorf("%w: %q does not fit in %d digits", ErrWidthExceeded, s, width)
	}

	return strings.Repeat("0", width-len(s)) + s, nil
}

// splitSign strips one optional leading '-' and reports whether it was
// present.
func splitSign(s string) (payload string, neg bool) {
	if strings.HasPrefix(s, "-") {
		return s[1:], true
	}

	return s, false
}
