package ditrune_test

import (
	"errors"
	"testing"

	"github.com/TheDaniel166/IsopGem-sub011/ditrune"
)

//----------------------------------------------------------------------------//
// Parse / FromDecimal Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies rejection of every malformed shape.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"TooShort", "12121"},
		{"TooLong", "1212121"},
		{"Empty", ""},
		{"BadDigit", "12a212"},
		{"Signed", "-12121"},
		{"Decimal3", "123123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ditrune.Parse(tc.in); !errors.Is(err, ditrune.ErrMalformedDitrune) {
				t.Errorf("Parse(%q) error = %v; want ErrMalformedDitrune", tc.in, err)
			}
		})
	}
}

// TestFromDecimal_Range checks both bounds and the padding of small values.
func TestFromDecimal_Range(t *testing.T) {
	d, err := ditrune.FromDecimal(0)
	if err != nil {
		t.Fatalf("FromDecimal(0) error: %v", err)
	}
	if d.String() != "000000" {
		t.Errorf("FromDecimal(0) = %q; want \"000000\"", d)
	}

	d, err = ditrune.FromDecimal(ditrune.MaxDecimal)
	if err != nil {
		t.Fatalf("FromDecimal(728) error: %v", err)
	}
	if d.String() != "222222" {
		t.Errorf("FromDecimal(728) = %q; want \"222222\"", d)
	}

	for _, n := range []int{-1, ditrune.MaxDecimal + 1} {
		if _, err = ditrune.FromDecimal(n); !errors.Is(err, ditrune.ErrDecimalRange) {
			t.Errorf("FromDecimal(%d) error = %v; want ErrDecimalRange", n, err)
		}
	}
}

// TestDecimal_RoundTrip checks FromDecimal/Decimal identity over the full domain.
func TestDecimal_RoundTrip(t *testing.T) {
	for n := 0; n <= ditrune.MaxDecimal; n++ {
		d, err := ditrune.FromDecimal(n)
		if err != nil {
			t.Fatalf("FromDecimal(%d) error: %v", n, err)
		}
		if d.Decimal() != n {
			t.Fatalf("FromDecimal(%d).Decimal() = %d", n, d.Decimal())
		}
	}
}

//----------------------------------------------------------------------------//
// Trigram Tests
//----------------------------------------------------------------------------//

// TestTrigrams_Split pins the concrete split from the flagship worked example.
func TestTrigrams_Split(t *testing.T) {
	d, err := ditrune.Parse("121212")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	upper, lower := d.Trigrams()
	if upper.String() != "121" || lower.String() != "212" {
		t.Errorf("Trigrams() = (%q, %q); want (\"121\", \"212\")", upper, lower)
	}
	if upper.Decimal() != 16 || lower.Decimal() != 23 {
		t.Errorf("trigram decimals = (%d, %d); want (16, 23)", upper.Decimal(), lower.Decimal())
	}
}

// TestTrigrams_PositionalInvariant checks decimal = 27·upper + lower exhaustively.
func TestTrigrams_PositionalInvariant(t *testing.T) {
	for n := 0; n <= ditrune.MaxDecimal; n++ {
		d, _ := ditrune.FromDecimal(n)
		upper, lower := d.Trigrams()
		if got := 27*upper.Decimal() + lower.Decimal(); got != n {
			t.Fatalf("27·%d + %d = %d; want %d (ditrune %s)",
				upper.Decimal(), lower.Decimal(), got, n, d)
		}
	}
}
