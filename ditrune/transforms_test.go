package ditrune_test

import (
	"errors"
	"testing"

	"github.com/TheDaniel166/IsopGem-sub011/ditrune"
)

//----------------------------------------------------------------------------//
// Conrune Tests
//----------------------------------------------------------------------------//

// TestConrune_String covers the free-width string form, sign pass-through,
// and invalid-digit rejection.
func TestConrune_String(t *testing.T) {
	cases := []struct{ in, want string }{
		{"012", "021"},
		{"-012", "-021"},
		{"000000", "000000"},
		{"121212", "212121"},
		{"", ""},
	}
	for _, tc := range cases {
		got, err := ditrune.Conrune(tc.in)
		if err != nil {
			t.Fatalf("Conrune(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Conrune(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
	if _, err := ditrune.Conrune("01x"); !errors.Is(err, ditrune.ErrMalformedDitrune) {
		t.Errorf("Conrune(\"01x\") error = %v; want ErrMalformedDitrune", err)
	}
}

// TestConrune_Involution checks conrune∘conrune = identity over all 729 ditrunes.
func TestConrune_Involution(t *testing.T) {
	for n := 0; n <= ditrune.MaxDecimal; n++ {
		d, _ := ditrune.FromDecimal(n)
		if got := d.Conrune().Conrune(); got != d {
			t.Fatalf("Conrune involution broken at %s: got %s", d, got)
		}
	}
}

//----------------------------------------------------------------------------//
// Converse Tests
//----------------------------------------------------------------------------//

// TestConverse_Swap pins the positional swap on a concrete ditrune.
func TestConverse_Swap(t *testing.T) {
	d, _ := ditrune.Parse("121212")
	if got := d.Converse(); got.String() != "212121" {
		t.Errorf("Converse(121212) = %s; want 212121", got)
	}
}

// TestConverse_Involution checks converse∘converse = identity over all 729 ditrunes.
func TestConverse_Involution(t *testing.T) {
	for n := 0; n <= ditrune.MaxDecimal; n++ {
		d, _ := ditrune.FromDecimal(n)
		if got := d.Converse().Converse(); got != d {
			t.Fatalf("Converse involution broken at %s: got %s", d, got)
		}
	}
}

//----------------------------------------------------------------------------//
// Converse-Delta Tests
//----------------------------------------------------------------------------//

// TestConverseDelta_WorkedExample pins the documented concrete case:
// 121212 ↔ 212121, |455−637| = 182 = 26·|16−23|.
func TestConverseDelta_WorkedExample(t *testing.T) {
	d, _ := ditrune.Parse("121212")
	if d.Decimal() != 455 {
		t.Fatalf("decimal(121212) = %d; want 455", d.Decimal())
	}
	if conv := d.Converse(); conv.Decimal() != 637 {
		t.Fatalf("decimal(212121) = %d; want 637", conv.Decimal())
	}
	if got := d.ConverseDelta(); got != 182 {
		t.Errorf("ConverseDelta(121212) = %d; want 182", got)
	}
}

// TestConverseDelta_Identity checks the algebraic identity
// |d − converse(d)| == 26·|upper − lower| for every ditrune.
func TestConverseDelta_Identity(t *testing.T) {
	for n := 0; n <= ditrune.MaxDecimal; n++ {
		d, _ := ditrune.FromDecimal(n)
		upper, lower := d.Trigrams()
		diff := upper.Decimal() - lower.Decimal()
		if diff < 0 {
			diff = -diff
		}
		if got := d.ConverseDelta(); got != 26*diff {
			t.Fatalf("identity broken at %s: delta %d, 26·|u−l| %d", d, got, 26*diff)
		}
	}
}
