// Package cyclic defines the Grid and Report types and the sentinel
// errors for cyclic-grid construction.
package cyclic

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("cyclic: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("cyclic: all rows must have the same length")
	// ErrNotCoprime indicates gcd(rows, cols) ≠ 1, breaking the single-sweep
	// property of the cyclic index.
	ErrNotCoprime = errors.New("cyclic: row and column counts must be coprime")
)

// Mismatch records one failing check: the cyclic index where it occurred
// and the expected versus actual values, both rendered as strings so the
// same record shape serves ternary and numeric comparisons.
type Mismatch struct {
	Index    int
	Expected string
	Actual   string
}

// Report is the outcome of one verification pass: OK is true iff
// Mismatches is empty. Reports are pure values; running the same check
// on the same grid twice yields identical reports.
type Report struct {
	OK         bool
	Mismatches []Mismatch
}

// report wraps a mismatch list into a Report with the OK flag derived.
func report(mismatches []Mismatch) Report {
	return Report{OK: len(mismatches) == 0, Mismatches: mismatches}
}
