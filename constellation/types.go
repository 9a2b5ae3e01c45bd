// Package constellation defines coordinate types, options, and sentinel
// errors for cluster seed location.
package constellation

import (
	"errors"
	"fmt"
	"math"
)

// Unassigned is the conventional cluster id of cells that belong to no
// cluster. Any negative id is treated the same way.
const Unassigned = -1

// Infinite is the sentinel eccentricity/distance of a cell that cannot
// reach every other member of its cluster.
const Infinite = math.MaxInt

// Sentinel errors for grid construction and seed location.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("constellation: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("constellation: all rows must have the same length")
	// ErrUnknownCluster indicates a cluster id absent from the grid.
	ErrUnknownCluster = errors.New("constellation: no such cluster id")
	// ErrClusterDisconnected indicates a cluster that is not a single
	// connected component; raised in strict mode only.
	ErrClusterDisconnected = errors.New("constellation: cluster is not a single connected component")
)

// Coord addresses one grid cell. Ordering for every tie-break in this
// package is ascending (Row, Col).
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Option configures seed location via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for Locate.
type Options struct {
	// Strict makes Locate fail with ErrClusterDisconnected when a
	// cluster's member set is not one connected component. The default
	// tolerates fragmentation and resolves it deterministically.
	Strict bool
}

// DefaultOptions returns the permissive defaults: fragmented clusters
// resolve by tie-break rather than erroring.
func DefaultOptions() Options {
	return Options{Strict: false}
}

// WithStrictConnectivity makes fragmented clusters an error instead of
// a degenerate-but-deterministic result.
func WithStrictConnectivity() Option {
	return func(o *Options) { o.Strict = true }
}
