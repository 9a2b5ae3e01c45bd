// Package batch defines jobs, summaries, options, and sentinel errors
// for batched engine passes.
package batch

import (
	"errors"
	"runtime"

	"go.uber.org/zap"

	"github.com/TheDaniel166/IsopGem-sub011/constellation"
	"github.com/TheDaniel166/IsopGem-sub011/cyclic"
)

// Sentinel errors for batch input validation.
var (
	// ErrNilGrid indicates a job without a grid.
	ErrNilGrid = errors.New("batch: job grid must be non-nil")
	// ErrDuplicateJob indicates two jobs sharing one name; names key the
	// summary, so collisions would silently drop results.
	ErrDuplicateJob = errors.New("batch: duplicate job name")
)

// Job names one constellation grid for seed location.
type Job struct {
	Name string
	Grid *constellation.Grid
}

// VerifyJob names one cyclic grid for symmetry verification.
type VerifyJob struct {
	Name string
	Grid *cyclic.Grid
}

// Summary aggregates a seed-location batch.
//
// Seeds holds each job's id→coordinate mapping. SeedCounts tallies how
// often each coordinate was chosen as a seed anywhere in the batch, and
// the Void/Unique/Common counters classify every coordinate of the
// batch's combined grid area by that tally (zero / one / more).
type Summary struct {
	Seeds      map[string]map[int]constellation.Coord
	SeedCounts map[constellation.Coord]int
	Void       int
	Unique     int
	Common     int
}

// VerifySummary collects per-grid reports of both symmetry passes.
// AllOK is true iff every report in both maps passed.
type VerifySummary struct {
	Symmetry      map[string]cyclic.Report
	ConverseDelta map[string]cyclic.Report
	AllOK         bool
}

// Option configures a batch run via functional arguments.
type Option func(*Options)

// Options holds tunable parameters shared by Run and Verify.
type Options struct {
	// Logger receives per-job Debug and batch-level Info events.
	Logger *zap.Logger
	// Concurrency bounds the number of simultaneous workers.
	Concurrency int
	// LocateOpts are forwarded to constellation.Locate for every job.
	LocateOpts []constellation.Option
}

// DefaultOptions returns a silent, CPU-width-parallel configuration.
func DefaultOptions() Options {
	return Options{
		Logger:      zap.NewNop(),
		Concurrency: runtime.NumCPU(),
	}
}

// WithLogger injects a zap logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithConcurrency bounds simultaneous workers; values < 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Concurrency = n
		}
	}
}

// WithLocateOptions forwards options (e.g. strict connectivity) to
// every job's Locate call.
func WithLocateOptions(opts ...constellation.Option) Option {
	return func(o *Options) {
		o.LocateOpts = append(o.LocateOpts, opts...)
	}
}
