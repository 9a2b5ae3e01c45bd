package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TheDaniel166/IsopGem-sub011/constellation"
)

// Run locates seeds for every job in parallel and aggregates coordinate
// statistics across the batch. Jobs are validated up front (ErrNilGrid,
// ErrDuplicateJob) so no worker starts on a malformed batch; the first
// Locate failure cancels the remaining jobs and is returned wrapped with
// its job name. The summary is a pure function of the jobs — worker
// scheduling cannot affect it.
// Complexity: Σ per-job Locate cost, divided across workers.
func Run(ctx context.Context, jobs []Job, opts ...Option) (*Summary, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	names := make(map[string]bool, len(jobs))
	for _, job := range jobs {
		if job.Grid == nil {
			return nil, fmt.Errorf("%w: job %q", ErrNilGrid, job.Name)
		}
		if names[job.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateJob, job.Name)
		}
		names[job.Name] = true
	}

	var (
		mu    sync.Mutex
		seeds = make(map[string]map[int]constellation.Coord, len(jobs))
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Concurrency)
	for _, job := range jobs {
		job := job
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			start := time.Now()
			m, err := constellation.Locate(job.Grid, o.LocateOpts...)
			if err != nil {
				return fmt.Errorf("batch: job %q: %w", job.Name, err)
			}
			o.Logger.Debug("seed location finished",
				zap.String("job", job.Name),
				zap.Int("clusters", len(m)),
				zap.Duration("took", time.Since(start)),
			)
			mu.Lock()
			seeds[job.Name] = m
			mu.Unlock()

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sum := summarize(jobs, seeds)
	o.Logger.Info("batch complete",
		zap.Int("jobs", len(jobs)),
		zap.Int("void", sum.Void),
		zap.Int("unique", sum.Unique),
		zap.Int("common", sum.Common),
	)

	return sum, nil
}

// summarize tallies seed occurrences per coordinate and classifies the
// batch's combined grid area. The coordinate universe is the union of
// every job grid's rectangle, so differently shaped grids contribute
// only the cells they actually have.
func summarize(jobs []Job, seeds map[string]map[int]constellation.Coord) *Summary {
	universe := make(map[constellation.Coord]bool)
	for _, job := range jobs {
		for r := 0; r < job.Grid.Rows(); r++ {
			for c := 0; c < job.Grid.Cols(); c++ {
				universe[constellation.Coord{Row: r, Col: c}] = true
			}
		}
	}

	counts := make(map[constellation.Coord]int)
	for _, m := range seeds {
		for _, coord := range m {
			counts[coord]++
		}
	}

	sum := &Summary{
		Seeds:      seeds,
		SeedCounts: counts,
		Void:       len(universe) - len(counts),
	}
	for _, n := range counts {
		if n == 1 {
			sum.Unique++
		} else {
			sum.Common++
		}
	}

	return sum
}
