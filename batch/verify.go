package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TheDaniel166/IsopGem-sub011/cyclic"
)

// Verify runs both cyclic symmetry passes over every job in parallel and
// collects the per-grid reports. Verification findings are never errors
// (they are the point of the pass); only malformed batch input fails.
// Complexity: O(Σ N) across grids, divided across workers.
func Verify(ctx context.Context, jobs []VerifyJob, opts ...Option) (*VerifySummary, error) {
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

	sum := &VerifySummary{
		Symmetry:      make(map[string]cyclic.Report, len(jobs)),
		ConverseDelta: make(map[string]cyclic.Report, len(jobs)),
		AllOK:         true,
	}
	var mu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Concurrency)
	for _, job := range jobs {
		job := job
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			start := time.Now()
			sym := job.Grid.VerifyReflectiveSymmetry()
			delta := job.Grid.VerifyConverseDelta()
			o.Logger.Debug("verification finished",
				zap.String("job", job.Name),
				zap.Bool("symmetry_ok", sym.OK),
				zap.Bool("delta_ok", delta.OK),
				zap.Duration("took", time.Since(start)),
			)
			mu.Lock()
			sum.Symmetry[job.Name] = sym
			sum.ConverseDelta[job.Name] = delta
			sum.AllOK = sum.AllOK && sym.OK && delta.OK
			mu.Unlock()

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	o.Logger.Info("verification batch complete",
		zap.Int("jobs", len(jobs)),
		zap.Bool("all_ok", sum.AllOK),
	)

	return sum, nil
}
