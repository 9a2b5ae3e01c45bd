// Package batch fans engine passes out across many independent grids.
//
// What:
//
//   - Run locates seeds for a batch of constellation grids, one worker
//     per job, and aggregates coordinate statistics: how many grid
//     coordinates are never a seed (void), exactly once (unique), or
//     more than once (common) across the whole batch.
//   - Verify runs both cyclic-grid symmetry checks over a batch of
//     cyclic grids and collects the per-grid reports.
//
// Why:
//
//   - Grids never share state, so batching is embarrassingly parallel:
//     workers need zero coordination beyond the final mutex-guarded
//     aggregation. Results are keyed by job name and coordinate, so the
//     summary is identical regardless of scheduling order.
//
// Concurrency:
//
//   - golang.org/x/sync/errgroup with a configurable limit
//     (WithConcurrency, default runtime.NumCPU). The context cancels
//     remaining jobs on the first failure.
//
// Logging:
//
//   - go.uber.org/zap, injected via WithLogger; per-job detail at Debug,
//     batch totals at Info. Default is zap.NewNop() — the engine stays
//     silent unless a caller asks otherwise.
//
// Errors:
//
//   - ErrNilGrid, ErrDuplicateJob: malformed batch input, detected
//     before any worker starts.
//   - Locate failures (strict-mode disconnection) propagate wrapped
//     with the failing job's name.
package batch
