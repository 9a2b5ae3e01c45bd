// Package constellation locates the canonical "seed" cell of each
// labeled cell-cluster on a coordinate grid.
//
// What:
//
//   - Grid wraps a rectangular table of integer cluster ids (negative =
//     unassigned) and precomputes each cluster's member cells.
//   - Locate maps every non-empty cluster id to its graph-center cell:
//     the member with minimum BFS eccentricity under 4-directional
//     orthogonal adjacency restricted to the cluster, ties broken by
//     ascending (row, col).
//   - Eccentricities exposes the per-cell eccentricity table so driver
//     analyses can cross-check the engine.
//
// Why:
//
//   - Dozens of independent analyses need one deterministic
//     representative per irregular cluster; downstream statistics are
//     regression-tested against this exact center-plus-tie-break rule,
//     so the ordering discipline here is contract, not preference.
//
// Determinism:
//
//   - Member lists are held in row-major order and candidate scanning
//     follows that order, so the (row, col) tie-break needs no sort and
//     cannot drift with map iteration. Running Locate twice on the same
//     grid always yields identical results.
//
// Connectivity:
//
//   - A cluster split into several components still resolves: cells
//     that cannot reach each other sit at Infinite distance, every
//     member's eccentricity becomes Infinite, and the tie-break alone
//     picks the seed. WithStrictConnectivity upgrades that situation to
//     ErrClusterDisconnected instead.
//
// Complexity:
//
//   - Locate: O(Σ |S|²) over clusters S (one BFS per member);
//     cluster sizes are small by construction, so this is milliseconds.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed construction input.
//   - ErrUnknownCluster: Eccentricities asked about an absent id.
//   - ErrClusterDisconnected: strict mode only.
package constellation
