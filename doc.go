// Package isopgem is a ternary symbolic algebra and grid/graph analysis
// engine: the exact-arithmetic core shared by a family of independent
// analysis routines.
//
// What's inside:
//
//	ternary/       — signed base-3 codec with two documented reversal semantics
//	ditrune/       — 6-digit ditrunes, trigram split, Conrune & Converse
//	                 involutions, the Converse-Delta identity, family orbits
//	cyclic/        — coprime cyclic grids with grid-wide reflective-symmetry
//	                 and converse-delta verification reports
//	constellation/ — graph-center "seed" location per cell-cluster via BFS
//	                 eccentricity with a mandatory (row, col) tie-break
//	batch/         — parallel fan-out over many grids plus seed statistics
//
// Design rules that hold everywhere:
//
//   - Inputs are plain nested integer slices; grids are deep-copied and
//     immutable; every result is a plain value.
//   - Malformed data errors loudly at the boundary (sentinel errors);
//     symmetry violations are report content, never errors.
//   - Every operation is deterministic: no randomness, no map-order
//     dependence, no hidden state. Batch layers may parallelize freely
//     because grids never share data.
//
// Quick taste:
//
//	d, _ := ditrune.Parse("121212")
//	fmt.Println(d.Decimal(), d.Converse(), d.ConverseDelta()) // 455 212121 182
package isopgem
