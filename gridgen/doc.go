// Package gridgen produces random obstacle maps and samples distinct free
// cells from them, the inputs a delivery simulation feeds to astar and route.
//
// What:
//
//   - Random builds a Height×Width grid.Grid where each cell is independently
//     Blocked with probability Density (default 15×15 at 0.3).
//   - SampleFree picks mutually distinct Free cells, e.g. courier start,
//     package pickup and destination.
//
// Determinism:
//
//   - All randomness flows through a *rand.Rand. Seed 0 maps to a fixed
//     default seed, so calls without WithSeed/WithRand are reproducible.
//   - Cells are drawn in row-major order; the same seed yields the same map.
//
// Concurrency:
//
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
//
// Errors:
//
//   - ErrBadSize:       Height or Width < 1.
//   - ErrBadDensity:    Density outside [0,1].
//   - ErrNeedRand:      SampleFree called with a nil *rand.Rand.
//   - ErrNotEnoughFree: fewer Free cells than requested samples.
package gridgen
