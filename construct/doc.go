// Package construct builds starting tours and point sets for the search
// engines.
//
// What:
//   - NearestNeighbor: greedy closest-next-point tour from a start index.
//   - RandomPoints: n distinct lattice points in [-bound, bound]².
//   - Shuffle / ShufflePoints: uniform random permutation (Fisher–Yates).
//   - RandomIndex: uniform start index for NearestNeighbor.
//
// Determinism:
//   - Every random helper takes an explicit *rand.Rand. A nil stream falls back
//     to a fixed default seed, never to the wall clock.
//
// Contracts:
//   - Inputs are never mutated except by ShufflePoints, which shuffles in place.
//   - NearestNeighbor preserves the input multiset: repeated points appear as
//     many times in the output as in the input.
package construct
