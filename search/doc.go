// Package search drives a tour towards a simple polygon by repeatedly
// applying 2-opt uncrossing moves produced by package cross.
//
// Two engines share the same neighborhood (one candidate per crossing):
//
//	HillClimb  four interchangeable selection policies (Strategy):
//	           BestImprovement    adopt the shortest neighbor if strictly shorter
//	           FirstCandidate     adopt the first neighbor unconditionally
//	           LeastIntersections steepest descent on the crossing count
//	           RandomNeighbor     adopt a uniformly drawn neighbor unconditionally
//	Anneal     temperature-scheduled random walk (T₀=500, ×0.95 per round,
//	           n·(n−1) steps per round, while T > 2.56) with AcceptMetropolis
//	           (default) or AcceptAlways acceptance
//
// Every run ends as soon as the current tour has no crossings (StopSimple).
// Other stop reasons are reported in the result rather than as errors:
// StopLocalOptimum, StopStalled (best-improvement cannot make progress),
// StopMaxRounds/StopMaxSteps (caller caps) and StopCooled (annealing).
//
// Determinism:
//   - One *rand.Rand stream per run, injected via Options.Rand or derived from
//     Options.Seed (seed==0 ⇒ fixed default seed). Same seed ⇒ same result.
//
// Design:
//   - Tours are immutable values; each round produces a new tour.
//   - Strict sentinel errors (errors.go); no logging. Progress is observable
//     through the OnRound callback.
//
// Complexity: one round costs O(n²) for detection plus O(k·n) for k neighbors;
// LeastIntersections adds O(k·n²) to score every neighbor.
package search
