package search

import (
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/uncross/tour"
)

// Strategy selects the hill-climbing policy. ParseStrategy also accepts the
// 1-based menu numbers in declaration order.
type Strategy int

const (
	// BestImprovement adopts the shortest neighbor when strictly shorter.
	BestImprovement Strategy = iota
	// FirstCandidate adopts the first neighbor unconditionally.
	FirstCandidate
	// LeastIntersections adopts the neighbor with strictly fewer crossings.
	LeastIntersections
	// RandomNeighbor adopts a uniformly drawn neighbor unconditionally.
	RandomNeighbor
)

var strategyNames = [...]string{
	BestImprovement:    "best",
	FirstCandidate:     "first",
	LeastIntersections: "least",
	RandomNeighbor:     "random",
}

// String returns the short CLI name of the strategy.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "unknown"
	}
	return strategyNames[s]
}

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	return s >= BestImprovement && s <= RandomNeighbor
}

// ParseStrategy accepts short names ("best", "first", "least", "random"),
// long names ("best-improvement", "first-candidate", "least-intersections",
// "random-neighbor") and menu numbers ("1".."4"). Case-insensitive.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "best", "best-improvement", "1":
		return BestImprovement, nil
	case "first", "first-candidate", "first-improvement", "2":
		return FirstCandidate, nil
	case "least", "least-intersections", "3":
		return LeastIntersections, nil
	case "random", "random-neighbor", "random-neighbour", "4":
		return RandomNeighbor, nil
	}
	return 0, ErrUnknownStrategy
}

// StopReason tells why an engine returned.
type StopReason int

const (
	// StopSimple: the tour has no crossings left.
	StopSimple StopReason = iota
	// StopLocalOptimum: no neighbor has strictly fewer crossings.
	StopLocalOptimum
	// StopStalled: best-improvement found no strictly shorter neighbor, so the
	// state could never change again.
	StopStalled
	// StopMaxRounds: Options.MaxRounds was reached.
	StopMaxRounds
	// StopCooled: annealing temperature fell to MinTemp.
	StopCooled
	// StopMaxSteps: AnnealOptions.MaxSteps was reached.
	StopMaxSteps
	// StopTimeLimit: the soft wall-clock budget ran out (paired with ErrTimeLimit).
	StopTimeLimit
)

var stopNames = [...]string{
	StopSimple:       "simple",
	StopLocalOptimum: "local-optimum",
	StopStalled:      "stalled",
	StopMaxRounds:    "max-rounds",
	StopCooled:       "cooled",
	StopMaxSteps:     "max-steps",
	StopTimeLimit:    "time-limit",
}

// String returns a stable, log-friendly name.
func (r StopReason) String() string {
	if r < 0 || int(r) >= len(stopNames) {
		return "unknown"
	}
	return stopNames[r]
}

// MarshalText lets StopReason appear by name in JSON output.
func (r StopReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Progress is the snapshot passed to OnRound observers after every round.
type Progress struct {
	Round       int
	Crossings   int
	Perimeter   float64
	Moved       bool
	Temperature float64 // annealing only; zero for hill climbing
}

// Options configures HillClimb.
type Options struct {
	Strategy Strategy

	// Seed feeds the RNG when Rand is nil; 0 ⇒ default seed.
	Seed int64
	// Rand, when non-nil, is used as the run's single random stream.
	Rand *rand.Rand

	// MaxRounds caps the number of rounds; 0 ⇒ unlimited.
	MaxRounds int
	// TimeLimit is a soft wall-clock budget; 0 ⇒ unlimited.
	TimeLimit time.Duration

	// OnRound, when set, is called after every round.
	OnRound func(Progress)
}

// DefaultOptions returns unlimited best-improvement options with seed 0.
func DefaultOptions() Options {
	return Options{Strategy: BestImprovement}
}

// Result is the outcome of HillClimb.
type Result struct {
	Tour      tour.Tour
	Crossings int
	Perimeter float64
	Rounds    int // evaluated rounds, including a final non-improving one
	Moves     int // rounds that adopted a neighbor
	Stop      StopReason
}

// Converged reports whether the result is a simple polygon.
func (r Result) Converged() bool { return r.Stop == StopSimple }
