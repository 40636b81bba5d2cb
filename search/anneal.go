// Package search - simulated annealing over the 2-opt uncrossing neighborhood.
//
// Schedule (defaults):
//
//	T = InitialTemp (500)
//	while T > MinTemp (2.56):
//	    repeat StepsPerRound times (0 ⇒ n·(n−1)):
//	        nbs = cross.Neighbors(cur); if empty → StopSimple
//	        cand = nbs[uniform]
//	        Δ = crossings(cur) − crossings(cand)
//	        adopt cand according to the Acceptance policy
//	    T *= Cooling (0.95)
//	→ StopCooled
//
// Acceptance policies:
//   - AcceptMetropolis: non-worsening candidates are always adopted; a worsening
//     one is adopted iff exp(Δ/T) ≥ u with u ~ U[0,1).
//   - AcceptAlways: the Metropolis draw is still made (so the random stream is
//     consumed identically), but every candidate is adopted.
package search

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/uncross/cross"
	"github.com/katalvlaran/uncross/tour"
)

// Acceptance selects how the annealer treats worsening candidates.
type Acceptance int

const (
	// AcceptMetropolis rejects worsening moves with probability 1−exp(Δ/T).
	AcceptMetropolis Acceptance = iota
	// AcceptAlways adopts every drawn candidate regardless of the draw.
	AcceptAlways
)

// String returns the CLI name of the policy.
func (a Acceptance) String() string {
	switch a {
	case AcceptMetropolis:
		return "metropolis"
	case AcceptAlways:
		return "always"
	}
	return "unknown"
}

// ParseAcceptance accepts "metropolis" and "always" (case-insensitive).
func ParseAcceptance(s string) (Acceptance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metropolis", "":
		return AcceptMetropolis, nil
	case "always":
		return AcceptAlways, nil
	}
	return 0, ErrUnknownAcceptance
}

// Default annealing schedule.
const (
	DefaultInitialTemp = 500.0
	DefaultCooling     = 0.95
	DefaultMinTemp     = 2.56
)

// AnnealOptions configures Anneal.
type AnnealOptions struct {
	InitialTemp float64
	Cooling     float64
	MinTemp     float64
	// StepsPerRound is the inner loop length; 0 ⇒ n·(n−1).
	StepsPerRound int

	Acceptance Acceptance

	Seed int64
	Rand *rand.Rand

	// MaxSteps caps the total number of inner steps; 0 ⇒ unlimited.
	MaxSteps int
	// TimeLimit is a soft wall-clock budget; 0 ⇒ unlimited.
	TimeLimit time.Duration

	// OnRound, when set, is called after every completed temperature round.
	OnRound func(Progress)
}

// DefaultAnnealOptions returns the standard schedule with Metropolis acceptance.
func DefaultAnnealOptions() AnnealOptions {
	return AnnealOptions{
		InitialTemp: DefaultInitialTemp,
		Cooling:     DefaultCooling,
		MinTemp:     DefaultMinTemp,
		Acceptance:  AcceptMetropolis,
	}
}

// AnnealResult is the outcome of Anneal.
type AnnealResult struct {
	Tour      tour.Tour
	Crossings int
	Perimeter float64
	Rounds    int // completed temperature rounds
	Steps     int // inner steps taken
	Accepted  int
	Rejected  int
	FinalTemp float64
	Stop      StopReason
}

// Converged reports whether the result is a simple polygon.
func (r AnnealResult) Converged() bool { return r.Stop == StopSimple }

// Anneal runs the temperature-scheduled random walk from seed. The returned
// tour is whichever tour is current when the walk stops; on ErrTimeLimit the
// partial result is still returned.
//
// Complexity: O(rounds · StepsPerRound · (n² + k·n)).
func Anneal(seed tour.Tour, opts AnnealOptions) (AnnealResult, error) {
	if err := validateAnnealOptions(opts); err != nil {
		return AnnealResult{}, err
	}
	var n = seed.Len()
	if n < tour.MinSize {
		return AnnealResult{}, tour.ErrTooFewPoints
	}

	var (
		rng   = pickRand(opts.Rand, opts.Seed)
		steps = opts.StepsPerRound
		temp  = opts.InitialTemp
		cur   = seed
		res   AnnealResult
	)
	if steps == 0 {
		steps = n * (n - 1)
	}

	var (
		useDeadline bool
		deadline    time.Time
	)
	if opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}

	finish := func(stop StopReason, crossings int) AnnealResult {
		res.Tour = cur
		res.Crossings = crossings
		res.Perimeter = cur.Perimeter()
		res.FinalTemp = temp
		res.Stop = stop
		return res
	}

	var (
		k         int
		moved     bool
		nbs       []tour.Tour
		cand      tour.Tour
		candCount int
	)
	for temp > opts.MinTemp {
		moved = false
		for k = 0; k < steps; k++ {
			nbs = cross.Neighbors(cur)
			if len(nbs) == 0 {
				return finish(StopSimple, 0), nil
			}
			if opts.MaxSteps > 0 && res.Steps >= opts.MaxSteps {
				return finish(StopMaxSteps, len(nbs)), nil
			}
			if useDeadline && time.Now().After(deadline) {
				return finish(StopTimeLimit, len(nbs)), ErrTimeLimit
			}

			cand = nbs[rng.Intn(len(nbs))]
			candCount = cross.Count(cand)
			res.Steps++
			if accept(opts.Acceptance, len(nbs), candCount, temp, rng) {
				cur = cand
				moved = true
				res.Accepted++
			} else {
				res.Rejected++
			}
		}

		temp *= opts.Cooling
		res.Rounds++
		if opts.OnRound != nil {
			opts.OnRound(Progress{
				Round:       res.Rounds,
				Crossings:   cross.Count(cur),
				Perimeter:   cur.Perimeter(),
				Moved:       moved,
				Temperature: temp,
			})
		}
	}
	return finish(StopCooled, cross.Count(cur)), nil
}

// accept decides whether a candidate with cand crossings replaces a current
// tour with cur crossings at temperature temp. The uniform draw is consumed
// for every worsening candidate under both policies.
func accept(policy Acceptance, cur, cand int, temp float64, rng *rand.Rand) bool {
	if cand <= cur {
		return true
	}
	p := math.Exp(float64(cur-cand) / temp)
	u := rng.Float64()
	if policy == AcceptAlways {
		return true
	}
	return p >= u
}
