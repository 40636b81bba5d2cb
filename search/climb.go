// Package search - hill climbing over the 2-opt uncrossing neighborhood.
//
// HillClimb is a small state machine over (current tour, current neighbors):
//
//	init:  cur = seed, nbs = cross.Neighbors(seed)
//	loop:  len(nbs) == 0          → StopSimple
//	       MaxRounds reached      → StopMaxRounds
//	       deadline passed        → StopTimeLimit + ErrTimeLimit
//	       Strategy.advance(...)  → adopt a neighbor or stop
//	       nbs = cross.Neighbors(cur)
//
// Contracts:
//   - seed has at least tour.MinSize points.
//   - The seed is never modified; every adopted neighbor is a fresh Tour.
package search

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/uncross/cross"
	"github.com/katalvlaran/uncross/tour"
)

// state is the mutable bookkeeping of one run. Tours themselves are immutable.
type state struct {
	cur       tour.Tour
	nbs       []tour.Tour
	crossings int
	perimeter float64
}

// adopt makes nb the current tour.
func (st *state) adopt(nb tour.Tour, perimeter float64) {
	st.cur = nb
	st.perimeter = perimeter
}

// refresh recomputes the neighborhood of the current tour.
func (st *state) refresh() {
	st.nbs = cross.Neighbors(st.cur)
	st.crossings = len(st.nbs)
}

// HillClimb runs the configured Strategy from seed until the tour is simple or
// the strategy cannot continue. On ErrTimeLimit the partial result is still
// returned.
//
// Complexity: O(rounds · (n² + k·n)); LeastIntersections O(rounds · k·n²).
func HillClimb(seed tour.Tour, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if seed.Len() < tour.MinSize {
		return Result{}, tour.ErrTooFewPoints
	}

	var (
		rng = pickRand(opts.Rand, opts.Seed)
		st  = &state{cur: seed, perimeter: seed.Perimeter()}
		res Result
	)
	st.refresh()

	var (
		useDeadline bool
		deadline    time.Time
	)
	if opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}

	finish := func(stop StopReason) Result {
		res.Tour = st.cur
		res.Crossings = st.crossings
		res.Perimeter = st.perimeter
		res.Stop = stop
		return res
	}

	for {
		if len(st.nbs) == 0 {
			return finish(StopSimple), nil
		}
		if opts.MaxRounds > 0 && res.Rounds >= opts.MaxRounds {
			return finish(StopMaxRounds), nil
		}
		if useDeadline && time.Now().After(deadline) {
			return finish(StopTimeLimit), ErrTimeLimit
		}

		moved, stop, done := opts.Strategy.advance(st, rng)
		res.Rounds++
		if moved {
			res.Moves++
			st.refresh()
		}
		if opts.OnRound != nil {
			opts.OnRound(Progress{
				Round:     res.Rounds,
				Crossings: st.crossings,
				Perimeter: st.perimeter,
				Moved:     moved,
			})
		}
		if done {
			return finish(stop), nil
		}
	}
}

// advance performs one round of strategy s. It reports whether a neighbor was
// adopted and, when the run must end, the reason with done == true.
// st.nbs is non-empty on entry.
func (s Strategy) advance(st *state, rng *rand.Rand) (moved bool, stop StopReason, done bool) {
	switch s {
	case BestImprovement:
		return advanceBest(st)
	case FirstCandidate:
		st.adopt(st.nbs[0], st.nbs[0].Perimeter())
		return true, 0, false
	case LeastIntersections:
		return advanceLeast(st)
	case RandomNeighbor:
		nb := st.nbs[rng.Intn(len(st.nbs))]
		st.adopt(nb, nb.Perimeter())
		return true, 0, false
	}
	// validateOptions rejects unknown strategies before the loop starts.
	return false, StopStalled, true
}

// advanceBest adopts the shortest neighbor when it is strictly shorter than the
// current tour. A round without adoption leaves the state unchanged forever,
// so it ends the run with StopStalled.
func advanceBest(st *state) (bool, StopReason, bool) {
	var (
		best    = -1
		bestPer = st.perimeter
		i       int
		curPer  float64
	)
	for i = range st.nbs {
		curPer = st.nbs[i].Perimeter()
		if curPer < bestPer {
			bestPer = curPer
			best = i
		}
	}
	if best < 0 {
		return false, StopStalled, true
	}
	st.adopt(st.nbs[best], bestPer)
	return true, 0, false
}

// advanceLeast adopts the neighbor with the fewest crossings when that count is
// strictly below the current one (ties keep the first). Otherwise the tour is a
// local optimum of the crossing count.
func advanceLeast(st *state) (bool, StopReason, bool) {
	var (
		best      = -1
		bestCount = st.crossings
		i, c      int
	)
	for i = range st.nbs {
		c = cross.Count(st.nbs[i])
		if c < bestCount {
			bestCount = c
			best = i
		}
	}
	if best < 0 {
		return false, StopLocalOptimum, true
	}
	st.adopt(st.nbs[best], st.nbs[best].Perimeter())
	return true, 0, false
}
