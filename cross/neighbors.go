package cross

import (
	"errors"

	"github.com/katalvlaran/uncross/tour"
)

// ErrBadIntersection is returned when a record does not address a valid
// position range of the tour.
var ErrBadIntersection = errors.New("cross: intersection out of tour range")

// Neighbors returns the 2-opt neighbors of t: one tour per intersection, in
// detection order. An empty result means t is already simple.
//
// Complexity: O(n² + k·n) for k intersections.
func Neighbors(t tour.Tour) []tour.Tour {
	// Find only emits in-range records, so NeighborsOf cannot fail here.
	out, _ := NeighborsOf(t, Find(t))
	return out
}

// NeighborsOf builds one neighbor per record in xs. Identical results from
// different records are kept as separate entries.
//
// Complexity: O(k·n).
func NeighborsOf(t tour.Tour, xs []Intersection) ([]tour.Tour, error) {
	if len(xs) == 0 {
		return nil, nil
	}
	out := make([]tour.Tour, 0, len(xs))

	var (
		x   Intersection
		nb  tour.Tour
		err error
	)
	for _, x = range xs {
		if nb, err = Neighbor(t, x); err != nil {
			return nil, err
		}
		out = append(out, nb)
	}
	return out, nil
}

// Neighbor applies the 2-opt reversal for a single record.
func Neighbor(t tour.Tour, x Intersection) (tour.Tour, error) {
	if x.I < 1 || x.J > t.Len()-1 || x.I > x.J {
		return tour.Tour{}, ErrBadIntersection
	}
	return t.Reverse(x.I, x.J)
}
