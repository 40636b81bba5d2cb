// Package search_test provides fixtures shared across the search tests.
package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/uncross/geom"
	"github.com/katalvlaran/uncross/tour"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the deterministic seed used across tests (0 ⇒ default seed).
	seedDet = int64(0)

	// roundsToCool is the number of ×0.95 rounds needed to bring 500 below 2.56.
	roundsToCool = 103
)

// circle12 holds twelve lattice points on the circle of radius 5. They are in
// convex position with no three collinear, so every crossing is proper and
// every 2-opt move strictly shortens the tour.
var circle12 = []geom.Point{
	{X: 0, Y: 5}, {X: 3, Y: 4}, {X: 4, Y: 3}, {X: 5, Y: 0}, {X: 4, Y: -3}, {X: 3, Y: -4},
	{X: 0, Y: -5}, {X: -3, Y: -4}, {X: -4, Y: -3}, {X: -5, Y: 0}, {X: -4, Y: 3}, {X: -3, Y: 4},
}

// mustTour builds a tour or fails the test.
func mustTour(t testing.TB, pts ...geom.Point) tour.Tour {
	t.Helper()
	tr, err := tour.New(pts)
	require.NoError(t, err)
	return tr
}

// bowtie is the single-crossing ordering of a 2×2 square.
func bowtie(t testing.TB) tour.Tour {
	return mustTour(t, geom.Pt(0, 0), geom.Pt(2, 2), geom.Pt(2, 0), geom.Pt(0, 2))
}

// square is the simple ordering of the bowtie's points.
func square(t testing.TB) tour.Tour {
	return mustTour(t, geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(2, 2), geom.Pt(0, 2))
}

// stuck has a repeated point: its only crossing is a touch between edge 0 and
// edge 2 whose 2-opt move swaps the two equal points, so the neighbor is the
// tour itself.
func stuck(t testing.TB) tour.Tour {
	return mustTour(t, geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 0), geom.Pt(2, 0))
}

// pentagram is a five-point star with five crossings.
func pentagram(t testing.TB) tour.Tour {
	p := []geom.Point{{X: 0, Y: 10}, {X: 10, Y: 3}, {X: 6, Y: -8}, {X: -6, Y: -8}, {X: -10, Y: 3}}
	return mustTour(t, p[0], p[2], p[4], p[1], p[3])
}

// shuffled returns a deterministic permutation of pts as a tour.
func shuffled(t testing.TB, pts []geom.Point, seed int64) tour.Tour {
	t.Helper()
	cp := append([]geom.Point(nil), pts...)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(cp), func(i, j int) { cp[i], cp[j] = cp[j], cp[i] })
	return mustTour(t, cp...)
}
