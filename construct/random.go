package construct

import (
	"math/rand"

	"github.com/katalvlaran/uncross/geom"
	"github.com/katalvlaran/uncross/tour"
)

// defaultSeed feeds the fallback stream used when a caller passes a nil rng.
const defaultSeed int64 = 1

func orDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(defaultSeed))
}

// RandomPoints draws n distinct points with both coordinates uniform in
// [-bound, bound]. Duplicates are rejected and redrawn, so the output order is
// the order of first appearance.
//
// Errors: ErrInvalidBound for bound < 0 or bound > geom.MaxCoord;
// ErrInvalidCount when n < 3 or n ≥ (2·bound+1)², the latter keeping at
// least one lattice cell free so the rejection loop stays short.
func RandomPoints(n, bound int, rng *rand.Rand) ([]geom.Point, error) {
	if bound < 0 || bound > geom.MaxCoord {
		return nil, ErrInvalidBound
	}
	// side ≤ 2·MaxCoord+1, so side² fits in int.
	side := 2*bound + 1
	if n < tour.MinSize || n >= side*side {
		return nil, ErrInvalidCount
	}

	var (
		r    = orDefault(rng)
		seen = make(map[geom.Point]struct{}, n)
		out  = make([]geom.Point, 0, n)
		p    geom.Point
	)
	for len(out) < n {
		p = geom.Pt(r.Intn(side)-bound, r.Intn(side)-bound)
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

// ShufflePoints permutes a in place with Fisher–Yates.
//
// Complexity: O(n) time, O(1) extra space.
func ShufflePoints(a []geom.Point, rng *rand.Rand) {
	var n = len(a)
	if n <= 1 {
		return
	}
	var (
		r    = orDefault(rng)
		i, j int
	)
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Shuffle returns a uniformly permuted copy of t. A tour below MinSize (the
// zero value) is returned as is.
func Shuffle(t tour.Tour, rng *rand.Rand) tour.Tour {
	if t.Len() < tour.MinSize {
		return t
	}
	pts := t.Points()
	ShufflePoints(pts, rng)
	// pts has t.Len() ≥ MinSize points, so New cannot fail.
	out, _ := tour.New(pts)
	return out
}

// RandomIndex returns a uniform index in [0, n), or 0 when n ≤ 0.
func RandomIndex(n int, rng *rand.Rand) int {
	if n <= 0 {
		return 0
	}
	return orDefault(rng).Intn(n)
}
