// Package geom - orientation and segment intersection predicates.
//
// SegmentsIntersect classifies a pair of closed segments p1–p2, p3–p4 with four
// orientation values:
//
//	d123 = side of p3 w.r.t. p1→p2      d341 = side of p1 w.r.t. p3→p4
//	d124 = side of p4 w.r.t. p1→p2      d342 = side of p2 w.r.t. p3→p4
//
// The segments intersect when
//   - both pairs straddle (strictly opposite signs), i.e. a proper crossing, or
//   - some endpoint is collinear with the other segment (d == 0) and lies in its
//     closed bounding box (touching, T-junctions, collinear overlap).
//
// Orientation compares the two cross-product terms as 128-bit values, so it
// stays exact for any points whose coordinate differences fit in int.
package geom

import "math/bits"

// Cross returns the z-component of (a−o) × (b−o).
// Positive: o→a→b turns counter-clockwise; negative: clockwise; zero: collinear.
//
// The value is exact for points within MaxCoord; use Orientation for the sign
// of arbitrary points.
//
// Complexity: O(1).
func Cross(o, a, b Point) int {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Orientation returns the sign of Cross(p1, p2, p3): -1, 0 or +1.
func Orientation(p1, p2, p3 Point) int {
	return cmpProducts(p2.X-p1.X, p3.Y-p1.Y, p2.Y-p1.Y, p3.X-p1.X)
}

// cmpProducts returns the sign of a·b − c·d without overflow.
func cmpProducts(a, b, c, d int) int {
	var (
		s1 = sign(a) * sign(b)
		s2 = sign(c) * sign(d)
	)
	switch {
	case s1 != s2:
		return sign(s1 - s2)
	case s1 == 0:
		return 0
	}
	hi1, lo1 := bits.Mul64(abs64(a), abs64(b))
	hi2, lo2 := bits.Mul64(abs64(c), abs64(d))
	var m int
	switch {
	case hi1 != hi2:
		m = cmpUint(hi1, hi2)
	default:
		m = cmpUint(lo1, lo2)
	}
	return s1 * m
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// abs64 returns |v| as uint64; it is correct for math.MinInt as well.
func abs64(v int) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}

func cmpUint(a, b uint64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}

// InBox reports whether q lies in the closed axis-aligned bounding box of the
// segment p1–p2. Boundaries are inclusive.
func InBox(p1, p2, q Point) bool {
	return min(p1.X, p2.X) <= q.X && q.X <= max(p1.X, p2.X) &&
		min(p1.Y, p2.Y) <= q.Y && q.Y <= max(p1.Y, p2.Y)
}

// SegmentsIntersect reports whether the closed segments p1–p2 and p3–p4 share
// at least one point. See the file comment for the exact case analysis.
//
// Complexity: O(1).
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	var (
		d123 = Orientation(p1, p2, p3)
		d124 = Orientation(p1, p2, p4)
		d341 = Orientation(p3, p4, p1)
		d342 = Orientation(p3, p4, p2)
	)

	if d123*d124 < 0 && d341*d342 < 0 {
		return true
	}

	switch {
	case d123 == 0 && InBox(p1, p2, p3):
		return true
	case d124 == 0 && InBox(p1, p2, p4):
		return true
	case d341 == 0 && InBox(p3, p4, p1):
		return true
	case d342 == 0 && InBox(p3, p4, p2):
		return true
	}
	return false
}
