// Package tour defines Tour, an immutable closed polygon over geom points.
//
// A Tour of size n holds n points P[0..n-1]; edge i joins P[i] and
// P[(i+1) mod n], so the wrap edge P[n-1]→P[0] is always part of the polygon.
// The closing point is implicit and never stored twice.
//
// Provided helpers:
//   - New / NewDistinct: construct from a point slice (input is copied).
//   - Len, At, Edge, Points: read-only access.
//   - Reverse: the 2-opt primitive, returns a new Tour with [i..j] reversed.
//   - Perimeter: closed-polygon length.
//   - Equal / EqualModuloRotation: structural comparisons.
//   - HasDuplicates, String.
//
// Design:
//   - Value semantics: no method mutates the receiver; every transformation
//     allocates a fresh backing slice. A Tour can be shared freely between
//     search iterations.
//   - Sentinel errors only (see errors.go); no logging, no panics on input.
package tour

import (
	"strings"

	"github.com/katalvlaran/uncross/geom"
)

// MinSize is the smallest point count that forms a closed polygon.
const MinSize = 3

// Tour is an immutable ordered sequence of points interpreted as a closed
// polygon. The zero value is an empty tour and is only useful as a sentinel.
type Tour struct {
	pts []geom.Point
}

// New builds a Tour from points. The slice is copied, so later changes to
// points do not leak into the tour. Distinctness is not checked: manually
// entered tours may repeat points. Use NewDistinct to enforce it.
//
// Complexity: O(n).
func New(points []geom.Point) (Tour, error) {
	if len(points) < MinSize {
		return Tour{}, ErrTooFewPoints
	}
	return Tour{pts: copyPoints(points)}, nil
}

// NewDistinct is New plus a uniqueness check over all points.
//
// Complexity: O(n) time, O(n) space.
func NewDistinct(points []geom.Point) (Tour, error) {
	t, err := New(points)
	if err != nil {
		return Tour{}, err
	}
	if t.HasDuplicates() {
		return Tour{}, ErrDuplicatePoint
	}
	return t, nil
}

// Len returns the number of points (and edges) of the tour.
func (t Tour) Len() int { return len(t.pts) }

// At returns the point at position i. It panics if i is out of range,
// like slice indexing.
func (t Tour) At(i int) geom.Point { return t.pts[i] }

// Edge returns the endpoints of edge i, i.e. (P[i], P[(i+1) mod n]).
func (t Tour) Edge(i int) (geom.Point, geom.Point) {
	return t.pts[i], t.pts[(i+1)%len(t.pts)]
}

// Points returns an independent copy of the tour's points in order.
func (t Tour) Points() []geom.Point { return copyPoints(t.pts) }

// Perimeter returns the Euclidean length of the closed polygon.
func (t Tour) Perimeter() float64 { return geom.Perimeter(t.pts) }

// Reverse returns a new tour with the inclusive position range [i..j]
// reversed; every position outside the range is unchanged. This is the 2-opt
// move: for edges (P[i-1],P[i]) and (P[j],P[j+1]) it reconnects them as
// (P[i-1],P[j]) and (P[i],P[j+1]). Reverse(i, j) applied twice yields the
// original tour.
//
// Contract: 0 ≤ i ≤ j ≤ n-1, otherwise ErrRangeOutOfBounds.
//
// Complexity: O(n) time and space (copy) + O(j-i) swaps.
func (t Tour) Reverse(i, j int) (Tour, error) {
	if i < 0 || j >= len(t.pts) || i > j {
		return Tour{}, ErrRangeOutOfBounds
	}
	out := copyPoints(t.pts)
	reverseInPlace(out, i, j)
	return Tour{pts: out}, nil
}

// HasDuplicates reports whether any two positions hold equal points.
//
// Complexity: O(n) time, O(n) space.
func (t Tour) HasDuplicates() bool {
	seen := make(map[geom.Point]struct{}, len(t.pts))

	var (
		p  geom.Point
		ok bool
	)
	for _, p = range t.pts {
		if _, ok = seen[p]; ok {
			return true
		}
		seen[p] = struct{}{}
	}
	return false
}

// Equal reports whether a and b visit the same points in the same order,
// starting from the same position.
func Equal(a, b Tour) bool {
	if len(a.pts) != len(b.pts) {
		return false
	}
	var i int
	for i = range a.pts {
		if a.pts[i] != b.pts[i] {
			return false
		}
	}
	return true
}

// EqualModuloRotation reports whether a and b describe the same cycle in the
// same direction, possibly starting at different positions. Tours with
// repeated points are compared against the first occurrence of a's start.
//
// Complexity: O(n).
func EqualModuloRotation(a, b Tour) bool {
	var n = len(a.pts)
	if n != len(b.pts) {
		return false
	}
	if n == 0 {
		return true
	}

	// Locate a's start inside b.
	var (
		i int
		p = -1
	)
	for i = 0; i < n; i++ {
		if b.pts[i] == a.pts[0] {
			p = i
			break
		}
	}
	if p == -1 {
		return false
	}
	for i = 0; i < n; i++ {
		if a.pts[i] != b.pts[(p+i)%n] {
			return false
		}
	}
	return true
}

// String returns a compact printable representation, e.g.
// "[(0,0) (2,0) (2,2) | (0,0)]" where the bar marks the implicit closure.
func (t Tour) String() string {
	if len(t.pts) == 0 {
		return "[]"
	}
	var (
		sb strings.Builder
		i  int
	)
	sb.WriteByte('[')
	for i = range t.pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.pts[i].String())
	}
	sb.WriteString(" | ")
	sb.WriteString(t.pts[0].String())
	sb.WriteByte(']')
	return sb.String()
}

// reverseInPlace reverses the inclusive segment a[i..j].
// Bounds are the caller's responsibility.
//
// Complexity: O(j-i) time, O(1) space.
func reverseInPlace(a []geom.Point, i, j int) {
	for i < j {
		a[i], a[j] = a[j], a[i]
		i++
		j--
	}
}

// copyPoints returns an independent copy of src (nil stays nil).
func copyPoints(src []geom.Point) []geom.Point {
	if src == nil {
		return nil
	}
	out := make([]geom.Point, len(src))
	copy(out, src)
	return out
}
