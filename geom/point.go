// Package geom - point primitives and metrics.
package geom

import (
	"fmt"
	"math"
)

// MaxCoord bounds |X| and |Y| of every point read or generated by this
// module. Within it, coordinate differences stay below 2^31 and both
// SquaredDistance and Cross stay below 2^63.
const MaxCoord = 1_000_000_000

// Point is an integer lattice point. It is a plain value: comparable with ==,
// usable as a map key, and never mutated after construction.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is a shorthand constructor for Point.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InRange reports whether both coordinates lie in [-MaxCoord, MaxCoord].
func (p Point) InRange() bool {
	return -MaxCoord <= p.X && p.X <= MaxCoord && -MaxCoord <= p.Y && p.Y <= MaxCoord
}

// Sub returns the vector p−q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Compare orders points lexicographically by (X, Y).
// It returns -1, 0 or +1 and is suitable for slices.SortFunc.
func Compare(p, q Point) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	}
	return 0
}

// Less reports whether p sorts strictly before q.
func Less(p, q Point) bool { return Compare(p, q) < 0 }

// SquaredDistance returns |p−q|² using exact integer arithmetic. The result
// is exact for points within MaxCoord.
//
// Complexity: O(1).
func SquaredDistance(p, q Point) int {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Sqrt(float64(SquaredDistance(p, q)))
}

// Perimeter returns the sum of Euclidean edge lengths of the closed polyline
// through points, including the wrap edge from the last point back to the
// first. Empty and single-point inputs have perimeter 0.
//
// Complexity: O(n).
func Perimeter(points []Point) float64 {
	var (
		n   = len(points)
		sum float64
		i   int
	)
	if n < 2 {
		return 0
	}
	for i = 0; i < n; i++ {
		sum += Distance(points[i], points[(i+1)%n])
	}
	return sum
}
