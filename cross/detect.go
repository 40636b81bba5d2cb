package cross

import (
	"fmt"

	"github.com/katalvlaran/uncross/geom"
	"github.com/katalvlaran/uncross/tour"
)

// Intersection identifies two crossing edges of a tour by position.
// I is one past the start of the first edge and J is the start of the second,
// so that reversing positions [I..J] removes the crossing. 1 ≤ I ≤ J ≤ n-1.
type Intersection struct {
	I int `json:"i"`
	J int `json:"j"`
}

// String renders the record as "(I,J)".
func (x Intersection) String() string {
	return fmt.Sprintf("(%d,%d)", x.I, x.J)
}

// Find returns every intersection of t in scan order (first edge ascending,
// then second edge ascending). The result is nil for a simple polygon.
//
// Complexity: O(n²).
func Find(t tour.Tour) []Intersection {
	var out []Intersection
	scan(t, func(i, j int) bool {
		out = append(out, Intersection{I: i + 1, J: j})
		return true
	})
	return out
}

// Count returns len(Find(t)) without allocating the records.
//
// Complexity: O(n²).
func Count(t tour.Tour) int {
	var c int
	scan(t, func(int, int) bool {
		c++
		return true
	})
	return c
}

// IsSimple reports whether t has no intersections. It stops at the first
// crossing found.
func IsSimple(t tour.Tour) bool {
	simple := true
	scan(t, func(int, int) bool {
		simple = false
		return false
	})
	return simple
}

// scan visits every crossing edge pair (i, j) of t in order and calls emit.
// Scanning stops early when emit returns false.
func scan(t tour.Tour, emit func(i, j int) bool) {
	var n = t.Len()
	if n < tour.MinSize {
		return
	}

	var (
		i, j           int
		a, b, c, d     geom.Point
		di, dj         geom.Point
		parallel, dotp int
	)
	for i = 0; i <= n-3; i++ {
		a, b = t.Edge(i)
		di = b.Sub(a)
		for j = i + 2; j <= n-1; j++ {
			// Edges 0 and n-1 share the closing vertex.
			if i == 0 && j == n-1 {
				continue
			}
			c, d = t.Edge(j)
			dj = d.Sub(c)

			parallel = di.X*dj.Y - di.Y*dj.X
			dotp = di.X*dj.X + di.Y*dj.Y
			if parallel == 0 && dotp <= 0 {
				continue
			}

			if geom.SegmentsIntersect(a, b, c, d) {
				if !emit(i, j) {
					return
				}
			}
		}
	}
}
