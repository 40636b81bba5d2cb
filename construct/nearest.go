package construct

import (
	"github.com/katalvlaran/uncross/geom"
	"github.com/katalvlaran/uncross/tour"
)

// NearestNeighbor starts at points[start] and repeatedly appends the closest
// unvisited point by squared distance. Ties go to the lexicographically
// smallest point (X, then Y) and then to the lower input index, so the result
// does not depend on the input order of equidistant points.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(points []geom.Point, start int) (tour.Tour, error) {
	var n = len(points)
	if n < tour.MinSize {
		return tour.Tour{}, tour.ErrTooFewPoints
	}
	if start < 0 || start >= n {
		return tour.Tour{}, ErrStartOutOfRange
	}

	var (
		visited = make([]bool, n)
		order   = make([]geom.Point, 0, n)
		cur     = points[start]
		step    int
		i, best int
		d, bd   int
	)
	visited[start] = true
	order = append(order, cur)

	for step = 1; step < n; step++ {
		best = -1
		for i = 0; i < n; i++ {
			if visited[i] {
				continue
			}
			d = geom.SquaredDistance(cur, points[i])
			if best < 0 || d < bd || (d == bd && geom.Less(points[i], points[best])) {
				best, bd = i, d
			}
		}
		visited[best] = true
		cur = points[best]
		order = append(order, cur)
	}
	return tour.New(order)
}
