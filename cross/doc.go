// Package cross detects self-intersections of a closed tour and turns each
// one into a 2-opt "uncrossing" neighbor.
//
// Detection (Find):
//
//	For a tour of n points, edge i joins P[i] and P[(i+1) mod n]. Every pair of
//	edge starts (i, j) with 0 ≤ i ≤ n-3 and i+2 ≤ j ≤ n-1 is examined, except
//	(0, n-1): those two edges meet at the closing vertex P[0]. A pair is
//	skipped when the edge directions are parallel and do not point the same
//	way (cross == 0 && dot ≤ 0). Every other pair is tested with
//	geom.SegmentsIntersect and reported as Intersection{I: i+1, J: j}.
//
// Neighbor generation (Neighbors):
//
//	Each Intersection{I, J} yields one tour with positions [I..J] reversed,
//	which reconnects the two offending edges without the crossing. Results are
//	returned one per record, in detection order, with no deduplication.
//
// A tour with no intersections is a simple polygon; every search strategy in
// uncross uses that as its convergence criterion (IsSimple).
//
// Complexity:
//   - Find, Count, IsSimple: O(n²) time, O(k) space for k intersections.
//   - Neighbors: O(n² + k·n).
package cross
