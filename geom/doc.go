// Package geom is the integer geometry kernel used by every other package in
// uncross.
//
// It provides the small set of primitives the crossing-removal engine needs:
//
//   - Point           - immutable (X, Y) integer pair, comparable and ordered.
//   - MaxCoord        - coordinate limit enforced by readers and generators.
//   - SquaredDistance - exact integer metric for nearest-neighbor comparisons.
//   - Perimeter       - Euclidean length of a closed polyline (wrap edge included).
//   - Cross, Orientation, InBox - orientation and bounding-box predicates.
//   - SegmentsIntersect - closed-segment intersection test covering proper
//     crossings and every collinear touching/overlapping configuration.
//
// All predicates work on exact integers; floating point only appears in the
// length helpers (Distance, Perimeter).
//
// Quick ASCII example:
//
//	(0,2)       (2,2)
//	    ╲     ╱
//	      ╳          SegmentsIntersect((0,0),(2,2),(2,0),(0,2)) == true
//	    ╱     ╲
//	(0,0)       (2,0)
//
// Complexity: every function is O(1) except Perimeter, which is O(n).
package geom
