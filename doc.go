// Package uncross turns a closed tour over integer points into a simple
// polygon by removing its self-intersections with 2-opt moves.
//
// What is in the box?
//
//	geom/      integer geometry kernel: points, distances, orientation,
//	           closed-segment intersection
//	tour/      Tour, an immutable closed polygon with the 2-opt Reverse
//	cross/     intersection detection and one uncrossing neighbor per crossing
//	search/    HillClimb (four strategies) and Anneal (Metropolis or
//	           always-accept) over that neighborhood
//	construct/ nearest-neighbor tours, random point sets, random permutations
//	tourio/    "x y" point files, atomic saves, JSON-lines progress traces
//	config/    YAML + .env + UNCROSS_* settings
//	cmd/uncross the command-line front end
//
// Quick ASCII example:
//
//	(0,2)   (2,2)        (0,2)───(2,2)
//	    ╲   ╱              │       │
//	      ╳        ──►     │       │
//	    ╱   ╲              │       │
//	(0,0)   (2,0)        (0,0)───(2,0)
//
//	tour [(0,0) (2,2) (2,0) (0,2)] has one crossing, Intersection{1,2};
//	reversing positions 1..2 gives the square of perimeter 8.
//
// Every engine is deterministic for a fixed seed, never mutates its input and
// reports why it stopped (simple, local optimum, stalled, caps, cooled).
//
//	go install github.com/katalvlaran/uncross/cmd/uncross@latest
package uncross
