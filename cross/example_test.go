package cross_test

import (
	"fmt"

	"github.com/katalvlaran/uncross/cross"
	"github.com/katalvlaran/uncross/geom"
	"github.com/katalvlaran/uncross/tour"
)

// ExampleFind uncrosses the bowtie ordering of a square's corners.
//
//	(0,2)   (2,2)          (0,2)───(2,2)
//	    ╲ ╱                  │       │
//	     ╳         ──▶       │       │
//	    ╱ ╲                  │       │
//	(0,0)   (2,0)          (0,0)───(2,0)
func ExampleFind() {
	tr, err := tour.New([]geom.Point{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(cross.Find(tr))
	for _, nb := range cross.Neighbors(tr) {
		fmt.Printf("%v simple=%t perimeter=%.1f\n", nb, cross.IsSimple(nb), nb.Perimeter())
	}
	// Output:
	// [(1,2)]
	// [(0,0) (2,0) (2,2) (0,2) | (0,0)] simple=true perimeter=8.0
}
