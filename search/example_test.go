package search_test

import (
	"fmt"

	"github.com/katalvlaran/uncross/geom"
	"github.com/katalvlaran/uncross/search"
	"github.com/katalvlaran/uncross/tour"
)

// ExampleHillClimb untangles a bow-tie with the best-improvement strategy.
func ExampleHillClimb() {
	t, _ := tour.New([]geom.Point{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}})

	res, err := search.HillClimb(t, search.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Stop, res.Rounds, res.Tour)
	fmt.Printf("perimeter=%.1f\n", res.Perimeter)
	// Output:
	// simple 1 [(0,0) (2,0) (2,2) (0,2) | (0,0)]
	// perimeter=8.0
}

// ExampleAnneal shows the counters reported by the annealer.
func ExampleAnneal() {
	t, _ := tour.New([]geom.Point{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}})

	opts := search.DefaultAnnealOptions()
	opts.Seed = 42
	res, err := search.Anneal(t, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%v steps=%d accepted=%d crossings=%d\n", res.Stop, res.Steps, res.Accepted, res.Crossings)
	// Output:
	// simple steps=1 accepted=1 crossings=0
}
