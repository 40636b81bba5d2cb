package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/uncross/cross"
	"github.com/katalvlaran/uncross/geom"
	"github.com/katalvlaran/uncross/tour"
	"github.com/katalvlaran/uncross/tourio"
)

// TourReport is the result of every command that produces one tour.
type TourReport struct {
	Command   string       `json:"command"`
	Engine    string       `json:"engine,omitempty"`
	Initial   []geom.Point `json:"initial,omitempty"`
	Tour      []geom.Point `json:"tour"`
	Crossings int          `json:"crossings"`
	Perimeter float64      `json:"perimeter"`
	Simple    bool         `json:"simple"`

	// hill climbing
	Rounds int `json:"rounds,omitempty"`
	Moves  int `json:"moves,omitempty"`

	// annealing
	Steps     int     `json:"steps,omitempty"`
	Accepted  int     `json:"accepted,omitempty"`
	Rejected  int     `json:"rejected,omitempty"`
	FinalTemp float64 `json:"final_temperature,omitempty"`

	Stop  string `json:"stop,omitempty"`
	Saved string `json:"saved,omitempty"`
}

func newTourReport(command string, initial tour.Tour, result tour.Tour) *TourReport {
	crossings := cross.Count(result)
	r := &TourReport{
		Command:   command,
		Tour:      result.Points(),
		Crossings: crossings,
		Perimeter: result.Perimeter(),
		Simple:    crossings == 0,
	}
	if initial.Len() > 0 {
		r.Initial = initial.Points()
	}
	return r
}

// String renders the console form.
func (r *TourReport) String() string {
	var sb strings.Builder
	if r.Engine != "" {
		fmt.Fprintf(&sb, "Engine: %s\n", r.Engine)
	}
	if len(r.Initial) > 0 {
		fmt.Fprintf(&sb, "Initial: %s\n", tourio.Format(r.Initial))
	}
	fmt.Fprintf(&sb, "Result: %s\n", tourio.Format(r.Tour))
	fmt.Fprintf(&sb, "crossings: %d\nperimeter: %.3f", r.Crossings, r.Perimeter)
	switch r.Command {
	case "climb":
		fmt.Fprintf(&sb, "\nrounds: %d\nmoves: %d\nstop: %s", r.Rounds, r.Moves, r.Stop)
	case "anneal":
		fmt.Fprintf(&sb, "\nrounds: %d\nsteps: %d\naccepted: %d\nrejected: %d\nfinal temperature: %.3f\nstop: %s",
			r.Rounds, r.Steps, r.Accepted, r.Rejected, r.FinalTemp, r.Stop)
	}
	if r.Saved != "" {
		fmt.Fprintf(&sb, "\nsaved: %s", r.Saved)
	}
	return sb.String()
}

// NeighborsReport lists the intersections of a tour and their 2-opt moves.
type NeighborsReport struct {
	Tour          []geom.Point         `json:"tour"`
	Intersections []cross.Intersection `json:"intersections"`
	Neighbors     [][]geom.Point       `json:"neighbors"`
}

func (r *NeighborsReport) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tour: %s\n", tourio.Format(r.Tour))
	fmt.Fprintf(&sb, "Intersections: %d", len(r.Intersections))
	for i, nb := range r.Neighbors {
		fmt.Fprintf(&sb, "\nNeighbor %d %v: %s", i+1, r.Intersections[i], tourio.Format(nb))
	}
	return sb.String()
}

// PointsReport is the output of generate.
type PointsReport struct {
	Points []geom.Point `json:"points"`
	Saved  string       `json:"saved,omitempty"`
}

// String renders the point file format so text output can be piped back
// into --points -.
func (r *PointsReport) String() string {
	var sb strings.Builder
	_ = tourio.Write(&sb, r.Points)
	return strings.TrimSuffix(sb.String(), "\n")
}
