package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/uncross/cross"
	"github.com/katalvlaran/uncross/geom"
)

// NewNeighborsCommand creates the neighbors command.
func NewNeighborsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors",
		Short: "List the 2-opt uncrossing neighbors of the tour",
		Long: `List every intersection of the tour in input order together with the
tour obtained by reversing the segment between the two crossing edges.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNeighbors(newRunEnv(rootOpts, cmd))
		},
	}
}

func runNeighbors(e *runEnv) error {
	t, err := e.loadTour()
	if err != nil {
		return e.fail(ErrCodeInput, "load points", err)
	}

	xs := cross.Find(t)
	nbs, err := cross.NeighborsOf(t, xs)
	if err != nil {
		return e.fail(ErrCodeEngine, "build neighbors", err)
	}

	report := &NeighborsReport{
		Tour:          t.Points(),
		Intersections: make([]cross.Intersection, 0, len(xs)),
		Neighbors:     make([][]geom.Point, 0, len(nbs)),
	}
	report.Intersections = append(report.Intersections, xs...)
	for _, nb := range nbs {
		report.Neighbors = append(report.Neighbors, nb.Points())
	}
	e.log.Info("neighbors listed", "intersections", len(xs))
	return e.succeed(report)
}
