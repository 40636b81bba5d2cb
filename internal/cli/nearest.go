package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/uncross/construct"
	"github.com/katalvlaran/uncross/tour"
)

// NearestOptions holds flags for the nearest command.
type NearestOptions struct {
	Start int // -1 ⇒ random start
}

// NewNearestCommand creates the nearest command.
func NewNearestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NearestOptions{}
	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Build a nearest-neighbor tour",
		Long: `Build a tour by starting at one point and repeatedly moving to the closest
unvisited point. Without --start the first point is chosen at random.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNearest(newRunEnv(rootOpts, cmd), opts)
		},
	}
	cmd.Flags().IntVar(&opts.Start, "start", -1, "index of the first point (-1 = random)")
	return cmd
}

func runNearest(e *runEnv, opts *NearestOptions) error {
	pts, err := e.loadPoints()
	if err != nil {
		return e.fail(ErrCodeInput, "load points", err)
	}

	start := opts.Start
	if start < 0 {
		start = construct.RandomIndex(len(pts), e.rng)
	}
	e.log.Debug("nearest neighbor", "start", start)

	res, err := construct.NearestNeighbor(pts, start)
	if err != nil {
		return e.fail(ErrCodeEngine, "nearest neighbor", err)
	}

	report := newTourReport("nearest", tour.Tour{}, res)
	if report.Saved, err = e.save(res); err != nil {
		return e.fail(ErrCodeOutput, "save result", err)
	}
	return e.succeed(report)
}
