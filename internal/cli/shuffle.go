package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/uncross/construct"
)

// NewShuffleCommand creates the shuffle command.
func NewShuffleCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle",
		Short: "Print a uniformly random permutation of the points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShuffle(newRunEnv(rootOpts, cmd))
		},
	}
}

func runShuffle(e *runEnv) error {
	src, err := e.loadTour()
	if err != nil {
		return e.fail(ErrCodeInput, "load points", err)
	}

	res := construct.Shuffle(src, e.rng)
	report := newTourReport("shuffle", src, res)
	if report.Saved, err = e.save(res); err != nil {
		return e.fail(ErrCodeOutput, "save result", err)
	}
	return e.succeed(report)
}
