package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/uncross/construct"
	"github.com/katalvlaran/uncross/tourio"
)

var errGenerateNeedsCount = errors.New("generate needs --count N and --bound M")

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate distinct random points in the point file format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(newRunEnv(rootOpts, cmd))
		},
	}
}

func runGenerate(e *runEnv) error {
	if e.opts.Count <= 0 {
		return e.fail(ErrCodeInput, "generate", errGenerateNeedsCount)
	}
	pts, err := construct.RandomPoints(e.opts.Count, e.opts.Bound, e.rng)
	if err != nil {
		return e.fail(ErrCodeInput, "generate", err)
	}

	report := &PointsReport{Points: pts}
	if e.opts.Out != "" {
		if err := tourio.Save(e.opts.Out, pts); err != nil {
			return e.fail(ErrCodeOutput, "save points", err)
		}
		report.Saved = e.opts.Out
		e.log.Info("points saved", "path", e.opts.Out, "count", len(pts))
	}
	return e.succeed(report)
}
