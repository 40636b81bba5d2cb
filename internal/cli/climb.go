package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/uncross/search"
)

// ClimbOptions holds flags for the climb command. Unset flags fall back to
// the resolved configuration.
type ClimbOptions struct {
	Strategy  string
	MaxRounds int
	TimeLimit time.Duration
}

// NewClimbCommand creates the climb command.
func NewClimbCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClimbOptions{}
	cmd := &cobra.Command{
		Use:   "climb",
		Short: "Hill-climb towards a tour without crossings",
		Long: `Repeatedly replace the tour by one of its 2-opt uncrossing neighbors.

Strategies:
  best    shortest neighbor, only when strictly shorter
  first   first neighbor, unconditionally
  least   neighbor with strictly fewer crossings (may stop at a local optimum)
  random  uniformly drawn neighbor, unconditionally`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClimb(newRunEnv(rootOpts, cmd), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", "", "best|first|least|random or 1-4 (default from config)")
	cmd.Flags().IntVar(&opts.MaxRounds, "max-rounds", 0, "stop after this many rounds (0 = unlimited)")
	cmd.Flags().DurationVar(&opts.TimeLimit, "time-limit", 0, "soft wall-clock budget (0 = unlimited)")
	return cmd
}

func runClimb(e *runEnv, opts *ClimbOptions) error {
	so, err := e.opts.Config.SearchOptions()
	if err != nil {
		return e.fail(ErrCodeConfig, "search options", err)
	}
	flags := e.cmd.Flags()
	if flags.Changed("strategy") {
		if so.Strategy, err = search.ParseStrategy(opts.Strategy); err != nil {
			return e.fail(ErrCodeConfig, "parse --strategy", err)
		}
	}
	if flags.Changed("max-rounds") {
		so.MaxRounds = opts.MaxRounds
	}
	if flags.Changed("time-limit") {
		so.TimeLimit = opts.TimeLimit
	}

	src, err := e.loadTour()
	if err != nil {
		return e.fail(ErrCodeInput, "load points", err)
	}

	engine := "climb/" + so.Strategy.String()
	onRound, closeTrace, err := e.observer(engine)
	if err != nil {
		return e.fail(ErrCodeOutput, "open trace", err)
	}
	so.Rand = e.rng
	so.OnRound = onRound

	e.log.Info("hill climbing started", "strategy", so.Strategy.String(), "points", src.Len())
	res, err := search.HillClimb(src, so)
	if traceErr := closeTrace(); traceErr != nil {
		return e.fail(ErrCodeOutput, "write trace", traceErr)
	}
	switch {
	case errors.Is(err, search.ErrTimeLimit):
		e.log.Warn("time limit reached, returning the current tour", "rounds", res.Rounds)
	case err != nil:
		return e.fail(ErrCodeEngine, "hill climbing", err)
	}
	logStop(e, res.Stop, res.Crossings)

	report := newTourReport("climb", src, res.Tour)
	report.Engine = engine
	report.Rounds = res.Rounds
	report.Moves = res.Moves
	report.Stop = res.Stop.String()
	if report.Saved, err = e.save(res.Tour); err != nil {
		return e.fail(ErrCodeOutput, "save result", err)
	}
	return e.succeed(report)
}

// logStop reports how a run ended.
func logStop(e *runEnv, stop search.StopReason, crossings int) {
	switch stop {
	case search.StopSimple:
		e.log.Info("tour is simple", "stop", stop.String())
	case search.StopLocalOptimum:
		e.log.Warn("converged on a local optimum", "crossings", crossings)
	default:
		e.log.Warn("stopped before the tour became simple", "stop", stop.String(), "crossings", crossings)
	}
}
