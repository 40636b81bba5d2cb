package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/uncross/search"
)

// AnnealOptions holds flags for the anneal command. Unset flags fall back to
// the resolved configuration.
type AnnealOptions struct {
	Accept      string
	InitialTemp float64
	Cooling     float64
	MinTemp     float64
	Steps       int
	MaxSteps    int
	TimeLimit   time.Duration
}

// NewAnnealCommand creates the anneal command.
func NewAnnealCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnnealOptions{}
	cmd := &cobra.Command{
		Use:   "anneal",
		Short: "Simulated annealing over uncrossing moves",
		Long: `Random walk over 2-opt uncrossing neighbors under a cooling schedule.

With --accept metropolis (default) a move that adds crossings is taken with
probability exp(-Δ/T); with --accept always every drawn move is taken.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnneal(newRunEnv(rootOpts, cmd), opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.Accept, "accept", "", "metropolis|always (default from config)")
	f.Float64Var(&opts.InitialTemp, "initial-temp", search.DefaultInitialTemp, "starting temperature")
	f.Float64Var(&opts.Cooling, "cooling", search.DefaultCooling, "temperature factor per round, in (0,1)")
	f.Float64Var(&opts.MinTemp, "min-temp", search.DefaultMinTemp, "stop once the temperature falls to this value")
	f.IntVar(&opts.Steps, "steps", 0, "steps per temperature round (0 = n·(n-1))")
	f.IntVar(&opts.MaxSteps, "max-steps", 0, "stop after this many steps in total (0 = unlimited)")
	f.DurationVar(&opts.TimeLimit, "time-limit", 0, "soft wall-clock budget (0 = unlimited)")
	return cmd
}

func runAnneal(e *runEnv, opts *AnnealOptions) error {
	ao, err := e.opts.Config.AnnealOptions()
	if err != nil {
		return e.fail(ErrCodeConfig, "anneal options", err)
	}
	flags := e.cmd.Flags()
	if flags.Changed("accept") {
		if ao.Acceptance, err = search.ParseAcceptance(opts.Accept); err != nil {
			return e.fail(ErrCodeConfig, "parse --accept", err)
		}
	}
	if flags.Changed("initial-temp") {
		ao.InitialTemp = opts.InitialTemp
	}
	if flags.Changed("cooling") {
		ao.Cooling = opts.Cooling
	}
	if flags.Changed("min-temp") {
		ao.MinTemp = opts.MinTemp
	}
	if flags.Changed("steps") {
		ao.StepsPerRound = opts.Steps
	}
	if flags.Changed("max-steps") {
		ao.MaxSteps = opts.MaxSteps
	}
	if flags.Changed("time-limit") {
		ao.TimeLimit = opts.TimeLimit
	}
	if err := ao.Validate(); err != nil {
		return e.fail(ErrCodeConfig, "anneal options", err)
	}

	src, err := e.loadTour()
	if err != nil {
		return e.fail(ErrCodeInput, "load points", err)
	}

	engine := "anneal/" + ao.Acceptance.String()
	onRound, closeTrace, err := e.observer(engine)
	if err != nil {
		return e.fail(ErrCodeOutput, "open trace", err)
	}
	ao.Rand = e.rng
	ao.OnRound = onRound

	e.log.Info("annealing started",
		"acceptance", ao.Acceptance.String(),
		"initial_temp", ao.InitialTemp,
		"cooling", ao.Cooling,
		"min_temp", ao.MinTemp,
		"points", src.Len(),
	)
	res, err := search.Anneal(src, ao)
	if traceErr := closeTrace(); traceErr != nil {
		return e.fail(ErrCodeOutput, "write trace", traceErr)
	}
	switch {
	case errors.Is(err, search.ErrTimeLimit):
		e.log.Warn("time limit reached, returning the current tour", "steps", res.Steps)
	case err != nil:
		return e.fail(ErrCodeEngine, "annealing", err)
	}
	logStop(e, res.Stop, res.Crossings)

	report := newTourReport("anneal", src, res.Tour)
	report.Engine = engine
	report.Rounds = res.Rounds
	report.Steps = res.Steps
	report.Accepted = res.Accepted
	report.Rejected = res.Rejected
	report.FinalTemp = res.FinalTemp
	report.Stop = res.Stop.String()
	if report.Saved, err = e.save(res.Tour); err != nil {
		return e.fail(ErrCodeOutput, "save result", err)
	}
	return e.succeed(report)
}
