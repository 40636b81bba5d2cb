// Package cli implements the uncross command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/uncross/config"
)

// RootOptions holds the global flags and the settings resolved from them.
type RootOptions struct {
	ConfigPath string
	EnvFile    string
	LogLevel   string
	Format     string // "text" | "json"
	Seed       int64

	Points string // point file, "-" for stdin
	Count  int    // random point count when Points is empty
	Bound  int    // coordinate bound for random and manual points
	Out    string // save the resulting tour here
	Trace  string // JSON-lines progress file

	// Resolved in PersistentPreRunE.
	Config config.Config
	Logger *slog.Logger
}

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{"text", "json"}

// NewRootCommand builds the uncross command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "uncross",
		Short: "Remove self-intersections from Euclidean tours",
		Long: `uncross drives a closed tour over integer points towards a simple polygon
by repeatedly applying 2-opt moves that undo edge crossings.

Points come from a file (--points, "-" for stdin) with one "x y" pair per
line, or are generated at random (--count with --bound).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "YAML configuration file")
	pf.StringVar(&opts.EnvFile, "env-file", config.DefaultEnvFile, "optional .env file with UNCROSS_* variables")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	pf.Int64Var(&opts.Seed, "seed", 0, "random seed (0 = fixed default)")
	pf.StringVarP(&opts.Points, "points", "p", "", `point file, "-" reads stdin`)
	pf.IntVarP(&opts.Count, "count", "n", 0, "number of random points to generate")
	pf.IntVarP(&opts.Bound, "bound", "m", 0, "coordinate bound: points lie in [-m, m]")
	pf.StringVarP(&opts.Out, "out", "o", "", "save the resulting tour to this file")
	pf.StringVar(&opts.Trace, "trace", "", "write per-round progress as JSON lines")

	cmd.AddCommand(NewShuffleCommand(opts))
	cmd.AddCommand(NewNearestCommand(opts))
	cmd.AddCommand(NewNeighborsCommand(opts))
	cmd.AddCommand(NewClimbCommand(opts))
	cmd.AddCommand(NewAnnealCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))

	return cmd
}

// resolve merges defaults, the config file, the environment and flags, then
// installs the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	if !isValidFormat(o.Format) {
		return NewExitError(ExitFailure, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitFailure, "load config", err)
	}
	if err := cfg.ApplyEnv(o.EnvFile); err != nil {
		return WrapExitError(ExitFailure, "apply environment", err)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = o.Seed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.LogLevel
	}
	if flags.Changed("format") {
		cfg.Log.Format = o.Format
	}
	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitFailure, "invalid settings", err)
	}
	o.Config = cfg

	level, _ := config.ParseLevel(cfg.Log.Level)
	o.Logger = newLogger(cmd.ErrOrStderr(), cfg.Log.Format, level)
	slog.SetDefault(o.Logger)
	return nil
}

// newLogger returns a JSON handler for json format, text otherwise.
func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
