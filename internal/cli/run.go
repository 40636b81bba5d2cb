package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/uncross/construct"
	"github.com/katalvlaran/uncross/geom"
	"github.com/katalvlaran/uncross/search"
	"github.com/katalvlaran/uncross/tour"
	"github.com/katalvlaran/uncross/tourio"
)

// runEnv is the per-invocation state shared by every subcommand: one random
// stream, one run ID and the formatter.
type runEnv struct {
	opts  *RootOptions
	cmd   *cobra.Command
	rng   *rand.Rand
	runID string
	log   *slog.Logger
	out   *OutputFormatter
}

func newRunEnv(opts *RootOptions, cmd *cobra.Command) *runEnv {
	runID := uuid.Must(uuid.NewV7()).String()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &runEnv{
		opts:  opts,
		cmd:   cmd,
		rng:   search.NewRand(opts.Config.Seed),
		runID: runID,
		log:   logger.With("run_id", runID, "command", cmd.Name()),
		out:   &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()},
	}
}

// fail reports err through the formatter and returns the matching ExitError.
func (e *runEnv) fail(code, message string, err error) error {
	e.log.Error(message, "code", code, "error", err)
	_ = e.out.Error(e.runID, code, fmt.Sprintf("%s: %v", message, err))
	exitErr := WrapExitError(ExitFailure, message, err)
	exitErr.Reported = true
	return exitErr
}

// succeed prints data.
func (e *runEnv) succeed(data interface{}) error {
	if err := e.out.Success(e.runID, data); err != nil {
		return WrapExitError(ExitFailure, "write output", err)
	}
	return nil
}

// errNoPoints is returned when neither --points nor --count is given.
var errNoPoints = errors.New("no point source: use --points FILE or --count N --bound M")

// loadPoints reads the manual point file or generates random points.
func (e *runEnv) loadPoints() ([]geom.Point, error) {
	o := e.opts
	switch {
	case o.Points != "":
		var (
			pts []geom.Point
			err error
		)
		if o.Points == "-" {
			pts, err = tourio.Read(e.cmd.InOrStdin())
		} else {
			pts, err = tourio.Load(o.Points)
		}
		if err != nil {
			return nil, err
		}
		if e.boundSet() {
			if err := tourio.CheckBounds(pts, o.Bound); err != nil {
				return nil, err
			}
		}
		if len(pts) < tour.MinSize {
			return nil, tour.ErrTooFewPoints
		}
		e.log.Debug("points read", "source", o.Points, "count", len(pts))
		return pts, nil

	case o.Count > 0:
		pts, err := construct.RandomPoints(o.Count, o.Bound, e.rng)
		if err != nil {
			return nil, err
		}
		e.log.Debug("points generated", "count", o.Count, "bound", o.Bound)
		return pts, nil
	}
	return nil, errNoPoints
}

// boundSet reports whether --bound was given; manual points are checked
// against it only then, so --bound 0 admits just the origin.
func (e *runEnv) boundSet() bool {
	f := e.cmd.Flag("bound")
	return f != nil && f.Changed
}

// loadTour wraps loadPoints and builds the tour in input order.
func (e *runEnv) loadTour() (tour.Tour, error) {
	pts, err := e.loadPoints()
	if err != nil {
		return tour.Tour{}, err
	}
	return tour.New(pts)
}

// save writes t to --out when set and returns the path used.
func (e *runEnv) save(t tour.Tour) (string, error) {
	if e.opts.Out == "" {
		return "", nil
	}
	if err := tourio.Save(e.opts.Out, t.Points()); err != nil {
		return "", err
	}
	e.log.Info("result saved", "path", e.opts.Out)
	return e.opts.Out, nil
}

// observer builds the OnRound callback for an engine. It logs every round at
// debug level and, with --trace, appends it to the trace file. The returned
// closer flushes the trace and reports the first write error.
func (e *runEnv) observer(engine string) (func(search.Progress), func() error, error) {
	var (
		tw       *tourio.TraceWriter
		writeErr error
	)
	if e.opts.Trace != "" {
		var err error
		if tw, err = tourio.NewTraceWriter(e.opts.Trace, false); err != nil {
			return nil, nil, err
		}
	}

	onRound := func(p search.Progress) {
		e.log.Debug("round",
			"engine", engine,
			"round", p.Round,
			"crossings", p.Crossings,
			"perimeter", p.Perimeter,
			"moved", p.Moved,
		)
		if tw == nil || writeErr != nil {
			return
		}
		writeErr = tw.Write(tourio.TraceEntry{
			RunID:       e.runID,
			Engine:      engine,
			Round:       p.Round,
			Crossings:   p.Crossings,
			Perimeter:   p.Perimeter,
			Moved:       p.Moved,
			Temperature: p.Temperature,
			Timestamp:   time.Now().UTC(),
		})
	}

	closer := func() error {
		if tw == nil {
			return nil
		}
		if err := tw.Close(); err != nil {
			return err
		}
		if writeErr == nil {
			e.log.Info("trace written", "path", tw.Path())
		}
		return writeErr
	}
	return onRound, closer, nil
}
