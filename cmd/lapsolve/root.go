// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/lvlap/instance"
	"github.com/katalvlaran/lvlap/internal/config"
	"github.com/katalvlaran/lvlap/internal/logging"
	"github.com/katalvlaran/lvlap/lap"
	"github.com/katalvlaran/lvlap/telemetry"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgPath     string
	strategy    string
	format      string
	metricsFile string
	trace       bool
	nonAssign   float64

	cfg   *config.Config
	strat lap.Strategy
	log   zerolog.Logger
	reg   *prometheus.Registry
	rec   *telemetry.Recorder
	tp    *sdktrace.TracerProvider
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	root := &cobra.Command{
		Use:               "lapsolve",
		Short:             "Solve linear assignment problems",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "configuration file (yaml or json)")
	pf.StringVarP(&a.strategy, "strategy", "s", "", "solver: dense, sparse or sparse-jv")
	pf.StringVarP(&a.format, "format", "f", "", "output format: text, json, yaml, toml, csv or cbor")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile on exit")
	pf.BoolVar(&a.trace, "trace", false, "export solve spans to stderr")
	pf.Float64Var(&a.nonAssign, "non-assign-cost", 0, "let rectangular instances leave rows and columns unmatched at this cost")

	root.AddCommand(
		newSolveCmd(a),
		newBatchCmd(a),
		newGenCmd(a),
		newBenchCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads configuration, applies flag overrides and builds the logger,
// metrics registry and tracer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.strategy != "" {
		cfg.Solver.Strategy = a.strategy
	}
	if a.format != "" {
		cfg.Output.Format = a.format
	}
	if a.metricsFile != "" {
		cfg.Metrics.Textfile = a.metricsFile
	}
	if a.trace {
		cfg.Tracing.Enabled = true
	}
	if a.nonAssign != 0 {
		cfg.Solver.NonAssignCost = a.nonAssign
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	if a.strat, err = lap.ParseStrategy(cfg.Solver.Strategy); err != nil {
		return err
	}

	if a.log, err = logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return err
	}
	a.reg = prometheus.NewRegistry()
	if a.rec, err = telemetry.NewRecorder(a.reg); err != nil {
		return err
	}
	if cfg.Tracing.Enabled {
		if a.tp, err = telemetry.NewStdoutProvider(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	return nil
}

// run wraps a subcommand so that spans are flushed and metrics written
// whether or not it fails.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if a.tp != nil {
			err = errors.Join(err, a.tp.Shutdown(context.WithoutCancel(cmd.Context())))
		}
		if a.cfg != nil && a.cfg.Metrics.Textfile != "" {
			err = errors.Join(err, telemetry.WriteTextfile(a.cfg.Metrics.Textfile, a.reg))
		}

		return err
	}
}

// solveSource runs the configured strategy on src and records metrics.
// A non-square src goes to SolveSparseRectangular when a non-assignment
// cost is configured and to SolveRectangular otherwise.
func (a *app) solveSource(ctx context.Context, src lap.CostSource) (lap.Result, time.Duration, error) {
	var (
		strategy = a.strat
		opts     = append(a.cfg.SolverOptions(), lap.WithLogger(a.log))
		res      lap.Result
		err      error
	)
	opts = append(opts, a.rec.Options()...)

	start := time.Now()
	rows, cols := src.Dimensions()
	switch {
	case rows != cols && a.cfg.Solver.NonAssignCost > 0:
		a.log.Debug().Int("rows", rows).Int("cols", cols).Msg("rectangular instance, diagonal extension")
		res, err = lap.SolveSparseRectangular(src, a.cfg.Solver.NonAssignCost, append(opts, lap.WithContext(ctx))...)
	case rows != cols:
		a.log.Debug().Int("rows", rows).Int("cols", cols).Msg("rectangular instance, padding for dense solver")
		res, err = lap.SolveRectangular(src, append(opts, lap.WithContext(ctx))...)
	case a.tp != nil:
		res, err = telemetry.TracedSolve(ctx, a.tp, strategy, src, a.cfg.Tracing.Events, opts...)
	default:
		res, err = lap.Solve(strategy, src, append(opts, lap.WithContext(ctx))...)
	}
	elapsed := time.Since(start)
	a.rec.Observe(res, elapsed)

	return res, elapsed, err
}

// solveInstance solves in and summarizes the run. With maximize the
// costs are negated before solving and the reported total is flipped
// back. With verify a square result is re-checked against its source.
func (a *app) solveInstance(ctx context.Context, in *instance.Instance, maximize, verify bool) (instance.Report, error) {
	var (
		work = in
		err  error
	)
	if maximize {
		if work, err = in.Negated(); err != nil {
			return a.invalidReport(in.Name, err), err
		}
	}
	src, err := work.Source()
	if err != nil {
		return a.invalidReport(in.Name, err), err
	}

	res, elapsed, err := a.solveSource(ctx, src)
	if err == nil && verify && in.Rows == in.Cols {
		if verr := lap.Verify(src, res, lap.WithEpsilon(a.cfg.Solver.Epsilon)); verr != nil {
			err = fmt.Errorf("%s: %w", in.Name, verr)
		}
	}
	if maximize && res.IsOptimal() {
		res.TotalCost = -res.TotalCost
	}

	ev := a.log.Info()
	if err != nil {
		ev = a.log.Warn().Err(err)
	}
	ev.Str("instance", in.Name).
		Str("status", res.Status.String()).
		Float64("cost", res.TotalCost).
		Dur("elapsed", elapsed).
		Msg("solved")

	return instance.NewReport(in.Name, res, err, elapsed), err
}

func (a *app) invalidReport(name string, err error) instance.Report {
	res := lap.Result{Status: lap.StatusInvalidInput, Stats: lap.Stats{Strategy: a.strat}}

	return instance.NewReport(name, res, err, 0)
}

// output writes reports in the configured format.
func (a *app) output(w io.Writer, reports []instance.Report) error {
	if a.cfg.Output.Format == config.TextFormat {
		return renderReports(w, reports)
	}
	f, err := instance.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}

	return instance.EncodeReports(w, f, reports)
}
