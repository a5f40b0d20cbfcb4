// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlap/builder"
	"github.com/katalvlaran/lvlap/instance"
	"github.com/katalvlaran/lvlap/internal/config"
	"github.com/katalvlaran/lvlap/lap"
)

var benchStrategies = lap.Strategies

type benchFlags struct {
	n       int
	runs    int
	density float64
	seed    int64
}

// benchRow aggregates the runs of one strategy.
type benchRow struct {
	total, fastest, slowest time.Duration
	phases, expansions      int
}

func newBenchCmd(a *app) *cobra.Command {
	var f benchFlags
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare every strategy on random sparse instances",
		Long: "Generate --runs random sparse instances with a planted perfect matching,\n" +
			"solve each with every strategy and check that all optimal costs agree.",
		Args: cobra.NoArgs,
	}
	fl := cmd.Flags()
	fl.IntVarP(&f.n, "size", "n", 200, "number of rows and columns")
	fl.IntVar(&f.runs, "runs", 5, "instances to generate")
	fl.Float64Var(&f.density, "density", 0.05, "edge probability")
	fl.Int64Var(&f.seed, "seed", 1, "base seed; run r uses an independent derived stream")

	cmd.RunE = a.run(func(cmd *cobra.Command, _ []string) error {
		if f.runs < 1 {
			return fmt.Errorf("bench: --runs must be >= 1")
		}
		var (
			ctx     = cmd.Context()
			rows    = make([]benchRow, len(benchStrategies))
			reports []instance.Report
		)
		for run := 0; run < f.runs; run++ {
			s, err := builder.RandomSparse(f.n, f.density,
				builder.WithRand(builder.DeriveRand(f.seed, uint64(run))),
				builder.WithPlantedMatching(),
				builder.WithIntUniformWeight(0, 1000),
			)
			if err != nil {
				return err
			}
			src, err := lap.FromSparse(s)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("bench-%d", run)

			var ref float64
			for k, strategy := range benchStrategies {
				opts := append(a.cfg.SolverOptions(), lap.WithContext(ctx), lap.WithLogger(a.log))
				start := time.Now()
				res, err := lap.Solve(strategy, src, opts...)
				elapsed := time.Since(start)
				a.rec.Observe(res, elapsed)
				reports = append(reports, instance.NewReport(name, res, err, elapsed))
				if err != nil {
					return fmt.Errorf("%s %s: %w", name, strategy, err)
				}
				if k == 0 {
					ref = res.TotalCost
				} else if math.Abs(res.TotalCost-ref) > 1e-6*math.Max(1, math.Abs(ref)) {
					return fmt.Errorf("%s: %s cost %v disagrees with %s cost %v", name, strategy, res.TotalCost, benchStrategies[0], ref)
				}
				rows[k].add(elapsed, res.Stats)
			}
		}

		if a.cfg.Output.Format != config.TextFormat {
			return a.output(cmd.OutOrStdout(), reports)
		}

		return renderBench(cmd, rows, f.runs)
	})

	return cmd
}

func (b *benchRow) add(d time.Duration, st lap.Stats) {
	if b.total == 0 || d < b.fastest {
		b.fastest = d
	}
	b.slowest = max(b.slowest, d)
	b.total += d
	b.phases += st.Augmentations
	b.expansions += st.CoreExpansions
}

func renderBench(cmd *cobra.Command, rows []benchRow, runs int) error {
	w := cmd.OutOrStdout()
	t, r := newTable(w, "Strategy", "Mean ms", "Min ms", "Max ms", "Phases/run", "Expansions/run")
	ms := func(d time.Duration) string { return strconv.FormatFloat(float64(d.Microseconds())/1000, 'f', 3, 64) }
	for k, b := range rows {
		t.Row(
			benchStrategies[k].String(),
			ms(b.total/time.Duration(runs)),
			ms(b.fastest),
			ms(b.slowest),
			strconv.Itoa(b.phases/runs),
			strconv.Itoa(b.expansions/runs),
		)
	}
	header := r.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	t.StyleFunc(func(row, _ int) lipgloss.Style {
		if row == table.HeaderRow {
			return header
		}
		return cell
	})

	_, err := fmt.Fprintln(w, t.Render())

	return err
}
