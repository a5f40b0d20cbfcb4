// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlap/instance"
)

func newBatchCmd(a *app) *cobra.Command {
	var flags solveFlags
	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Solve many instance files concurrently",
		Long: "Solve every file with up to solver.workers concurrent solves.\n" +
			"Reports are written in argument order; the command fails if any solve failed.",
		Args: cobra.MinimumNArgs(1),
	}
	flags.bind(cmd)
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		var (
			ctx     = cmd.Context()
			reports = make([]instance.Report, len(args))
			errs    = make([]error, len(args))
			g       errgroup.Group
		)
		g.SetLimit(a.cfg.Solver.Workers)
		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				in, err := instance.Load(path)
				if err != nil {
					reports[i], errs[i] = a.invalidReport(path, err), err
					return nil
				}
				reports[i], errs[i] = a.solveInstance(ctx, in, flags.maximize, flags.verify)
				return nil
			})
		}
		_ = g.Wait()

		if err := a.output(cmd.OutOrStdout(), reports); err != nil {
			return err
		}
		var failed int
		for _, err := range errs {
			if err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d solves failed", failed, len(args))
		}

		return nil
	})

	return cmd
}
