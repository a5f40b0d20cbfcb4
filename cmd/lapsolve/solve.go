// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlap/instance"
)

type solveFlags struct {
	maximize bool
	verify   bool
}

func (f *solveFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.maximize, "maximize", false, "maximize total cost instead of minimizing")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "re-check optimality of every square result")
}

func newSolveCmd(a *app) *cobra.Command {
	var flags solveFlags
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve one instance file",
		Long: "Solve one instance (json, yaml, toml, csv or cbor, chosen by extension).\n" +
			"Rectangular instances are padded and solved with the dense solver, or\n" +
			"with --non-assign-cost solved sparsely with unmatched rows and columns allowed.",
		Args: cobra.ExactArgs(1),
	}
	flags.bind(cmd)
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		in, err := instance.Load(args[0])
		if err != nil {
			return err
		}
		report, solveErr := a.solveInstance(cmd.Context(), in, flags.maximize, flags.verify)
		if err = a.output(cmd.OutOrStdout(), []instance.Report{report}); err != nil {
			return err
		}

		return solveErr
	})

	return cmd
}
