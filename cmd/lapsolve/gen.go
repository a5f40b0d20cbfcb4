// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlap/builder"
	"github.com/katalvlaran/lvlap/instance"
	"github.com/katalvlaran/lvlap/internal/config"
)

type genFlags struct {
	kind     string
	n        int
	density  float64
	seed     int64
	planted  bool
	min, max int
	dist     string
	stddev   float64
	rate     float64
	out      string
	name     string
}

func newGenCmd(a *app) *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random instance",
		Long: "Generate a random instance. Kinds:\n" +
			"  dense      integer costs in [min, max]\n" +
			"  sparse     each edge kept with probability --density\n" +
			"  geometric  squared distances between random points in the unit square\n" +
			"Cost distributions (--dist, dense and sparse only):\n" +
			"  int          integers in [min, max]\n" +
			"  uniform      reals in [min, max)\n" +
			"  normal       rounded N((min+max)/2, stddev)\n" +
			"  exponential  rounded Exp(rate)\n" +
			"  constant     every cost equal to min",
		Args: cobra.NoArgs,
	}
	fl := cmd.Flags()
	fl.StringVar(&f.kind, "kind", "dense", "dense, sparse or geometric")
	fl.IntVarP(&f.n, "size", "n", 10, "number of rows and columns")
	fl.Float64Var(&f.density, "density", 0.1, "edge probability for sparse instances")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.BoolVar(&f.planted, "planted", true, "sparse: include one random perfect matching")
	fl.IntVar(&f.min, "min", 0, "smallest integer cost")
	fl.IntVar(&f.max, "max", 100, "largest integer cost")
	fl.StringVar(&f.dist, "dist", "int", "cost distribution: int, uniform, normal, exponential or constant")
	fl.Float64Var(&f.stddev, "stddev", 10, "standard deviation for --dist normal")
	fl.Float64Var(&f.rate, "rate", 0.1, "rate for --dist exponential")
	fl.StringVarP(&f.out, "output", "o", "", "write to this file (format by extension) instead of stdout")
	fl.StringVar(&f.name, "name", "", "instance name")

	cmd.RunE = a.run(func(cmd *cobra.Command, _ []string) error {
		in, err := generate(f)
		if err != nil {
			return err
		}
		a.log.Debug().Str("kind", f.kind).Int("n", f.n).Int64("seed", f.seed).Msg("generated")
		if f.out != "" {
			return instance.Save(f.out, in)
		}

		format := instance.FormatJSON
		if a.cfg.Output.Format != config.TextFormat {
			if format, err = instance.ParseFormat(a.cfg.Output.Format); err != nil {
				return err
			}
		}

		return instance.Encode(cmd.OutOrStdout(), format, in)
	})

	return cmd
}

// generate builds the instance described by f.
func generate(f genFlags) (*instance.Instance, error) {
	if f.min > f.max {
		return nil, fmt.Errorf("gen: --min %d exceeds --max %d", f.min, f.max)
	}
	name := f.name
	if name == "" {
		name = fmt.Sprintf("%s-%d-s%d", f.kind, f.n, f.seed)
	}
	weight, err := f.weight()
	if err != nil {
		return nil, err
	}
	opts := []builder.BuilderOption{builder.WithSeed(f.seed), weight}

	switch f.kind {
	case "dense":
		m, err := builder.RandomDense(f.n, opts...)
		if err != nil {
			return nil, err
		}
		return instance.FromDense(name, m), nil
	case "sparse":
		if f.planted {
			opts = append(opts, builder.WithPlantedMatching())
		}
		s, err := builder.RandomSparse(f.n, f.density, opts...)
		if err != nil {
			return nil, err
		}
		return instance.FromSparse(name, s), nil
	case "geometric":
		m, err := builder.Geometric(f.n, builder.WithSeed(f.seed))
		if err != nil {
			return nil, err
		}
		return instance.FromDense(name, m), nil
	}

	return nil, fmt.Errorf("gen: unknown kind %q", f.kind)
}

// weight maps --dist and its parameters to a builder option.
func (f genFlags) weight() (builder.BuilderOption, error) {
	lo, hi := float64(f.min), float64(f.max)
	switch f.dist {
	case "int":
		return builder.WithIntUniformWeight(f.min, f.max), nil
	case "uniform":
		return builder.WithUniformWeight(lo, hi), nil
	case "normal":
		if f.stddev < 0 {
			return nil, fmt.Errorf("gen: --stddev %g must be >= 0", f.stddev)
		}
		return builder.WithNormalWeight((lo+hi)/2, f.stddev), nil
	case "exponential":
		if f.rate <= 0 {
			return nil, fmt.Errorf("gen: --rate %g must be > 0", f.rate)
		}
		return builder.WithExponentialWeight(f.rate), nil
	case "constant":
		return builder.WithConstantWeight(lo), nil
	}

	return nil, fmt.Errorf("gen: unknown distribution %q", f.dist)
}
