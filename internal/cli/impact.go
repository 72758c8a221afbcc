// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"
	"github.com/dbrizard/elwaspatid/ana"
	"github.com/dbrizard/elwaspatid/inp"
	"github.com/dbrizard/elwaspatid/out"
	"github.com/spf13/cobra"
)

// impactOpts holds the flags of the impact command
type impactOpts struct {
	E, Rho, D1, D2, L, V float64
	Tmin, Tmax           float64
	Npts, Nterms         int
	Csv                  string
}

// impactCommand creates the impact command
func (c *CLI) impactCommand() *cobra.Command {
	opts := impactOpts{E: 210e9, Rho: 7800, D1: 0.03, D2: 0.03, L: 1, V: 5, Npts: 1000, Nterms: 16}
	cmd := &cobra.Command{
		Use:   "impact [file]",
		Short: "Analytical force of the impact of a striker on a long bar",
		Long: `Analytical force of the elastic impact of a cylindrical striker on a long
cylindrical bar of the same material (Bussac et al. 2008).

Parameters are given with flags, or by the impact section of a simulation file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn := ""
			if len(args) > 0 {
				fn = args[0]
			}
			return c.runImpact(cmd.Context(), fn, opts)
		},
	}
	cmd.Flags().Float64Var(&opts.E, "E", opts.E, "Young's modulus [Pa]")
	cmd.Flags().Float64Var(&opts.Rho, "rho", opts.Rho, "density [kg/m3]")
	cmd.Flags().Float64Var(&opts.D1, "d1", opts.D1, "diameter of striker [m]")
	cmd.Flags().Float64Var(&opts.D2, "d2", opts.D2, "diameter of bar [m]")
	cmd.Flags().Float64Var(&opts.L, "L", opts.L, "length of striker [m]")
	cmd.Flags().Float64Var(&opts.V, "V", opts.V, "impact velocity [m/s]")
	cmd.Flags().Float64Var(&opts.Tmax, "tmax", 0, "last time [s] (default: 3 round trips in the striker)")
	cmd.Flags().IntVar(&opts.Npts, "npts", opts.Npts, "number of times")
	cmd.Flags().IntVar(&opts.Nterms, "nterms", opts.Nterms, "number of terms of the summation")
	cmd.Flags().StringVar(&opts.Csv, "csv", "", "write t and F to this csv file")
	return cmd
}

func (c *CLI) runImpact(ctx context.Context, fn string, opts impactOpts) error {
	logger := loggerFromContext(ctx)

	prms := fun.Prms{
		&fun.Prm{N: "E", V: opts.E},
		&fun.Prm{N: "rho", V: opts.Rho},
		&fun.Prm{N: "d1", V: opts.D1},
		&fun.Prm{N: "d2", V: opts.D2},
		&fun.Prm{N: "L", V: opts.L},
		&fun.Prm{N: "V", V: opts.V},
	}
	if fn != "" {
		sim, err := inp.ReadSim(fn, "")
		if err != nil {
			return err
		}
		if sim.Impact == nil {
			return fmt.Errorf("simulation file %s has no impact section", fn)
		}
		prms = sim.Impact.Prms
		opts.Tmin, opts.Tmax = sim.Impact.Tmin, sim.Impact.Tmax
		if sim.Impact.Npts > 0 {
			opts.Npts = sim.Impact.Npts
		}
		if sim.Impact.Nterms > 0 {
			opts.Nterms = sim.Impact.Nterms
		}
	}
	if opts.Npts < 2 {
		return fmt.Errorf("number of times must be at least 2. npts=%d is invalid", opts.Npts)
	}

	var sol ana.ElasticImpact
	if err := sol.Init(prms); err != nil {
		return err
	}
	if opts.Tmax <= 0 {
		opts.Tmax = 3 * sol.Te
	}
	sol.ComputeImpact(utl.LinSpace(opts.Tmin, opts.Tmax, opts.Npts), opts.Nterms, 0.5)
	logger.Debug("impact computed", "r", sol.Ratio, "R", sol.Refl, "npts", opts.Npts)

	printTitle("Elastic impact")
	printTable(
		[]string{"r = A1/A2", "R", "c [m/s]", "te [s]", "Fe [N]", "momentum", "energy"},
		[][]string{fmtRow(sol.Ratio, sol.Refl, sol.C, sol.Te, sol.Fe, sol.MomRatio, sol.EneRatio)},
	)
	if sol.HasRn() {
		printKeyValue("(-R)^n", fmt.Sprint(fmtRow(sol.Rn[:min(5, len(sol.Rn))]...)))
	}
	if opts.Csv != "" {
		if err := out.WriteColumns(opts.Csv, []string{"t [s]", "F [N]"}, sol.Time, sol.Force); err != nil {
			return err
		}
		printFile(opts.Csv)
	}
	return nil
}
