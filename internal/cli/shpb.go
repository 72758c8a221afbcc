// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"

	"github.com/dbrizard/elwaspatid/inp"
	"github.com/dbrizard/elwaspatid/out"
	"github.com/dbrizard/elwaspatid/shpb"
	"github.com/dbrizard/elwaspatid/wave"
	"github.com/spf13/cobra"
)

// shpbCommand creates the shpb command
func (c *CLI) shpbCommand() *cobra.Command {
	var (
		cfg shpb.Config
		csv string
	)
	cmd := &cobra.Command{
		Use:   "shpb [file]",
		Short: "Run a Split Hopkinson bar simulation and analyse the sample",
		Long: `Run a Split Hopkinson bar simulation with the segment solver and analyse the
response of the sample from gauges on the input and output bars.

The bar must hold an input bar, the sample and an output bar as consecutive segments.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShpb(cmd.Context(), args[0], cfg, csv)
		},
	}
	cmd.Flags().IntVar(&cfg.Input, "input", 0, "index of the input bar segment")
	cmd.Flags().Float64Var(&cfg.GaugeIn, "gauge-in", 0, "local abscissa of the gauge on the input bar [m] (default: middle)")
	cmd.Flags().Float64Var(&cfg.GaugeOut, "gauge-out", 0, "local abscissa of the gauge on the output bar [m] (default: middle)")
	cmd.Flags().StringVar(&cfg.Method, "method", shpb.ThreeWave, "analysis: two-wave-inc, two-wave-ref or three-wave")
	cmd.Flags().BoolVar(&cfg.Compression, "compression", true, "compressive quantities are positive")
	cmd.Flags().StringVar(&csv, "csv", "", "write the sample response to this csv file")
	return cmd
}

func (c *CLI) runShpb(ctx context.Context, fn string, cfg shpb.Config, csv string) error {
	logger := loggerFromContext(ctx)

	sim, err := inp.ReadSim(fn, "")
	if err != nil {
		return err
	}
	prog := newProgress(logger)
	wp, err := solveWP2(sim)
	if err != nil {
		return fmt.Errorf("simulate %s: %w", fn, err)
	}
	prog.done(fmt.Sprintf("Solved %d steps", len(wp.Time)))

	// gauges in the middle of bars by default
	if cfg.Input < 0 || cfg.Input+2 >= len(wp.Seg) {
		return fmt.Errorf("input bar %d must be followed by the sample and the output bar (%d segments)", cfg.Input, len(wp.Seg))
	}
	if cfg.GaugeIn <= 0 {
		cfg.GaugeIn = wp.Seg[cfg.Input].L / 2
	}
	if cfg.GaugeOut <= 0 {
		cfg.GaugeOut = wp.Seg[cfg.Input+2].L / 2
	}
	res, err := shpb.Analyze(wp, cfg)
	if err != nil {
		return err
	}
	smp := res.Sample
	logger.Debug("gauges", "shift in", res.ShiftIn, "shift out", res.ShiftOut)

	printSuccess("SHPB analysis (%s)", res.Method)
	printKeyValue("sample", fmt.Sprintf("l = %g m, A = %g m2", smp.L, smp.A))
	printKeyValue("gauges", fmt.Sprintf("%g m and %g m (%d and %d steps)", cfg.GaugeIn, cfg.GaugeOut, res.ShiftIn, res.ShiftOut))
	n := len(res.Stress)
	printTable(
		[]string{"", "max σ [Pa]", "max dε/dt [1/s]", "final ε [-]"},
		[][]string{
			append([]string{"gauges"}, fmtRow(wave.GetMax([][]float64{res.Stress}), wave.GetMax([][]float64{res.StrainRate}), res.Strain[n-1])...),
			append([]string{"sample"}, fmtRow(wave.GetMax([][]float64{smp.Stress[:n]}), wave.GetMax([][]float64{smp.StrainRate[:n]}), smp.Strain[n-1])...),
		},
	)
	if csv != "" {
		err = out.WriteColumns(csv,
			[]string{"t [s]", "σ [Pa]", "dε/dt [1/s]", "ε [-]", "σ sample [Pa]", "dε/dt sample [1/s]", "ε sample [-]", "equilibrium [-]"},
			res.Time, res.Stress, res.StrainRate, res.Strain, smp.Stress[:n], smp.StrainRate[:n], smp.Strain[:n], smp.Equilibrium[:n])
		if err != nil {
			return err
		}
		printFile(csv)
	}
	return nil
}
