// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/dbrizard/elwaspatid/bar"
	"github.com/dbrizard/elwaspatid/inp"
	"github.com/spf13/cobra"
)

// tableCommand creates the table command
func (c *CLI) tableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table [file]",
		Short: "Print the bar described by a simulation file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTable(args[0])
		},
	}
}

func (c *CLI) runTable(fn string) error {
	sim, err := inp.ReadSim(fn, "")
	if err != nil {
		return err
	}
	b, err := sim.BuildBar()
	if err != nil {
		return err
	}
	switch o := b.(type) {
	case *bar.Hete:
		printTitle("Continuous bar")
		rows := o.Continuous.Rows()
		trows := make([][]string, len(rows))
		for i, r := range rows {
			trows[i] = fmtRow(r...)
		}
		printTable(bar.TableHeader, trows)
		printTitle("Discretization")
		drows := make([][]string, o.Nseg())
		for i, s := range o.Seg {
			drows[i] = append([]string{fmt.Sprintf("%d", i), fmt.Sprintf("%d", o.Nelt[i])}, fmtRow(s.Dx, s.L, s.X[0])...)
		}
		printTable([]string{"segment", "nelt", "dx [m]", "L [m]", "x0 [m]"}, drows)
	case *bar.Homo:
		printTitle("Homogeneous bar")
		printKeyValue("E", fmt.Sprintf("%g Pa", o.E))
		printKeyValue("rho", fmt.Sprintf("%g kg/m3", o.Rho))
		printKeyValue("c0", fmt.Sprintf("%g m/s", o.Co))
		printKeyValue("dx", fmt.Sprintf("%g m", o.Dx))
	}
	printKeyValue("nelt", fmt.Sprintf("%d", b.Nelems()))
	printKeyValue("dt", fmt.Sprintf("%g s", b.TimeStep()))
	return nil
}
