// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"math"
	"path"

	"github.com/dbrizard/elwaspatid/ana"
	"github.com/dbrizard/elwaspatid/inp"
	"github.com/dbrizard/elwaspatid/out"
	"github.com/spf13/cobra"
)

// runCommand creates the run command
func (c *CLI) runCommand() *cobra.Command {
	var (
		alias  string
		dirout string
		erase  bool
	)
	cmd := &cobra.Command{
		Use:   "run [file.bar|file.json|file.toml]",
		Short: "Solve the propagation described by a simulation file",
		Long: `Solve the propagation described by a simulation file.

Results are saved to <dirout>/<key>_res.<encoder> with a summary
<dirout>/<key>_sum.<encoder>, and probes are exported to the formats
listed in the output section (csv, xlsx).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRun(cmd.Context(), args[0], alias, dirout, erase)
		},
	}
	cmd.Flags().StringVarP(&alias, "alias", "a", "", "word added to the simulation key")
	cmd.Flags().StringVarP(&dirout, "dirout", "o", "", "output directory (default: from file)")
	cmd.Flags().BoolVar(&erase, "erase", true, "erase previous results with the same key")
	return cmd
}

func (c *CLI) runRun(ctx context.Context, fn, alias, dirout string, erase bool) error {
	logger := loggerFromContext(ctx)

	sim, err := inp.ReadSim(fn, alias)
	if err != nil {
		return err
	}
	if dirout != "" {
		sim.DirOut = dirout
	}
	logger.Debug("simulation read", "key", sim.Key, "solver", sim.Solver.Type, "dirout", sim.DirOut)
	if err = sim.PrepareDirOut(erase); err != nil {
		return err
	}

	prog := newProgress(logger)
	res, err := simulate(sim)
	if err != nil {
		return fmt.Errorf("simulate %s: %w", fn, err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	prog.done(fmt.Sprintf("Solved %d steps on %d nodes", res.Nsteps(), res.Nnodes()))

	// save
	if err = res.Save(sim.DirOut, sim.Key, sim.EncType, false); err != nil {
		return fmt.Errorf("save results: %w", err)
	}
	files := []string{path.Join(sim.DirOut, fmt.Sprintf("%s_res.%s", sim.Key, sim.EncType))}
	exported, err := res.Export(sim.DirOut, sim.Key, sim.Output.Formats, false)
	if err != nil {
		return err
	}
	files = append(files, exported...)
	sum := out.NewSummary(res, sim.DirOut, sim.Key)
	sum.Files = files
	if err = sum.Save(sim.EncType, false); err != nil {
		return fmt.Errorf("save summary: %w", err)
	}

	// report
	printSuccess("Simulation %s complete", sim.Key)
	if sim.Desc != "" {
		printKeyValue("desc", sim.Desc)
	}
	printKeyValue("solver", sum.Solver)
	printKeyValue("dt", fmt.Sprintf("%g s", sum.Dt))
	printKeyValue("steps", fmt.Sprintf("%d", sum.Nsteps))
	printKeyValue("nodes", fmt.Sprintf("%d", sum.Nnodes))
	printKeyValue("max |F|", fmt.Sprintf("%g N", sum.MaxForce))
	if sum.Nseg > 1 {
		printKeyValue("interfaces", fmt.Sprintf("%d contact, %d separated, %d indented", sum.Ncontact, sum.Nseparated, sum.Nindented))
	}
	if len(res.Probes) > 0 {
		rows := make([][]string, len(res.Probes))
		for i, p := range res.Probes {
			peak, t, _ := res.Peak("F", p.Alias)
			rows[i] = append([]string{p.Alias}, fmtRow(p.X, peak, t)...)
		}
		printTable([]string{"probe", "x [m]", "max |F| [N]", "t [s]"}, rows)
	}
	if sim.Impact != nil {
		if err = c.compareImpact(sim, res); err != nil {
			return err
		}
	}
	for _, f := range files {
		printFile(f)
	}
	return nil
}

// compareImpact compares the analytical impact force to the force at the first probe
func (c *CLI) compareImpact(sim *inp.Simulation, res *out.Results) error {
	var sol ana.ElasticImpact
	if err := sol.Init(sim.Impact.Prms); err != nil {
		return fmt.Errorf("impact: %w", err)
	}
	nterms := sim.Impact.Nterms
	if nterms < 1 {
		nterms = 16
	}
	sol.ComputeImpact(res.Time, nterms, 0.5)
	printKeyValue("impact Fe", fmt.Sprintf("%g N", sol.Fe))
	printKeyValue("impact te", fmt.Sprintf("%g s", sol.Te))
	if len(res.Probes) == 0 {
		return nil
	}
	p := res.Probes[0]
	maxdiff := 0.0
	for i := range res.Time {
		// compression is negative in simulations
		maxdiff = max(maxdiff, math.Abs(sol.Force[i]+p.Force[i]))
	}
	printKeyValue("impact diff", fmt.Sprintf("max |F_ana - F@%s| = %g N", p.Alias, maxdiff))
	return nil
}
