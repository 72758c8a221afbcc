// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"

	"github.com/dbrizard/elwaspatid/inp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// sweepResult holds the peaks of one discretization
type sweepResult struct {
	nmin  int
	nelt  int
	dt    float64
	peaks []float64
}

// sweepCommand creates the sweep command
func (c *CLI) sweepCommand() *cobra.Command {
	var (
		nmins []int
		jobs  int
	)
	cmd := &cobra.Command{
		Use:   "sweep [file]",
		Short: "Run a simulation with several discretizations",
		Long: `Run the same simulation with several minimum numbers of elements per segment
and report the peak force at each probe (convergence study).

Simulations run concurrently. The time step of the file is ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSweep(cmd.Context(), args[0], nmins, jobs)
		},
	}
	cmd.Flags().IntSliceVar(&nmins, "nmin", []int{2, 4, 8}, "minimum numbers of elements per segment")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "maximum number of concurrent simulations")
	return cmd
}

func (c *CLI) runSweep(ctx context.Context, fn string, nmins []int, jobs int) error {
	logger := loggerFromContext(ctx)
	if len(nmins) == 0 {
		return fmt.Errorf("at least one value of nmin is required")
	}

	// read once to report input errors before starting
	sim, err := inp.ReadSim(fn, "")
	if err != nil {
		return err
	}
	if sim.Bar.Type != "hete" {
		return fmt.Errorf("sweep needs a hete bar; %q bars are discretized without nmin", sim.Bar.Type)
	}

	prog := newProgress(logger)
	results, err := sweep(ctx, fn, nmins, jobs)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Swept %d discretizations", len(nmins)))

	headers := []string{"nmin", "nelt", "dt [s]"}
	for _, p := range sim.Output.Probes {
		headers = append(headers, fmt.Sprintf("max |F@%s| [N]", probeLabel(p)))
	}
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = append([]string{fmt.Sprintf("%d", r.nmin), fmt.Sprintf("%d", r.nelt)}, fmtRow(append([]float64{r.dt}, r.peaks...)...)...)
	}
	printTitle("Convergence")
	printTable(headers, rows)
	return nil
}

// sweep runs one simulation per nmin; results are in the order of nmins
func sweep(ctx context.Context, fn string, nmins []int, jobs int) ([]*sweepResult, error) {
	logger := loggerFromContext(ctx)
	results := make([]*sweepResult, len(nmins))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, nmin := range nmins {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			// each goroutine owns its simulation data
			sim, err := inp.ReadSim(fn, fmt.Sprintf("nmin%d", nmin))
			if err != nil {
				return err
			}
			sim.Bar.Nmin = nmin
			sim.Bar.Dt = 0
			res, err := simulate(sim)
			if err != nil {
				return fmt.Errorf("nmin=%d: %w", nmin, err)
			}
			r := &sweepResult{nmin: nmin, nelt: res.Nnodes() - 1, dt: res.Dt}
			for _, p := range res.Probes {
				peak, _, err := res.Peak("F", p.Alias)
				if err != nil {
					return err
				}
				r.peaks = append(r.peaks, peak)
			}
			logger.Debug("discretization done", "nmin", nmin, "nelt", r.nelt, "max|F|", res.MaxForce())
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
