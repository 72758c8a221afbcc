// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/dbrizard/elwaspatid/bar"
	"github.com/dbrizard/elwaspatid/inp"
	"github.com/dbrizard/elwaspatid/out"
	"github.com/dbrizard/elwaspatid/wave"
)

// simulate runs the solver selected in the simulation file and defines its probes
func simulate(sim *inp.Simulation) (res *out.Results, err error) {
	switch sim.Solver.Type {
	case out.SolverWP2:
		wp, err := solveWP2(sim)
		if err != nil {
			return nil, err
		}
		res = out.FromWP2(wp)
	case out.SolverWaveprop:
		wp, err := solveWaveprop(sim)
		if err != nil {
			return nil, err
		}
		res = out.FromWaveprop(wp)
	default:
		return nil, fmt.Errorf("solver type %q is invalid", sim.Solver.Type)
	}
	for i, p := range sim.Output.Probes {
		var loc out.Locator = out.At(p.X)
		if p.Iseg != nil {
			loc = out.AtSeg{Iseg: *p.Iseg, X: p.X}
		}
		if err = res.Define(probeLabel(p), loc); err != nil {
			return nil, fmt.Errorf("probe %d: %w", i, err)
		}
	}
	return
}

// solveWP2 runs the segment solver
func solveWP2(sim *inp.Simulation) (*wave.WP2, error) {
	b, err := sim.BuildHete()
	if err != nil {
		return nil, fmt.Errorf("build bar: %w", err)
	}
	incw, err := sim.IncidentWave(b.Dt)
	if err != nil {
		return nil, fmt.Errorf("incident wave: %w", err)
	}
	left, right, err := ends(sim.Solver.Left, sim.Solver.Right)
	if err != nil {
		return nil, err
	}
	return wave.NewWP2(b, incw, wave.SegOpts{
		Nstep:         sim.Solver.Nstep,
		Left:          left,
		Right:         right,
		Vinit:         sim.Solver.Vinit,
		ContactLoss:   sim.Solver.ContactLoss,
		NoContactLoss: sim.Solver.NoContactLoss,
	})
}

// solveWaveprop runs the single matrix solver. Without solver right end, the bar's one is used
func solveWaveprop(sim *inp.Simulation) (*wave.Waveprop, error) {
	b, err := sim.BuildBar()
	if err != nil {
		return nil, fmt.Errorf("build bar: %w", err)
	}
	incw, err := sim.IncidentWave(b.TimeStep())
	if err != nil {
		return nil, fmt.Errorf("incident wave: %w", err)
	}
	rgt := sim.Solver.Right
	if rgt == "" {
		rgt = sim.Bar.Right
	}
	left, right, err := ends(sim.Solver.Left, rgt)
	if err != nil {
		return nil, err
	}
	return wave.NewWaveprop(b, incw, wave.PropOpts{
		Nstep:  sim.Solver.Nstep,
		Left:   left,
		Right:  right,
		Vinit:  sim.Solver.Vinit,
		IndV:   sim.Solver.IndV,
		Damper: sim.Solver.Damper,
		Spring: sim.Solver.Spring,
	})
}

// ends parses end conditions; an empty right end stays empty
func ends(l, r string) (left, right bar.End, err error) {
	left, err = bar.ParseEnd(l)
	if err != nil {
		return
	}
	if r != "" {
		right, err = bar.ParseEnd(r)
	}
	return
}

// probeLabel names a probe by its requested location: x (global) or iseg:x (local)
func probeLabel(p *inp.ProbeData) string {
	if p.Iseg != nil {
		return fmt.Sprintf("%d:%g", *p.Iseg, p.X)
	}
	return fmt.Sprintf("%g", p.X)
}
