// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling of wave propagation simulations: probes, storage
// of results, summaries and exports
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/dbrizard/elwaspatid/wave"
)

// solver names
const (
	SolverWP2      = "wp2"
	SolverWaveprop = "waveprop"
)

// Results holds the results of one simulation
type Results struct {

	// data
	Solver string      // wp2 or waveprop
	Dt     float64     // time step
	Time   []float64   // times [nT]
	X      []float64   // abscissae of nodes [nX]
	Xplot  []float64   // edges of cells centred on nodes [nX+1]
	Force  [][]float64 // normal force @ nodes [nT][nX]
	Nseg   int         // number of segments; 1 for waveprop
	State  [][]int     // state of interfaces (wp2 only) [nT-1][nseg-1]
	Probes []*Probe    // time histories at defined locations

	// source
	wp2  *wave.WP2
	prop *wave.Waveprop
}

// FromWP2 collects the results of the segment solver
func FromWP2(wp *wave.WP2) (o *Results) {
	o = &Results{Solver: SolverWP2, wp2: wp}
	o.Dt = wp.Bar.Dt
	o.Time = wp.Time
	o.X = wp.Bar.X
	o.Xplot = wp.Xplot
	o.Force = wp.Force
	o.Nseg = len(wp.Seg)
	o.State = wp.Contact.State
	return
}

// FromWaveprop collects the results of the single matrix solver
func FromWaveprop(wp *wave.Waveprop) (o *Results) {
	o = &Results{Solver: SolverWaveprop, prop: wp}
	o.Dt = wp.Bar.TimeStep()
	o.Time = wp.Time
	o.X = wp.Bar.Nodes()
	o.Xplot = wp.Xplot
	o.Force = wp.Force
	o.Nseg = 1
	return
}

// Nsteps returns the number of time steps
func (o *Results) Nsteps() int { return len(o.Time) }

// Nnodes returns the number of nodes
func (o *Results) Nnodes() int { return len(o.X) }

// MaxForce returns the maximum absolute force over all nodes and times
func (o *Results) MaxForce() float64 { return wave.GetMax(o.Force) }

// ContactCount returns the number of (time, interface) pairs in contact, separated and indented
func (o *Results) ContactCount() (contact, separated, indented int) {
	for _, row := range o.State {
		for _, s := range row {
			switch s {
			case 1:
				contact++
			case 0:
				separated++
			case -1:
				indented++
			}
		}
	}
	return
}

// live returns an error if the results were read from file and probes cannot be located
func (o *Results) live() error {
	if o.wp2 == nil && o.prop == nil {
		return chk.Err("results of %s solver were not computed in this run; probes cannot be located", o.Solver)
	}
	return nil
}
