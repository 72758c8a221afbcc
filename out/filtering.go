// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/dbrizard/elwaspatid/wave"
)

// Locator defines interface for locating nodes where time histories are recorded
type Locator interface {
	Locate(res *Results) (*Probe, error)
}

// At implements locator at the last node with global abscissa <= x
type At float64

// AtSeg implements locator at the last node of a segment with local abscissa <= X (wp2 only)
type AtSeg struct {
	Iseg int     // index of segment
	X    float64 // local abscissa
}

// N implements node locator: index of node in segment (wp2) or in bar (waveprop; Iseg is ignored)
type N struct {
	Iseg int // index of segment
	Indx int // index of node
}

// Probe holds the time histories at one node
type Probe struct {
	Alias string    // name of probe
	X     float64   // global abscissa of node
	Iseg  int       // index of segment; 0 for waveprop
	Indx  int       // index of node in segment (wp2) or bar (waveprop)
	Force []float64 // normal force [nT]
	Veloc []float64 // particle velocity [nT]
	Displ []float64 // displacement [nT]
}

// Locate finds the node
func (o At) Locate(res *Results) (*Probe, error) {
	if res.wp2 != nil {
		sig, err := res.wp2.Signal(float64(o))
		if err != nil {
			return nil, err
		}
		return fromSignal(sig, sig.X), nil
	}
	c, err := res.prop.CutAtX(float64(o))
	if err != nil {
		return nil, err
	}
	return fromCut(c, res.X[c.Index]), nil
}

// Locate finds the node
func (o AtSeg) Locate(res *Results) (*Probe, error) {
	if res.wp2 == nil {
		return nil, chk.Err("locator at segment %d needs results of the %s solver", o.Iseg, SolverWP2)
	}
	sig, err := res.wp2.SignalLocal(o.Iseg, o.X)
	if err != nil {
		return nil, err
	}
	return fromSignal(sig, res.wp2.Seg[sig.Iseg].X[sig.Indx]), nil
}

// Locate finds the node
func (o N) Locate(res *Results) (*Probe, error) {
	if res.wp2 != nil {
		sig, err := res.wp2.SignalNode(o.Iseg, o.Indx)
		if err != nil {
			return nil, err
		}
		return fromSignal(sig, res.wp2.Seg[sig.Iseg].X[sig.Indx]), nil
	}
	c, err := res.prop.CutAtXIndex(o.Indx)
	if err != nil {
		return nil, err
	}
	return fromCut(c, res.X[c.Index]), nil
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func fromSignal(sig *wave.Signal, x float64) *Probe {
	return &Probe{X: x, Iseg: sig.Iseg, Indx: sig.Indx, Force: sig.Force, Veloc: sig.Veloc, Displ: sig.Displ}
}

func fromCut(c *wave.Cut, x float64) *Probe {
	return &Probe{X: x, Indx: c.Index, Force: c.Force, Veloc: c.Veloc, Displ: c.Displ}
}
