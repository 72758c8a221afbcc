// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bar

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Hete is a heterogeneous bar made of segments of constant properties
// (modulus, density, section). Segments are in contact through interfaces.
//
// Seg is used by the segment solver (WP2); the flattened per-element arrays
// are used by the single matrix solver (Waveprop)
type Hete struct {

	// continuous bar
	Continuous *Bar // the bar before discretization

	// per segment [nseg]
	L    []float64 // discretized lengths; Nelt * Dx
	Dx   []float64 // length of elements
	Nelt []int     // number of elements
	Ind  []int     // index of first element of each segment; last value is the total number of elements [nseg+1]

	// per element [nelt]
	E []float64 // Young's moduli
	D []float64 // diameters
	A []float64 // areas
	Z []float64 // impedances

	// nodes and time
	X  []float64 // abscissae of nodes [nelt+1]
	Dt float64   // time step

	// segments
	Seg []*Segment // all segments
}

// NewHete defines and discretizes a bar made of segments of constant properties
//  Input:
//   E, rho, L, d -- Young's moduli, densities, lengths and diameters of segments
//   dt           -- time step; 0 means automatic, from nmin
//   nmin         -- minimum number of elements in a segment; used if dt == 0
//   right        -- right end condition of the last segment
func NewHete(E, rho, L, d []float64, dt float64, nmin int, right End) (o *Hete, err error) {

	// continuous bar
	cont, err := NewBar(E, rho, L, d)
	if err != nil {
		return
	}
	if !right.Outer() {
		return nil, chk.Err("right end of bar must be free, fixed or infinite. %q is invalid", right)
	}
	nseg := cont.Npieces()

	// time step
	if dt < 0 {
		return nil, chk.Err("time step must be non-negative. dt=%g is invalid", dt)
	}
	if dt == 0 {
		if nmin < 1 {
			return nil, chk.Err("minimum number of elements must be at least 1. nmin=%d is invalid", nmin)
		}
		dt = math.Inf(1)
		for i := 0; i < nseg; i++ {
			dt = math.Min(dt, L[i]/float64(nmin)/cont.Co[i])
		}
	}

	// discretization of segments
	o = new(Hete)
	o.Continuous = cont
	o.Dt = dt
	o.L = make([]float64, nseg)
	o.Dx = make([]float64, nseg)
	o.Nelt = make([]int, nseg)
	o.Ind = make([]int, nseg+1)
	for i := 0; i < nseg; i++ {
		o.Dx[i] = cont.Co[i] * dt
		o.Nelt[i] = int(math.RoundToEven(L[i] / o.Dx[i]))
		if o.Nelt[i] < 1 {
			return nil, chk.Err("segment %d is too short (L=%g) for time step dt=%g", i, L[i], dt)
		}
		o.L[i] = float64(o.Nelt[i]) * o.Dx[i]
		o.Ind[i+1] = o.Ind[i] + o.Nelt[i]
	}

	// per element and nodes
	nelt := o.Ind[nseg]
	o.E = make([]float64, nelt)
	o.D = make([]float64, nelt)
	o.A = make([]float64, nelt)
	o.Z = make([]float64, nelt)
	o.X = make([]float64, nelt+1)
	for i := 0; i < nseg; i++ {
		for e := o.Ind[i]; e < o.Ind[i+1]; e++ {
			o.E[e] = cont.E[i]
			o.D[e] = cont.D[i]
			o.A[e] = cont.A[i]
			o.Z[e] = cont.Z[i]
			o.X[e+1] = o.X[e] + o.Dx[i]
		}
	}

	// segments
	o.Seg = make([]*Segment, nseg)
	for i := 0; i < nseg; i++ {
		left, rght := Interf, Interf
		xo := 0.0
		if i == 0 {
			left = Impact
		} else {
			xo = o.Seg[i-1].X[o.Seg[i-1].NX-1]
		}
		if i == nseg-1 {
			rght = right
		}
		o.Seg[i] = NewSegment(o.Nelt[i], cont.Z[i], cont.E[i], o.L[i], o.Dx[i], dt, xo, left, rght)
	}
	return
}

// Nseg returns the number of segments
func (o *Hete) Nseg() int { return len(o.Seg) }

// ChangeSection changes the section of the right part of a segment, starting at local abscissa l
func (o *Hete) ChangeSection(iseg int, l, d float64) (err error) {
	if iseg < 0 || iseg >= len(o.Seg) {
		return chk.Err("segment index %d is out of range [0, %d)", iseg, len(o.Seg))
	}
	if d <= 0 {
		return chk.Err("diameter must be positive. d=%g is invalid", d)
	}
	a := Area(d)
	z := a * o.Continuous.Rho[iseg] * o.Continuous.Co[iseg]
	seg := o.Seg[iseg]
	err = seg.ResetImpedance(l, z)
	if err != nil {
		return
	}

	// keep flattened arrays consistent
	for k, zk := range seg.Z {
		e := o.Ind[iseg] + k
		if zk == z {
			o.Z[e] = z
			o.A[e] = a
			o.D[e] = d
		}
	}
	return
}

// Nodes returns the abscissae of nodes
func (o *Hete) Nodes() []float64 { return o.X }

// Impedances returns the impedance of each element
func (o *Hete) Impedances() []float64 { return o.Z }

// Areas returns the area of each element
func (o *Hete) Areas() []float64 { return o.A }

// Moduli returns the Young's modulus of each element
func (o *Hete) Moduli() []float64 { return o.E }

// Lengths returns the length of each element
func (o *Hete) Lengths() []float64 { return elemLengths(o.X) }

// TimeStep returns the time step
func (o *Hete) TimeStep() float64 { return o.Dt }

// Nelems returns the total number of elements
func (o *Hete) Nelems() int { return o.Ind[len(o.Ind)-1] }

// String returns the description of all segments
func (o *Hete) String() string {
	var b bytes.Buffer
	io.Ff(&b, "===========\n")
	for _, s := range o.Seg {
		io.Ff(&b, "%s", s.String())
		io.Ff(&b, "===========\n")
	}
	return b.String()
}
