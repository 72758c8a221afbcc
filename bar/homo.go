// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bar

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Homo is a homogeneous (continuous) rod whose section may change from one element to the next.
// Material is the same everywhere, hence the celerity and the time step
type Homo struct {
	E   float64   // Young's modulus
	Rho float64   // density
	Co  float64   // celerity
	Dt  float64   // time step
	Dx  float64   // length of elements
	X   []float64 // abscissae of nodes [nelt+1]
	D   []float64 // diameters [nelt]
	A   []float64 // areas [nelt]
	Z   []float64 // impedances [nelt]
}

// NewHomo discretizes a homogeneous rod
//  Input:
//   dx  -- length of elements
//   d   -- diameter of each element
//   E   -- Young's modulus
//   rho -- density
func NewHomo(dx float64, d []float64, E, rho float64) (o *Homo, err error) {

	// check
	if dx <= 0 || E <= 0 || rho <= 0 {
		return nil, chk.Err("dx, E and rho must be positive. dx=%g E=%g rho=%g is invalid", dx, E, rho)
	}
	if len(d) == 0 {
		return nil, chk.Err("homogeneous bar needs at least one element")
	}

	// input
	o = new(Homo)
	o.E = E
	o.Rho = rho
	o.Dx = dx
	o.D = append([]float64{}, d...)

	// derived
	o.Co = math.Sqrt(E / rho)
	o.Dt = dx / o.Co
	n := len(d)
	o.X = make([]float64, n+1)
	o.A = make([]float64, n)
	o.Z = make([]float64, n)
	for i, di := range d {
		if di <= 0 {
			return nil, chk.Err("element %d has zero impedance (d=%g)", i, di)
		}
		o.A[i] = Area(di)
		o.Z[i] = o.A[i] * rho * o.Co
		o.X[i+1] = float64(i+1) * dx
	}
	return
}

// Nodes returns the abscissae of nodes
func (o *Homo) Nodes() []float64 { return o.X }

// Impedances returns the impedance of each element
func (o *Homo) Impedances() []float64 { return o.Z }

// Areas returns the area of each element
func (o *Homo) Areas() []float64 { return o.A }

// Moduli returns the Young's modulus of each element
func (o *Homo) Moduli() []float64 {
	m := make([]float64, len(o.D))
	for i := range m {
		m[i] = o.E
	}
	return m
}

// Lengths returns the length of each element
func (o *Homo) Lengths() []float64 { return elemLengths(o.X) }

// TimeStep returns the time step
func (o *Homo) TimeStep() float64 { return o.Dt }

// Nelems returns the number of elements
func (o *Homo) Nelems() int { return len(o.D) }
