// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// ElasticImpact implements the force generated by the elastic impact of a cylindrical striker
// on a long cylindrical bar of the same material. Only the cross section may change.
//
//   Bussac M-N, Collet P, Gary G, Lundberg B and Mousavi S (2008) Viscoelastic impact between
//   a cylindrical striker and a long cylindrical bar. Int J of Impact Eng 35(4):226-239
//
//       striker  V →
//      ┌────────────┐┌──────────────────────────────────
//      │     A1     ││               A2
//      └────────────┘└──────────────────────────────────
//      |←─── L ────→|
type ElasticImpact struct {

	// material
	E   float64 // Young's modulus
	Rho float64 // density
	C   float64 // celerity

	// sections: striker and bar
	D [2]float64 // diameters
	A [2]float64 // areas
	Z [2]float64 // impedances

	// interface
	Ratio float64 // r = A1/A2
	Refl  float64 // R = (1-r)/(1+r)

	// striker
	L  float64 // length
	V  float64 // impact velocity
	Te float64 // duration of one round trip 2L/c
	Fe float64 // force of equal impedance impact Z1 V / 2
	M  float64 // mass

	// results
	Time     []float64 // times
	Force    []float64 // force on the bar
	Rn       []float64 // amplitudes (-R)^n of successive steps; only if r > 1
	P1       float64   // momentum of the striker
	MomRatio float64   // ratio of transmitted momentum
	W1       float64   // kinetic energy of the striker
	EneRatio float64   // ratio of transmitted energy
}

// Init initialises this structure
//  Parameters: E, rho, d (both), d1 (striker), d2 (bar), L, V
func (o *ElasticImpact) Init(prms fun.Prms) (err error) {

	// default values
	o.E = 210e9  // [Pa]
	o.Rho = 7800 // [kg/m³]
	o.D = [2]float64{0.03, 0.03}
	o.L = 1 // [m]
	o.V = 5 // [m/s]

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "rho":
			o.Rho = p.V
		case "d":
			o.D = [2]float64{p.V, p.V}
		case "d1":
			o.D[0] = p.V
		case "d2":
			o.D[1] = p.V
		case "L":
			o.L = p.V
		case "V":
			o.V = p.V
		default:
			return chk.Err("ElasticImpact: parameter named %q is invalid", p.N)
		}
	}
	if o.E <= 0 || o.Rho <= 0 || o.L <= 0 || o.D[0] <= 0 || o.D[1] <= 0 {
		return chk.Err("ElasticImpact: E, rho, L and diameters must be positive")
	}

	// derived
	o.C = math.Sqrt(o.E / o.Rho)
	for i, d := range o.D {
		o.A[i] = math.Pi * d * d / 4.0
		o.Z[i] = o.A[i] * math.Sqrt(o.E*o.Rho)
	}
	o.Ratio = o.A[0] / o.A[1]
	o.Refl = (1 - o.Ratio) / (1 + o.Ratio)
	o.Te = 2 * o.L / o.C
	o.Fe = o.Z[0] * o.V / 2
	o.M = o.A[0] * o.L * o.Rho
	return
}

// ComputeImpact computes the force at times t
//  Input:
//   n  -- number of terms of the summation (r > 1)
//   y0 -- value of the Heaviside function at 0
func (o *ElasticImpact) ComputeImpact(t []float64, n int, y0 float64) {
	H := func(x float64) float64 {
		switch {
		case x < 0:
			return 0
		case x > 0:
			return 1
		}
		return y0
	}
	R, te := o.Refl, o.Te
	o.Time = t
	o.Force = make([]float64, len(t))
	o.Rn = nil
	switch {
	case o.Ratio > 1: // striker impedance higher than bar impedance; -1 < R < 0
		o.Rn = make([]float64, n)
		for k := 0; k < n; k++ {
			o.Rn[k] = math.Pow(-R, float64(k))
		}
		for i, ti := range t {
			f := 0.0
			for k := 0; k < n; k++ {
				fk := float64(k)
				f += o.Rn[k] * (H(ti-fk*te) - H(ti-(fk+1)*te))
			}
			o.Force[i] = o.Fe * (1 + R) * f
		}
	case o.Ratio == 1:
		for i, ti := range t {
			o.Force[i] = o.Fe * (H(ti) - H(ti-te))
		}
	default:
		for i, ti := range t {
			o.Force[i] = o.Fe * (1 + R) * (H(ti) - H(ti-te))
		}
	}

	// momentum and energy
	o.P1 = o.M * o.V
	o.W1 = 0.5 * o.M * o.V * o.V
	o.MomRatio, o.EneRatio = 1, 1
	if o.Ratio < 1 {
		o.MomRatio = 2 / (1 + o.Ratio)
		o.EneRatio = 4 * o.Ratio / ((1 + o.Ratio) * (1 + o.Ratio))
	}
}

// HasRn tells whether amplitudes of successive steps are available (striker impedance higher)
func (o *ElasticImpact) HasRn() bool { return len(o.Rn) > 0 }
