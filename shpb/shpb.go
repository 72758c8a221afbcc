// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shpb analyses simulated Split Hopkinson Pressure Bar tests: an input bar, a short
// sample and an output bar in contact, instrumented with strain gauges
package shpb

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/dbrizard/elwaspatid/wave"
)

// analysis methods
const (
	TwoWaveInc = "two-wave-inc" // incident and transmitted waves
	TwoWaveRef = "two-wave-ref" // reflected and transmitted waves
	ThreeWave  = "three-wave"   // all waves
)

// Config holds the description of the test
type Config struct {
	Input       int     // index of the input bar segment; the sample and output bar follow
	GaugeIn     float64 // local abscissa of the gauge on the input bar
	GaugeOut    float64 // local abscissa of the gauge on the output bar
	Method      string  // two-wave-inc, two-wave-ref or three-wave
	Compression bool    // compressive quantities are positive
}

// Response holds the state of the sample computed from its own nodes
type Response struct {
	Time        []float64 // times
	F0          []float64 // force on input face
	Fn          []float64 // force on output face
	Stress      []float64 // mean stress (F0+Fn)/(2A)
	StrainRate  []float64 // (Vn-V0)/l
	Strain      []float64 // time integral of strain rate
	Equilibrium []float64 // 2(Fn-F0)/(Fn+F0)
	A           float64   // area
	L           float64   // length
}

// Analysis holds the results of the classical analysis from gauges signals
type Analysis struct {
	Method     string    // analysis method
	Time       []float64 // times at which waves are known at sample faces
	Inc        []float64 // incident strain at input face
	Ref        []float64 // reflected strain at input face
	Trans      []float64 // transmitted strain at output face
	Stress     []float64 // stress in sample
	StrainRate []float64 // strain rate of sample
	Strain     []float64 // strain of sample
	ShiftIn    int       // number of steps between input gauge and sample
	ShiftOut   int       // number of steps between sample and output gauge
	Sample     *Response // response computed directly from sample nodes
}

// Decompose splits force into right going (F - Z V)/2 and left going (F + Z V)/2 parts
func Decompose(F, V []float64, Z float64) (right, left []float64) {
	right = make([]float64, len(F))
	left = make([]float64, len(F))
	for i := range F {
		right[i] = (F[i] - Z*V[i]) / 2.0
		left[i] = (F[i] + Z*V[i]) / 2.0
	}
	return
}

// SampleResponse computes stress, strain rate, strain and equilibrium of segment iseg
func SampleResponse(wp *wave.WP2, iseg int, compression bool) (o *Response, err error) {
	if iseg < 0 || iseg >= len(wp.Seg) {
		return nil, chk.Err("sample index %d is out of range [0, %d)", iseg, len(wp.Seg))
	}
	s := wp.Seg[iseg]
	n := s.NX - 1
	sgn := sign(compression)
	c := s.Dx / s.Dt
	o = &Response{Time: wp.Time, L: s.Xloc[n]}
	o.A = s.Z[0] * c / s.E
	nT := len(wp.Time)
	o.F0 = make([]float64, nT)
	o.Fn = make([]float64, nT)
	o.Stress = make([]float64, nT)
	o.StrainRate = make([]float64, nT)
	o.Equilibrium = make([]float64, nT)
	for it := 0; it < nT; it++ {
		F0, Fn := s.Force[it][0], s.Force[it][n]
		o.F0[it], o.Fn[it] = sgn*F0, sgn*Fn
		o.Stress[it] = sgn * (F0 + Fn) / (2.0 * o.A)
		o.StrainRate[it] = sgn * (s.Veloc[it][n] - s.Veloc[it][0]) / o.L
		if F0+Fn != 0 {
			o.Equilibrium[it] = 2.0 * (Fn - F0) / (Fn + F0)
		}
	}
	o.Strain = CumTrapz(o.StrainRate, s.Dt)
	return
}

// Analyze computes the response of the sample from the gauges on the input and output bars.
// Waves are shifted to the sample faces by whole numbers of steps. Two-wave methods replace
// the missing wave by assuming the forces on both faces of the sample are equal
func Analyze(wp *wave.WP2, cfg Config) (o *Analysis, err error) {

	// check
	ii, is, iout := cfg.Input, cfg.Input+1, cfg.Input+2
	if ii < 0 || iout >= len(wp.Seg) {
		return nil, chk.Err("input bar %d must be followed by the sample and the output bar (%d segments)", ii, len(wp.Seg))
	}
	method := cfg.Method
	switch method {
	case "", ThreeWave, "threeWave":
		method = ThreeWave
	case TwoWaveInc, "incAndTrans":
		method = TwoWaveInc
	case TwoWaveRef, "refAndTrans":
		method = TwoWaveRef
	default:
		return nil, chk.Err("analysis method %q is invalid. Use %s, %s or %s", cfg.Method, TwoWaveInc, TwoWaveRef, ThreeWave)
	}

	// gauges
	gin, err := wp.SignalLocal(ii, cfg.GaugeIn)
	if err != nil {
		return
	}
	gout, err := wp.SignalLocal(iout, cfg.GaugeOut)
	if err != nil {
		return
	}
	sin, sout := wp.Seg[ii], wp.Seg[iout]
	inc, ref := Decompose(gin.Force, gin.Veloc, sin.Z[gauge(gin.Indx, sin.NX)])
	trans, _ := Decompose(gout.Force, gout.Veloc, sout.Z[gauge(gout.Indx, sout.NX)])

	// shifts to faces
	o = &Analysis{Method: method}
	o.ShiftIn = sin.NX - 1 - gin.Indx
	o.ShiftOut = gout.Indx
	nT := len(wp.Time)
	n := nT - utl.Imax(o.ShiftIn, o.ShiftOut)
	if n < 2 {
		return nil, chk.Err("simulation is too short: gauges are %d and %d steps away from the sample for %d steps", o.ShiftIn, o.ShiftOut, nT)
	}
	o.Time = wp.Time[:n]
	o.Inc = make([]float64, n)
	o.Ref = make([]float64, n)
	o.Trans = make([]float64, n)

	// strains at faces
	sgn := sign(cfg.Compression)
	Eb := sin.E
	Ab := sin.Z[len(sin.Z)-1] * (sin.Dx / sin.Dt) / Eb
	Eo := sout.E
	Ao := sout.Z[0] * (sout.Dx / sout.Dt) / Eo
	for it := 0; it < n; it++ {
		if k := it - o.ShiftIn; k >= 0 {
			o.Inc[it] = sgn * inc[k] / (Eb * Ab)
		}
		o.Ref[it] = sgn * ref[it+o.ShiftIn] / (Eb * Ab)
		o.Trans[it] = sgn * trans[it+o.ShiftOut] / (Eo * Ao)
	}

	// classical formulas; the transmitted wave carries the output bar's own properties
	smp := wp.Seg[is]
	ls := smp.Xloc[smp.NX-1]
	As := smp.Z[0] * (smp.Dx / smp.Dt) / smp.E
	Sb, So := Eb*Ab, Eo*Ao
	k := So / Sb
	cb, co := sin.Dx/sin.Dt, sout.Dx/sout.Dt
	o.Stress = make([]float64, n)
	o.StrainRate = make([]float64, n)
	for it := 0; it < n; it++ {
		ei, er, et := o.Inc[it], o.Ref[it], o.Trans[it]
		switch method {
		case TwoWaveInc:
			o.Stress[it] = So * et / As
			o.StrainRate[it] = (cb*(2*ei-k*et) - co*et) / ls
		case TwoWaveRef:
			o.Stress[it] = So * et / As
			o.StrainRate[it] = (cb*(k*et-2*er) - co*et) / ls
		case ThreeWave:
			o.Stress[it] = 0.5 * (Sb*(ei+er) + So*et) / As
			o.StrainRate[it] = (cb*(ei-er) - co*et) / ls
		}
	}
	o.Strain = CumTrapz(o.StrainRate, sin.Dt)

	// direct response
	o.Sample, err = SampleResponse(wp, is, cfg.Compression)
	return
}

// CumTrapz integrates y with the trapezoidal rule; the first value is zero
func CumTrapz(y []float64, dx float64) []float64 {
	res := make([]float64, len(y))
	for i := 1; i < len(y); i++ {
		res[i] = res[i-1] + (y[i-1]+y[i])*dx/2.0
	}
	return res
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func sign(compression bool) float64 {
	if compression {
		return -1
	}
	return 1
}

// gauge returns the index of the element holding node i
func gauge(i, nx int) int {
	if i >= nx-1 {
		return nx - 2
	}
	return i
}
