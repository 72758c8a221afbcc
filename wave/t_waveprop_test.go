// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wave

import (
	"io/ioutil"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/dbrizard/elwaspatid/bar"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
	Verbose = true
}

func init() {
	SetLogOutput(ioutil.Discard)
}

// incident returns incw[k] or zero out of range
func incident(incw []float64, k int) float64 {
	if k < 0 || k >= len(incw) {
		return 0
	}
	return incw[k]
}

func uniformBar(tst *testing.T, nelt int, d float64) *bar.Homo {
	dd := make([]float64, nelt)
	for i := range dd {
		dd[i] = d
	}
	b, err := bar.NewHomo(0.01, dd, 210e9, 7800)
	if err != nil {
		tst.Fatalf("NewHomo failed:\n%v", err)
	}
	return b
}

func Test_waveprop01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("waveprop01. anechoic right end")

	b := uniformBar(tst, 10, 0.03)
	incw := TrapezeWave(3, 2, 0, 1e3)
	o, err := NewWaveprop(b, incw, PropOpts{Nstep: 25, Right: bar.Infinite})
	if err != nil {
		tst.Errorf("NewWaveprop failed:\n%v", err)
		return
	}
	chk.Int(tst, "nT", len(o.Time), 25)
	chk.Int(tst, "nX", len(o.Force[0]), 11)
	chk.Float64(tst, "t[3]", 1e-20, o.Time[3], 3*b.Dt)

	// pure right going wave: F(x_j, t_i) = incw[i-1-j] and V = -F/Z
	z := b.Z[0]
	for it := 0; it < 25; it++ {
		for j := 0; j < 11; j++ {
			F := incident(incw, it-1-j)
			chk.AnaNum(tst, io.Sf("F[%d][%d]", it, j), 1e-9, o.Force[it][j], F, false)
			chk.AnaNum(tst, io.Sf("V[%d][%d]", it, j), 1e-12, o.Veloc[it][j], -F/z, false)
		}
	}

	// right going wave: F*V < 0
	chk.Float64(tst, "state", 1e-15, o.State[5][2], -1)
	chk.Float64(tst, "state (at rest)", 1e-15, o.State[1][5], 0)
	chk.Float64(tst, "seuil", 1e-15, o.Seuil, 1e-6)
}

func Test_waveprop02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("waveprop02. free and fixed right ends")

	b := uniformBar(tst, 10, 0.03)
	z := b.Z[0]
	incw := TrapezeWave(3, 2, 0, 1e3)

	// free end: F = 0 and V doubles
	o, err := NewWaveprop(b, incw, PropOpts{Nstep: 25})
	if err != nil {
		tst.Errorf("NewWaveprop failed:\n%v", err)
		return
	}
	for it := 0; it < 25; it++ {
		F := incident(incw, it-11)
		chk.Float64(tst, "F free", 1e-15, o.Force[it][10], 0)
		chk.AnaNum(tst, io.Sf("V free [%d]", it), 1e-12, o.Veloc[it][10], -2*F/z, false)
	}

	// fixed end: V = 0 and F doubles
	o, err = NewWaveprop(b, incw, PropOpts{Nstep: 25, Right: bar.Fixed})
	if err != nil {
		tst.Errorf("NewWaveprop failed:\n%v", err)
		return
	}
	for it := 0; it < 25; it++ {
		F := incident(incw, it-11)
		chk.AnaNum(tst, io.Sf("F fixed [%d]", it), 1e-9, o.Force[it][10], 2*F, false)
		chk.Float64(tst, "V fixed", 1e-15, o.Veloc[it][10], 0)
	}
}

func Test_waveprop03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("waveprop03. transmission through a change of section")

	d := make([]float64, 20)
	for i := range d {
		d[i] = 0.02
		if i >= 10 {
			d[i] = 0.04
		}
	}
	b, err := bar.NewHomo(0.01, d, 210e9, 7800)
	if err != nil {
		tst.Errorf("NewHomo failed:\n%v", err)
		return
	}
	incw := TrapezeWave(3, 2, 0, 1e3)
	o, err := NewWaveprop(b, incw, PropOpts{Nstep: 30, Right: bar.Infinite})
	if err != nil {
		tst.Errorf("NewWaveprop failed:\n%v", err)
		return
	}

	// transmission coefficient 2 Z2 / (Z1 + Z2) with Z2 = 4 Z1
	T := 2.0 * 4.0 / 5.0
	for it := 0; it < 30; it++ {
		chk.AnaNum(tst, io.Sf("F[%d][15]", it), 1e-9, o.Force[it][15], T*incident(incw, it-16), false)
	}
}

func Test_waveprop04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("waveprop04. cuts, displacements and stresses")

	b := uniformBar(tst, 10, 0.03)
	incw := TrapezeWave(3, 2, 0, -1e3)
	o, err := NewWaveprop(b, incw, PropOpts{Nstep: 25, Right: bar.Infinite})
	if err != nil {
		tst.Errorf("NewWaveprop failed:\n%v", err)
		return
	}

	// displacement is the cumulated sum of velocities
	sum := 0.0
	for it := 0; it < 25; it++ {
		sum += o.Veloc[it][3] * b.Dt
		chk.AnaNum(tst, "u", 1e-17, o.Displ[it][3], sum, false)
	}

	// stresses
	chk.Int(tst, "nelt", len(o.Stress[0]), 10)
	for it := 0; it < 25; it++ {
		for e := 0; e < 10; e++ {
			eps := (o.Displ[it][e+1] - o.Displ[it][e]) / 0.01
			chk.AnaNum(tst, "strain", 1e-15, o.Strain[it][e], eps, false)
			chk.AnaNum(tst, "stress", 1e-3, o.Stress[it][e], 210e9*eps, false)
			chk.AnaNum(tst, "stress left", 1e-6, o.StressLeft[it][e], o.Force[it][e]/b.A[e], false)
			chk.AnaNum(tst, "stress right", 1e-6, o.StressRight[it][e], o.Force[it][e+1]/b.A[e], false)
		}
	}

	// cut at x
	c, err := o.CutAtX(0.035)
	if err != nil {
		tst.Errorf("CutAtX failed:\n%v", err)
		return
	}
	chk.Int(tst, "indx", c.Index, 3)
	chk.Array(tst, "time", 1e-20, c.Abscissa, o.Time)
	chk.Float64(tst, "F", 1e-9, c.Force[6], incw[2])
	chk.Float64(tst, "u", 1e-20, c.Displ[20], o.Displ[20][3])

	// cut at t
	c, err = o.CutAtT(o.Time[7] + b.Dt/2)
	if err != nil {
		tst.Errorf("CutAtT failed:\n%v", err)
		return
	}
	chk.Int(tst, "indt", c.Index, 7)
	chk.Array(tst, "x", 1e-20, c.Abscissa, b.X)
	chk.Array(tst, "F", 1e-20, c.Force, o.Force[7])
	chk.Array(tst, "V", 1e-20, c.Veloc, o.Veloc[7])

	// out of range
	if _, err = o.CutAtX(-1); err == nil {
		tst.Errorf("cut before the first node must fail")
	}
	if _, err = o.CutAtT(-1); err == nil {
		tst.Errorf("cut before the first time must fail")
	}
	if _, err = o.CutAtXIndex(11); err == nil {
		tst.Errorf("node index out of range must fail")
	}
	if _, err = o.CutAtTIndex(25); err == nil {
		tst.Errorf("time index out of range must fail")
	}

	// deformed bar and plot edges
	def := o.Deformed(100)
	chk.Float64(tst, "deformed", 1e-15, def[20][4], b.X[4]+100*o.Displ[20][4])
	chk.Int(tst, "xplot", len(o.Xplot), 12)
	chk.Float64(tst, "xplot[0]", 1e-15, o.Xplot[0], -0.005)
	chk.Float64(tst, "xplot[11]", 1e-15, o.Xplot[11], 0.105)

	// another threshold
	o.CompState(2)
	chk.Float64(tst, "seuil", 1e-15, o.Seuil, 2)
	for _, row := range o.State {
		for _, s := range row {
			if s != 0 {
				tst.Errorf("threshold above the range must give null states")
				return
			}
		}
	}
}

func Test_waveprop05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("waveprop05. initial velocity, damper and spring")

	b := uniformBar(tst, 10, 0.03)
	z := b.Z[0]

	// initial velocity everywhere: incident wave is replaced
	o, err := NewWaveprop(b, make([]float64, 5), PropOpts{Nstep: 8, Vinit: 2})
	if err != nil {
		tst.Errorf("NewWaveprop failed:\n%v", err)
		return
	}
	chk.Array(tst, "incw", 1e-12, o.Incw, []float64{z, z, z, z, z})
	chk.Float64(tst, "V[0][5]", 1e-15, o.Veloc[0][5], 2)

	// impact: part of the bar moves; incident wave is ignored
	o, err = NewWaveprop(b, TrapezeWave(3, 2, 0, 1), PropOpts{Nstep: 8, Vinit: 2, IndV: 4})
	if err != nil {
		tst.Errorf("NewWaveprop failed:\n%v", err)
		return
	}
	chk.Int(tst, "len(incw)", len(o.Incw), 0)
	chk.Array(tst, "V[0]", 1e-15, o.Veloc[0], []float64{2, 2, 2, 2, 2, 0, 0, 0, 0, 0, 0})
	if _, err = NewWaveprop(b, nil, PropOpts{Nstep: 8, Vinit: 2, IndV: 11}); err == nil {
		tst.Errorf("indV beyond the last node must fail")
	}

	// damper at free end
	incw := TrapezeWave(3, 2, 0, 1e3)
	C := 0.5 * z
	o, err = NewWaveprop(b, incw, PropOpts{Nstep: 25, Damper: C})
	if err != nil {
		tst.Errorf("NewWaveprop failed:\n%v", err)
		return
	}
	for it := 0; it < 13; it++ {
		F := incident(incw, it-11)
		chk.AnaNum(tst, io.Sf("V damper [%d]", it), 1e-12, o.Veloc[it][10], -2*F/z, false)
		chk.AnaNum(tst, io.Sf("F damper [%d]", it), 1e-9, o.Force[it][10], -C*o.Veloc[it][10], false)
	}

	// spring at fixed end: no displacement, no spring force
	o, err = NewWaveprop(b, incw, PropOpts{Nstep: 25, Right: bar.Fixed, Spring: 1e8})
	if err != nil {
		tst.Errorf("NewWaveprop failed:\n%v", err)
		return
	}
	for it := 0; it < 25; it++ {
		chk.AnaNum(tst, io.Sf("F spring [%d]", it), 1e-9, o.Force[it][10], 2*incident(incw, it-11), false)
	}

	// spring at free end: F = -K u
	K := 1e8
	o, err = NewWaveprop(b, incw, PropOpts{Nstep: 14, Spring: K})
	if err != nil {
		tst.Errorf("NewWaveprop failed:\n%v", err)
		return
	}
	u := 0.0
	for it := 0; it < 14; it++ {
		u += o.Veloc[it][10] * b.Dt
		if it > 0 {
			chk.AnaNum(tst, io.Sf("F spring [%d]", it), 1e-9, o.Force[it][10], -K*u, false)
		}
	}
	if math.Abs(o.Force[13][10]) == 0 {
		tst.Errorf("spring force must not be null once the wave has arrived")
	}
}

func Test_waveprop06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("waveprop06. invalid inputs")

	b := uniformBar(tst, 1, 0.03)
	if _, err := NewWaveprop(b, make([]float64, 10), PropOpts{}); err == nil {
		tst.Errorf("one element bar must fail")
	}
	b = uniformBar(tst, 4, 0.03)
	if _, err := NewWaveprop(b, make([]float64, 1), PropOpts{}); err == nil {
		tst.Errorf("less than two steps must fail")
	}
	if _, err := NewWaveprop(b, make([]float64, 10), PropOpts{Left: bar.Interf}); err == nil {
		tst.Errorf("interface at left end must fail")
	}
	if _, err := NewWaveprop(b, make([]float64, 10), PropOpts{Right: bar.Impact}); err == nil {
		tst.Errorf("impact at right end must fail")
	}
}
