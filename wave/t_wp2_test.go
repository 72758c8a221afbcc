// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wave

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/dbrizard/elwaspatid/bar"
)

// striker returns a 0.5 m striker (10 elements) against a 1 m bar (20 elements), both in steel
func striker(tst *testing.T, right bar.End) *bar.Hete {
	b, err := bar.NewHete([]float64{210e9, 210e9}, []float64{7800, 7800}, []float64{0.5, 1}, []float64{0.03, 0.03}, 0, 10, right)
	if err != nil {
		tst.Fatalf("NewHete failed:\n%v", err)
	}
	return b
}

func Test_wp2_01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wp2_01. striker impact")

	b := striker(tst, bar.Free)
	V := 5.0
	o, err := NewWP2(b, nil, SegOpts{Vinit: V})
	if err != nil {
		tst.Errorf("NewWP2 failed:\n%v", err)
		return
	}
	chk.Int(tst, "nT", len(o.Time), 75)

	// force at interface: -Z V / 2 during 2 L / c
	z := b.Z[0]
	left, right, err := o.Interface(0)
	if err != nil {
		tst.Errorf("Interface failed:\n%v", err)
		return
	}
	for it := 1; it <= 20; it++ {
		chk.AnaNum(tst, io.Sf("F[%d]", it), 1e-8, right.Force[it], -z*V/2, false)
		chk.AnaNum(tst, io.Sf("Fl[%d]", it), 1e-8, left.Force[it], -z*V/2, false)
		chk.AnaNum(tst, io.Sf("V[%d]", it), 1e-12, right.Veloc[it], V/2, false)
	}
	for it := 21; it < 30; it++ {
		chk.AnaNum(tst, io.Sf("F[%d]", it), 1e-8, right.Force[it], 0, false)
	}

	// striker stops
	sig, err := o.SignalNode(0, 0)
	if err != nil {
		tst.Errorf("SignalNode failed:\n%v", err)
		return
	}
	chk.Float64(tst, "V striker (start)", 1e-15, sig.Veloc[0], V)
	chk.Float64(tst, "V striker (end)", 1e-12, sig.Veloc[12], 0)

	// contact is lost when the wave reflected at the free end comes back as traction
	chk.Int(tst, "contact rows", len(o.Contact.State), 74)
	for it := 1; it < 75; it++ {
		expected := 1
		if it > 40 {
			expected = 0
		}
		chk.Int(tst, io.Sf("contact[%d]", it), o.Contact.State[it-1][0], expected)
	}
	chk.String(tst, string(o.Seg[0].Right), string(bar.Free))
	chk.String(tst, string(o.Seg[1].Left), string(bar.Free))

	// input bar is not modified
	chk.String(tst, string(b.Seg[0].Right), string(bar.Interf))
	if b.Seg[0].Force != nil {
		tst.Errorf("input segments must not hold results")
	}
}

func Test_wp2_02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wp2_02. compression crosses interfaces")

	b := striker(tst, bar.Infinite)
	incw := TrapezeWave(5, 3, 0, -1e4)
	o, err := NewWP2(b, incw, SegOpts{Nstep: 60})
	if err != nil {
		tst.Errorf("NewWP2 failed:\n%v", err)
		return
	}
	p, err := NewWaveprop(b, incw, PropOpts{Nstep: 60, Right: bar.Infinite})
	if err != nil {
		tst.Errorf("NewWaveprop failed:\n%v", err)
		return
	}

	// same as single matrix solver
	chk.Int(tst, "nX", len(o.Force[0]), 31)
	for it := 0; it < 60; it++ {
		for j := 0; j < 31; j++ {
			chk.AnaNum(tst, io.Sf("F[%d][%d]", it, j), 1e-8, o.Force[it][j], p.Force[it][j], false)
		}
	}
	chk.Array(tst, "xplot", 1e-15, o.Xplot, p.Xplot)

	// contact is kept
	for _, row := range o.Contact.State {
		chk.Ints(tst, "contact", row, []int{1})
	}

	// interface node takes the value of the segment on the right
	chk.Float64(tst, "F @ interface", 1e-15, o.Force[15][10], o.Seg[1].Force[15][0])
}

func Test_wp2_03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wp2_03. signals and states")

	b := striker(tst, bar.Free)
	o, err := NewWP2(b, nil, SegOpts{Vinit: 5, Nstep: 50, NoContactLoss: true})
	if err != nil {
		tst.Errorf("NewWP2 failed:\n%v", err)
		return
	}
	if o.Contact.Enabled || o.Contact.State != nil {
		tst.Errorf("contact loss must be disabled")
	}
	chk.Float64(tst, "threshold", 1e-20, o.Contact.Threshold, DefaultContactLoss)

	// global abscissa
	sig, err := o.Signal(0.77)
	if err != nil {
		tst.Errorf("Signal failed:\n%v", err)
		return
	}
	chk.Int(tst, "iseg", sig.Iseg, 1)
	chk.Int(tst, "indx", sig.Indx, 5)
	chk.Float64(tst, "x", 1e-14, sig.X, 0.75)
	z := b.Z[0]
	for it := 0; it < 10; it++ {
		F := 0.0
		if it > 5 {
			F = -z * 5 / 2
		}
		chk.AnaNum(tst, io.Sf("F[%d]", it), 1e-8, sig.Force[it], F, false)
	}

	// interface: segment on the right
	sig, err = o.Signal(o.Seg[1].X[0])
	if err != nil {
		tst.Errorf("Signal failed:\n%v", err)
		return
	}
	chk.Int(tst, "iseg", sig.Iseg, 1)
	chk.Int(tst, "indx", sig.Indx, 0)

	// local abscissa
	sig, err = o.SignalLocal(0, 0.26)
	if err != nil {
		tst.Errorf("SignalLocal failed:\n%v", err)
		return
	}
	chk.Int(tst, "indx", sig.Indx, 5)
	chk.Float64(tst, "xloc", 1e-14, sig.X, 0.25)
	chk.Array(tst, "D", 1e-20, sig.Displ, colum(o.Seg[0].Displ, 5))

	// state
	indt, states, err := o.GetState(o.Time[12])
	if err != nil {
		tst.Errorf("GetState failed:\n%v", err)
		return
	}
	chk.Int(tst, "indt", indt, 12)
	chk.Int(tst, "nseg", len(states), 2)
	chk.Array(tst, "F", 1e-20, states[1].Force, o.Seg[1].Force[12])
	chk.Array(tst, "x", 1e-20, states[1].X, o.Seg[1].X)

	// deformed
	def := o.Deformed(10)
	chk.Int(tst, "ndef", len(def), 2)
	chk.Float64(tst, "def", 1e-15, def[1][30][3], o.Seg[1].X[3]+10*o.Seg[1].Displ[30][3])

	// stresses
	chk.Int(tst, "nstrain", len(o.Seg[1].Strain[0]), 20)
	chk.Float64(tst, "stress", 1e-6, o.Seg[1].Stress[10][2], 210e9*o.Seg[1].Strain[10][2])

	// errors
	if _, err = o.Signal(-0.1); err == nil {
		tst.Errorf("abscissa before the bar must fail")
	}
	if _, err = o.SignalLocal(2, 0); err == nil {
		tst.Errorf("segment out of range must fail")
	}
	if _, err = o.SignalNode(0, 11); err == nil {
		tst.Errorf("node out of range must fail")
	}
	if _, _, err = o.Interface(1); err == nil {
		tst.Errorf("interface out of range must fail")
	}
	if _, _, err = o.GetState(-1); err == nil {
		tst.Errorf("time before the first time must fail")
	}
	if _, err = NewWP2(b, nil, SegOpts{Nstep: 1}); err == nil {
		tst.Errorf("less than two steps must fail")
	}
	if _, err = NewWP2(b, nil, SegOpts{Left: bar.Impact}); err == nil {
		tst.Errorf("impact after the incident wave must fail")
	}
}

func colum(mat [][]float64, j int) (res []float64) {
	for _, row := range mat {
		res = append(res, row[j])
	}
	return
}

func Test_wp2_04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wp2_04. separation, re-contact and indentation")

	o, err := NewWP2(striker(tst, bar.Free), nil, SegOpts{Vinit: 5})
	if err != nil {
		tst.Errorf("NewWP2 failed:\n%v", err)
		return
	}
	thr := o.Contact.Threshold
	chk.Float64(tst, "threshold", 1e-20, thr, DefaultContactLoss)

	// gap imposed at time index 0 for each call
	sl, sr := o.Seg[0], o.Seg[1]
	gapAt := func(gap float64) int {
		sl.Displ[0][sl.NX-1] = 0
		sr.Displ[0][0] = gap
		separated := []bool{o.Seg[0].Right == bar.Free}
		return o.updateContact(0, separated)[0]
	}
	ends := func(end bar.End) {
		chk.String(tst, string(sl.Right), string(end))
		chk.String(tst, string(sr.Left), string(end))
	}

	sl.Right, sr.Left = bar.Interf, bar.Interf
	chk.Int(tst, "small gap", gapAt(0.5*thr), 1)
	ends(bar.Interf)

	chk.Int(tst, "separation", gapAt(2*thr), 0)
	ends(bar.Free)

	chk.Int(tst, "still open", gapAt(0.5*thr), 0)
	ends(bar.Free)

	chk.Int(tst, "closed", gapAt(0), 1)
	ends(bar.Interf)

	chk.Int(tst, "indentation", gapAt(-2*thr), -1)
	ends(bar.Interf)

	chk.Int(tst, "contact again", gapAt(-0.5*thr), 1)
	ends(bar.Interf)
}
