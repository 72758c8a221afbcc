// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wave

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/dbrizard/elwaspatid/bar"
)

// DefaultContactLoss is the default gap above which two segments are no longer in contact [m]
const DefaultContactLoss = 1e-9

// SegOpts holds options of the segment solver
type SegOpts struct {
	Nstep         int     // number of time steps; 0 means 2.5 travels across all segments
	Left          bar.End // left end condition after the incident wave; "" means free
	Right         bar.End // right end condition of the last segment; "" means the bar's one
	Vinit         float64 // initial velocity of the first segment; incident wave is then ignored
	ContactLoss   float64 // gap threshold for contact loss; 0 means DefaultContactLoss. Separated segments become interfaces again once the gap closes
	NoContactLoss bool    // segments always stay in contact
}

// Contact holds the state of interfaces between segments
type Contact struct {
	Enabled   bool    // contact loss is detected
	Threshold float64 // gap threshold [m]
	State     [][]int // 1: contact, 0: separated, -1: indentation [nT-1][nseg-1]
}

// Signal holds the time history at one node of a segment
type Signal struct {
	X     float64   // abscissa of node (global, or local if asked by segment)
	Indx  int       // index of node in segment
	Iseg  int       // index of segment
	Force []float64 // normal force [nT]
	Veloc []float64 // particle velocity [nT]
	Displ []float64 // displacement [nT]
}

// SegState holds the state of one segment at given time
type SegState struct {
	X     []float64 // global abscissae of nodes
	Force []float64 // normal force
	Veloc []float64 // particle velocity
}

// WP2 solves the propagation of an incident wave in a set of segments in contact.
// Traction cannot cross the interfaces and contact may be lost
type WP2 struct {
	Bar     *bar.Hete      // input bar; not modified
	Seg     []*bar.Segment // segments with their time histories
	Time    []float64      // times [nT]
	Force   [][]float64    // force gathered over all nodes of the bar [nT][nX]
	Xplot   []float64      // edges of cells centred on nodes of the bar [nX+1]
	Contact Contact        // state of interfaces
}

// NewWP2 computes the propagation of the incident force wave incw in the segmented bar b
func NewWP2(b *bar.Hete, incw []float64, opts SegOpts) (o *WP2, err error) {

	// check
	if opts.Left == "" {
		opts.Left = bar.Free
	}
	if !opts.Left.Outer() {
		return nil, chk.Err("left end must be free, fixed or infinite. %q is invalid", opts.Left)
	}
	if opts.Right != "" && !opts.Right.Outer() {
		return nil, chk.Err("right end must be free, fixed or infinite. %q is invalid", opts.Right)
	}
	nT := opts.Nstep
	if nT == 0 {
		nT = int(2.5 * float64(b.Nelems()))
		Logger.Info("number of steps set to 2.5 travels across all segments", "nstep", nT)
	}
	if nT < 2 {
		return nil, chk.Err("number of time steps must be at least 2. nstep=%d is invalid", nT)
	}

	// segments and initial conditions
	o = &WP2{Bar: b}
	nseg := b.Nseg()
	o.Seg = make([]*bar.Segment, nseg)
	for i, s := range b.Seg {
		o.Seg[i] = s.Clone()
		if i == 0 && opts.Vinit != 0 {
			o.Seg[i].InitCalc(nT, opts.Vinit)
			if len(incw) > 0 {
				Logger.Warn("incident wave is ignored with initial velocity", "Vinit", opts.Vinit)
			}
			incw = nil
		} else {
			o.Seg[i].InitCalc(nT, 0)
		}
	}

	// contact
	o.Contact.Enabled = !opts.NoContactLoss
	o.Contact.Threshold = opts.ContactLoss
	if o.Contact.Threshold == 0 {
		o.Contact.Threshold = DefaultContactLoss
	}
	var separated []bool
	if o.Contact.Enabled && nseg > 1 {
		o.Contact.State = make([][]int, 0, nT-1)
		separated = make([]bool, nseg-1)
	}

	// time loop
	for it := 1; it < nT; it++ {
		for i, s := range o.Seg {
			s.CompMiddle(it)

			// left end
			switch {
			case i > 0:
				s.CompLeft(it, o.Seg[i-1], 0, "")
			case it <= len(incw):
				s.CompLeft(it, nil, incw[it-1], bar.Impact)
			default:
				s.CompLeft(it, nil, 0, opts.Left)
			}

			// right end
			if i < nseg-1 {
				s.CompRight(it, o.Seg[i+1], "")
			} else {
				s.CompRight(it, nil, opts.Right)
			}
			s.CompDispl(it)
		}
		if separated != nil {
			o.Contact.State = append(o.Contact.State, o.updateContact(it, separated))
		}
	}

	// results
	o.Time = make([]float64, nT)
	for i := range o.Time {
		o.Time[i] = float64(i) * b.Dt
	}
	for _, s := range o.Seg {
		s.SetTime(o.Time)
		s.ComputeStressStrain()
	}
	o.GatherForce()
	if Verbose {
		io.Pfyel("WP2: %d steps, %d segments, dt = %g s\n", nT, nseg, b.Dt)
	}
	return
}

// GatherForce gathers the forces of all segments in one matrix over all nodes of the bar.
// A node at an interface takes the value of the segment on its right
func (o *WP2) GatherForce() {
	x := o.Bar.X
	o.Xplot = CellEdges(x)
	o.Force = utl.Alloc(len(o.Time), len(x))
	ind0 := 0
	for i, s := range o.Seg {
		ncol := s.NX - 1
		if i == len(o.Seg)-1 {
			ncol = s.NX
		}
		for it := range o.Time {
			copy(o.Force[it][ind0:ind0+ncol], s.Force[it][:ncol])
		}
		ind0 += s.NX - 1
	}
}

// GetState returns the state of all segments at the last time <= t
func (o *WP2) GetState(t float64) (indt int, states []SegState, err error) {
	indt = lastLessEq(o.Time, t)
	if indt < 0 {
		return 0, nil, chk.Err("time t=%g is before the first time", t)
	}
	states = make([]SegState, len(o.Seg))
	for i, s := range o.Seg {
		states[i] = SegState{
			X:     s.X,
			Force: append([]float64{}, s.Force[indt]...),
			Veloc: append([]float64{}, s.Veloc[indt]...),
		}
	}
	return
}

// Signal returns the time history at the last node with global abscissa <= x
func (o *WP2) Signal(x float64) (sig *Signal, err error) {
	iseg := -1
	for i, s := range o.Seg {
		if x >= s.X[0] {
			iseg = i
		}
	}
	if iseg < 0 {
		return nil, chk.Err("abscissa x=%g is before the first node", x)
	}
	indx := lastLessEq(o.Seg[iseg].X, x)
	sig, err = o.SignalNode(iseg, indx)
	if err == nil {
		sig.X = o.Seg[iseg].X[indx]
	}
	return
}

// SignalLocal returns the time history at the last node of segment iseg with local abscissa <= xloc
func (o *WP2) SignalLocal(iseg int, xloc float64) (sig *Signal, err error) {
	if iseg < 0 || iseg >= len(o.Seg) {
		return nil, chk.Err("segment index %d is out of range [0, %d)", iseg, len(o.Seg))
	}
	indx := lastLessEq(o.Seg[iseg].Xloc, xloc)
	if indx < 0 {
		return nil, chk.Err("local abscissa x=%g is before the first node of segment %d", xloc, iseg)
	}
	return o.SignalNode(iseg, indx)
}

// SignalNode returns the time history at node indx of segment iseg. X is the local abscissa
func (o *WP2) SignalNode(iseg, indx int) (sig *Signal, err error) {
	if iseg < 0 || iseg >= len(o.Seg) {
		return nil, chk.Err("segment index %d is out of range [0, %d)", iseg, len(o.Seg))
	}
	s := o.Seg[iseg]
	if indx < 0 || indx >= s.NX {
		return nil, chk.Err("node index %d is out of range [0, %d) in segment %d", indx, s.NX, iseg)
	}
	nT := len(o.Time)
	sig = &Signal{X: s.Xloc[indx], Indx: indx, Iseg: iseg}
	sig.Force = make([]float64, nT)
	sig.Veloc = make([]float64, nT)
	sig.Displ = make([]float64, nT)
	for it := 0; it < nT; it++ {
		sig.Force[it] = s.Force[it][indx]
		sig.Veloc[it] = s.Veloc[it][indx]
		sig.Displ[it] = s.Displ[it][indx]
	}
	return
}

// Interface returns the time histories on both sides of interface k (between segments k and k+1)
func (o *WP2) Interface(k int) (left, right *Signal, err error) {
	if k < 0 || k >= len(o.Seg)-1 {
		return nil, nil, chk.Err("interface index %d is out of range [0, %d)", k, len(o.Seg)-1)
	}
	left, err = o.SignalNode(k, o.Seg[k].NX-1)
	if err != nil {
		return
	}
	right, err = o.SignalNode(k+1, 0)
	return
}

// Deformed returns, for each segment, the positions of nodes x + scale*u at every time
func (o *WP2) Deformed(scale float64) (res [][][]float64) {
	res = make([][][]float64, len(o.Seg))
	for i, s := range o.Seg {
		res[i] = deformed(s.X, s.Displ, scale)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// updateContact switches the facing ends of segments to free when they separate and back to
// interfaces when they meet again
func (o *WP2) updateContact(it int, separated []bool) (state []int) {
	thr := o.Contact.Threshold
	state = make([]int, len(separated))
	for k := range separated {
		sl, sr := o.Seg[k], o.Seg[k+1]
		gap := sr.Displ[it][0] - sl.Displ[it][sl.NX-1]
		switch {
		case separated[k] && gap <= 0:
			separated[k] = false
			sl.Right, sr.Left = bar.Interf, bar.Interf
			state[k] = 1
		case separated[k]:
			state[k] = 0
		case gap > thr:
			separated[k] = true
			sl.Right, sr.Left = bar.Free, bar.Free
			state[k] = 0
			if Verbose {
				io.Pforan("contact lost at interface %d, t = %g s\n", k, float64(it)*o.Bar.Dt)
			}
		case -gap > thr:
			Logger.Warn("bar indentation should not happen", "interface", k, "it", it, "gap", gap)
			state[k] = -1
		default:
			state[k] = 1
		}
	}
	return
}
