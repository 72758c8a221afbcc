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

// PropOpts holds options of the single matrix solver
type PropOpts struct {
	Nstep  int     // number of time steps; 0 means len(incw)
	Left   bar.End // left end condition after the incident wave: free, fixed or infinite
	Right  bar.End // right end condition: free, fixed or infinite
	Vinit  float64 // initial velocity
	IndV   int     // if > 0, only nodes 0..IndV start with Vinit (impact); incident wave is then ignored
	Damper float64 // damping coefficient C at the right end [N.s/m]; F -= C V
	Spring float64 // stiffness K at the right end [N/m]; F -= K u
}

// Cut holds the time history at one node or the state of the bar at one time
type Cut struct {
	Index    int       // index of node (history) or time (state)
	Abscissa []float64 // time (history) or node abscissae (state)
	Force    []float64 // normal force
	Veloc    []float64 // particle velocity
	Displ    []float64 // displacement
}

// Waveprop solves the propagation of an incident wave in a rod whose impedance is piecewise constant.
// All nodes are stored in single matrices; traction crosses section changes
type Waveprop struct {

	// input
	Bar   bar.Discrete // discretized bar
	Incw  []float64    // incident force wave actually applied
	Left  bar.End      // left end condition after the incident wave
	Right bar.End      // right end condition

	// nodal results [nT][nX]
	Time  []float64   // times [nT]
	Force [][]float64 // normal force
	Veloc [][]float64 // particle velocity
	Displ [][]float64 // displacement

	// element results [nT][nelt]
	Strain      [][]float64 // strain from displacements
	Stress      [][]float64 // E * strain
	StressLeft  [][]float64 // force at left node / area
	StressRight [][]float64 // force at right node / area

	// propagation
	LR    [][]float64 // F*V: > 0 left going, < 0 right going
	State [][]float64 // -1, 0 or 1 according to LR and threshold
	Seuil float64     // relative threshold used to compute State
	Xplot []float64   // edges of cells centred on nodes [nX+1]
}

// NewWaveprop computes the propagation of the incident wave incw in the bar
func NewWaveprop(b bar.Discrete, incw []float64, opts PropOpts) (o *Waveprop, err error) {

	// check
	x, Z := b.Nodes(), b.Impedances()
	if len(Z) < 2 {
		return nil, chk.Err("bar must have at least two elements. nelt=%d is invalid", len(Z))
	}
	if opts.Left == "" {
		opts.Left = bar.Free
	}
	if opts.Right == "" {
		opts.Right = bar.Free
	}
	if !opts.Left.Outer() {
		return nil, chk.Err("left end must be free, fixed or infinite. %q is invalid", opts.Left)
	}
	if !opts.Right.Outer() {
		return nil, chk.Err("right end must be free, fixed or infinite. %q is invalid", opts.Right)
	}

	// number of steps
	nT := opts.Nstep
	if nT == 0 {
		nT = len(incw)
	} else if nT > 10*b.Nelems() {
		Logger.Warn("computation may be long and heavy", "nstep", nT, "nelt", b.Nelems())
	}
	if nT < 2 {
		return nil, chk.Err("number of time steps must be at least 2. nstep=%d is invalid (len(incw)=%d)", nT, len(incw))
	}

	// allocate
	dt := b.TimeStep()
	nX := len(x)
	o = &Waveprop{Bar: b, Left: opts.Left, Right: opts.Right}
	o.Time = make([]float64, nT)
	for i := range o.Time {
		o.Time[i] = float64(i) * dt
	}
	o.Force = utl.Alloc(nT, nX)
	o.Veloc = utl.Alloc(nT, nX)

	// initial conditions
	o.Incw = append([]float64{}, incw...)
	if opts.Vinit != 0 && opts.IndV <= 0 {
		for j := 0; j < nX; j++ {
			o.Veloc[0][j] = opts.Vinit
		}
		Finit := 0.5 * Z[0] * opts.Vinit
		for i := range o.Incw {
			o.Incw[i] = Finit
		}
		Logger.Warn("incident wave was overwritten by initial velocity", "Vinit", opts.Vinit, "F", Finit)
	}
	if opts.IndV > 0 {
		if opts.IndV >= nX {
			return nil, chk.Err("index of end of impactor must be smaller than the number of nodes. indV=%d is invalid", opts.IndV)
		}
		for j := 0; j <= opts.IndV; j++ {
			o.Veloc[0][j] = opts.Vinit
		}
		o.Incw = nil
		Logger.Warn("impact initial conditions; incident wave is ignored", "indV", opts.IndV)
	}

	// time loop
	nExc := len(o.Incw)
	n := nX - 1
	Z0, Z1, Zn := Z[0], Z[1], Z[len(Z)-1]
	var u float64 // displacement of the right end
	for it := 1; it < nT; it++ {
		F0, V0 := o.Force[it-1], o.Veloc[it-1]
		F1, V1 := o.Force[it], o.Veloc[it]

		// left end
		if it <= nExc {
			F1[0] = (2.0*Z1*o.Incw[it-1] + Z0*(F0[1]+Z1*V0[1])) / (Z0 + Z1)
			V1[0] = (F0[1] + Z1*V0[1] - 2.0*o.Incw[it-1]) / (Z0 + Z1)
		} else {
			switch opts.Left {
			case bar.Free:
				F1[0] = 0
				V1[0] = V0[1] + F0[1]/Z0
			case bar.Infinite:
				F1[0] = Z0 * (F0[1] + Z1*V0[1]) / (Z0 + Z1)
				V1[0] = (F0[1] + Z1*V0[1]) / (Z0 + Z1)
			case bar.Fixed:
				F1[0] = F0[1] - Z0*V0[1]
				V1[0] = 0
			}
		}

		// right end
		switch opts.Right {
		case bar.Free:
			F1[n] = 0
			V1[n] = V0[n-1] - F0[n-1]/Zn
		case bar.Infinite:
			F1[n] = (F0[n-1] - Zn*V0[n-1]) / 2.0
			V1[n] = -F0[n-1]/2.0/Zn + V0[n-1]/2.0
		case bar.Fixed:
			F1[n] = F0[n-1] - Zn*V0[n-1]
			V1[n] = 0
		}
		if opts.Damper != 0 {
			F1[n] -= opts.Damper * V1[n]
		}
		if opts.Spring != 0 {
			if it == 1 {
				u = V0[n] * dt
			}
			u += V1[n] * dt
			F1[n] -= opts.Spring * u
		}

		// middle
		for j := 1; j < n; j++ {
			Fl, Fr := F0[j-1], F0[j+1]
			Vl, Vr := V0[j-1], V0[j+1]
			Zi, Zii := Z[j-1], Z[j]
			F1[j] = (Zii*Fl + Zi*Fr + Zi*Zii*(Vr-Vl)) / (Zi + Zii)
			V1[j] = (Fr - Fl + Zi*Vl + Zii*Vr) / (Zi + Zii)
		}
	}

	// nodal and element results
	o.computeDispl(dt)
	o.computeElements()
	o.LR = utl.Alloc(nT, nX)
	for i := 0; i < nT; i++ {
		for j := 0; j < nX; j++ {
			o.LR[i][j] = o.Force[i][j] * o.Veloc[i][j]
		}
	}
	o.CompState(1e-6)
	o.Xplot = CellEdges(x)
	if Verbose {
		io.Pfyel("Waveprop: %d steps, %d nodes, dt = %g s\n", nT, nX, dt)
	}
	return
}

// CompState computes the propagation state (-1, 0 or 1) of each node at each time.
// The threshold is seuil * ptp(LR)
func (o *Waveprop) CompState(seuil float64) {
	s := Ptp(o.LR) * seuil
	o.State = utl.Alloc(len(o.LR), len(o.LR[0]))
	for i, row := range o.LR {
		for j, v := range row {
			switch {
			case v < -s:
				o.State[i][j] = -1
			case v > s:
				o.State[i][j] = 1
			}
		}
	}
	o.Seuil = seuil
}

// CutAtX returns the time history at the last node with abscissa <= x
func (o *Waveprop) CutAtX(x float64) (c *Cut, err error) {
	idx := lastLessEq(o.Bar.Nodes(), x)
	if idx < 0 {
		return nil, chk.Err("abscissa x=%g is before the first node", x)
	}
	return o.CutAtXIndex(idx)
}

// CutAtXIndex returns the time history at node idx
func (o *Waveprop) CutAtXIndex(idx int) (c *Cut, err error) {
	nX := len(o.Bar.Nodes())
	if idx < 0 || idx >= nX {
		return nil, chk.Err("node index %d is out of range [0, %d)", idx, nX)
	}
	nT := len(o.Time)
	c = &Cut{Index: idx, Abscissa: o.Time}
	c.Force = make([]float64, nT)
	c.Veloc = make([]float64, nT)
	c.Displ = make([]float64, nT)
	for i := 0; i < nT; i++ {
		c.Force[i] = o.Force[i][idx]
		c.Veloc[i] = o.Veloc[i][idx]
		c.Displ[i] = o.Displ[i][idx]
	}
	return
}

// CutAtT returns the state of the bar at the last time <= t
func (o *Waveprop) CutAtT(t float64) (c *Cut, err error) {
	idx := lastLessEq(o.Time, t)
	if idx < 0 {
		return nil, chk.Err("time t=%g is before the first time", t)
	}
	return o.CutAtTIndex(idx)
}

// CutAtTIndex returns the state of the bar at time index idx
func (o *Waveprop) CutAtTIndex(idx int) (c *Cut, err error) {
	if idx < 0 || idx >= len(o.Time) {
		return nil, chk.Err("time index %d is out of range [0, %d)", idx, len(o.Time))
	}
	c = &Cut{Index: idx, Abscissa: o.Bar.Nodes()}
	c.Force = append([]float64{}, o.Force[idx]...)
	c.Veloc = append([]float64{}, o.Veloc[idx]...)
	c.Displ = append([]float64{}, o.Displ[idx]...)
	return
}

// Deformed returns the positions of nodes x + scale*u at every time (de Saint-Venant diagram)
func (o *Waveprop) Deformed(scale float64) [][]float64 {
	return deformed(o.Bar.Nodes(), o.Displ, scale)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// computeDispl integrates velocities along time; the first row is V(t=0)*dt
func (o *Waveprop) computeDispl(dt float64) {
	nT, nX := len(o.Veloc), len(o.Veloc[0])
	o.Displ = utl.Alloc(nT, nX)
	for j := 0; j < nX; j++ {
		o.Displ[0][j] = o.Veloc[0][j] * dt
	}
	for i := 1; i < nT; i++ {
		for j := 0; j < nX; j++ {
			o.Displ[i][j] = o.Displ[i-1][j] + o.Veloc[i][j]*dt
		}
	}
}

func (o *Waveprop) computeElements() {
	dx, A, E := o.Bar.Lengths(), o.Bar.Areas(), o.Bar.Moduli()
	nT, ne := len(o.Displ), len(dx)
	o.Strain = utl.Alloc(nT, ne)
	o.Stress = utl.Alloc(nT, ne)
	o.StressLeft = utl.Alloc(nT, ne)
	o.StressRight = utl.Alloc(nT, ne)
	for i := 0; i < nT; i++ {
		for e := 0; e < ne; e++ {
			o.Strain[i][e] = (o.Displ[i][e+1] - o.Displ[i][e]) / dx[e]
			o.Stress[i][e] = E[e] * o.Strain[i][e]
			o.StressLeft[i][e] = o.Force[i][e] / A[e]
			o.StressRight[i][e] = o.Force[i][e+1] / A[e]
		}
	}
}

func deformed(x []float64, displ [][]float64, scale float64) (res [][]float64) {
	res = utl.Alloc(len(displ), len(x))
	for i, row := range displ {
		for j, u := range row {
			res[i][j] = x[j] + scale*u
		}
	}
	return
}
