// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bar

import (
	"bytes"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Segment is a part of a bar with constant wave celerity. The section (hence the impedance)
// may change from one element to the next. A segment stores the time history of its nodes
//
//   node:    0     1     2          NX-1
//            o-----o-----o-- ... ----o
//   element:    0     1        NX-2
//
type Segment struct {

	// geometry and material
	NX    int       // number of nodes == number of elements + 1
	Z     []float64 // impedance of each element [NX-1]
	E     float64   // Young's modulus
	L     float64   // length
	Dx    float64   // length of elements
	Dt    float64   // time step
	Xloc  []float64 // local abscissae of nodes [NX]
	X     []float64 // global abscissae of nodes [NX]
	Xplot []float64 // edges of cells centred on nodes [NX+1]

	// end conditions
	Left  End // left end
	Right End // right end

	// time history
	NT     int         // number of time steps
	Time   []float64   // times [NT]
	Force  [][]float64 // normal force @ nodes [NT][NX]
	Veloc  [][]float64 // particle velocity @ nodes [NT][NX]
	Displ  [][]float64 // displacement @ nodes [NT][NX]
	Strain [][]float64 // strain @ elements [NT][NX-1]
	Stress [][]float64 // stress @ elements [NT][NX-1]
}

// NewSegment returns a new segment
//  Input:
//   nel   -- number of elements
//   z     -- impedance
//   E     -- Young's modulus
//   l     -- length
//   dx    -- length of elements
//   dt    -- time step
//   xo    -- global abscissa of left end
//   left  -- left end condition
//   right -- right end condition
func NewSegment(nel int, z, E, l, dx, dt, xo float64, left, right End) (o *Segment) {
	if nel < 1 {
		chk.Panic("segment must have at least one element. nel=%d is invalid", nel)
	}
	o = new(Segment)
	o.NX = nel + 1
	o.Z = make([]float64, nel)
	for i := range o.Z {
		o.Z[i] = z
	}
	o.E = E
	o.L = l
	o.Dx = dx
	o.Dt = dt
	o.Xloc = make([]float64, o.NX)
	o.X = make([]float64, o.NX)
	o.Xplot = make([]float64, o.NX+1)
	o.Xplot[0] = xo - dx/2.0
	for i := 0; i < o.NX; i++ {
		o.Xloc[i] = float64(i) * dx
		o.X[i] = xo + o.Xloc[i]
		o.Xplot[i+1] = o.X[i] + dx/2.0
	}
	o.Left = left
	o.Right = right
	return
}

// Clone returns a copy of geometry, impedances and end conditions; time history is not copied
func (o *Segment) Clone() *Segment {
	other := *o
	other.Z = append([]float64{}, o.Z...)
	other.Xloc = append([]float64{}, o.Xloc...)
	other.X = append([]float64{}, o.X...)
	other.Xplot = append([]float64{}, o.Xplot...)
	other.NT = 0
	other.Time, other.Force, other.Veloc, other.Displ, other.Strain, other.Stress = nil, nil, nil, nil, nil, nil
	return &other
}

// Nelt returns the number of elements
func (o *Segment) Nelt() int { return o.NX - 1 }

// ResetImpedance sets the impedance z to the element containing the local abscissa l and
// to all elements on its right. Only a change of section is allowed: z must correspond to
// the same celerity, otherwise the discretization would be obsolete
func (o *Segment) ResetImpedance(l, z float64) (err error) {
	if z <= 0 {
		return chk.Err("impedance must be positive. z=%g is invalid", z)
	}
	if l <= 0 || l > o.Xloc[o.NX-1] {
		return chk.Err("position of section change must be within (0, %g]. l=%g is invalid", o.Xloc[o.NX-1], l)
	}
	ind := 0
	for i, x := range o.Xloc {
		if l > x {
			ind = i
		}
	}
	for i := ind; i < len(o.Z); i++ {
		o.Z[i] = z
	}
	return
}

// InitCalc allocates time history matrices; all nodes start with velocity Vo
func (o *Segment) InitCalc(nT int, Vo float64) {
	o.NT = nT
	o.Force = utl.Alloc(nT, o.NX)
	o.Veloc = utl.Alloc(nT, o.NX)
	o.Displ = utl.Alloc(nT, o.NX)
	if Vo != 0 {
		for i := 0; i < nT; i++ {
			for j := 0; j < o.NX; j++ {
				o.Veloc[i][j] = Vo
			}
		}
	}
	o.Strain, o.Stress = nil, nil
}

// SetTime sets the times corresponding to time indices
func (o *Segment) SetTime(time []float64) {
	o.Time = time
}

// CompMiddle computes force and velocity of inner nodes at time index it
func (o *Segment) CompMiddle(it int) {
	F0, V0 := o.Force[it-1], o.Veloc[it-1]
	F1, V1 := o.Force[it], o.Veloc[it]
	for j := 1; j < o.NX-1; j++ {
		Fl, Fr := F0[j-1], F0[j+1] // F(x-c T, t-T) and F(x+c T, t-T)
		Vl, Vr := V0[j-1], V0[j+1]
		Zi, Zii := o.Z[j-1], o.Z[j]
		F1[j] = (Zii*Fl + Zi*Fr + Zi*Zii*(Vr-Vl)) / (Zi + Zii)
		V1[j] = (Fr - Fl + Zi*Vl + Zii*Vr) / (Zi + Zii)
	}
}

// CompLeft computes force and velocity of the left end at time index it
//  Input:
//   lseg -- segment on the left; required if the end is an interface
//   incw -- incident force; used if the end is impacted
//   end  -- end condition superseding o.Left; "" means o.Left
func (o *Segment) CompLeft(it int, lseg *Segment, incw float64, end End) {
	if end == "" {
		end = o.Left
	}
	F0, V0 := o.Force[it-1], o.Veloc[it-1]
	Z0 := o.Z[0]
	switch end {
	case Free:
		o.Force[it][0] = 0
		o.Veloc[it][0] = V0[1] + F0[1]/Z0
	case Fixed:
		o.Force[it][0] = F0[1] - Z0*V0[1]
		o.Veloc[it][0] = 0
	case Infinite:
		o.Force[it][0] = (F0[1] + Z0*V0[1]) / 2.0
		o.Veloc[it][0] = (F0[1] + Z0*V0[1]) / (2.0 * Z0)
	case Interf:
		if lseg == nil {
			chk.Panic("left interface requires the segment on the left")
		}
		Zi, Zii := lseg.Z[len(lseg.Z)-1], Z0
		Fl, Vl := lseg.Force[it-1][lseg.NX-2], lseg.Veloc[it-1][lseg.NX-2]
		Fr, Vr := F0[1], V0[1]
		F := (Zii*Fl + Zi*Fr + Zi*Zii*(Vr-Vl)) / (Zi + Zii)
		if F < 0 { // compression crosses the interface
			o.Force[it][0] = F
			o.Veloc[it][0] = (Fr - Fl + Zi*Vl + Zii*Vr) / (Zi + Zii)
		} else { // traction does not: free end
			o.Force[it][0] = 0
			o.Veloc[it][0] = Vr + Fr/Zii
		}
	case Impact:
		Z1 := o.Z[utl.Imin(1, len(o.Z)-1)]
		o.Force[it][0] = (2.0*Z1*incw + Z0*(F0[1]+Z1*V0[1])) / (Z0 + Z1)
		o.Veloc[it][0] = (F0[1] + Z1*V0[1] - 2.0*incw) / (Z0 + Z1)
	default:
		chk.Panic("cannot handle left end condition %q", end)
	}
}

// CompRight computes force and velocity of the right end at time index it
//  Input:
//   rseg -- segment on the right; required if the end is an interface
//   end  -- end condition superseding o.Right; "" means o.Right
func (o *Segment) CompRight(it int, rseg *Segment, end End) {
	if end == "" {
		end = o.Right
	}
	n := o.NX - 1
	F0, V0 := o.Force[it-1], o.Veloc[it-1]
	Zn := o.Z[len(o.Z)-1]
	switch end {
	case Free:
		o.Force[it][n] = 0
		o.Veloc[it][n] = V0[n-1] - F0[n-1]/Zn
	case Fixed:
		o.Force[it][n] = F0[n-1] - Zn*V0[n-1]
		o.Veloc[it][n] = 0
	case Infinite:
		o.Force[it][n] = (F0[n-1] - Zn*V0[n-1]) / 2.0
		o.Veloc[it][n] = -F0[n-1]/2.0/Zn + V0[n-1]/2.0
	case Interf:
		if rseg == nil {
			chk.Panic("right interface requires the segment on the right")
		}
		Zi, Zii := Zn, rseg.Z[0]
		Fl, Vl := F0[n-1], V0[n-1]
		Fr, Vr := rseg.Force[it-1][1], rseg.Veloc[it-1][1]
		F := (Zii*Fl + Zi*Fr + Zi*Zii*(Vr-Vl)) / (Zi + Zii)
		if F < 0 {
			o.Force[it][n] = F
			o.Veloc[it][n] = (Fr - Fl + Zi*Vl + Zii*Vr) / (Zi + Zii)
		} else {
			o.Force[it][n] = 0
			o.Veloc[it][n] = Vl - Fl/Zi
		}
	default:
		chk.Panic("cannot handle right end condition %q", end)
	}
}

// CompDispl integrates velocities to get displacements at time index it
func (o *Segment) CompDispl(it int) {
	for j := 0; j < o.NX; j++ {
		o.Displ[it][j] = o.Displ[it-1][j] + o.Veloc[it][j]*o.Dt
	}
}

// ComputeStressStrain computes strains from displacements and then stresses, in the elements
func (o *Segment) ComputeStressStrain() {
	o.Strain = utl.Alloc(o.NT, o.NX-1)
	o.Stress = utl.Alloc(o.NT, o.NX-1)
	for i := 0; i < o.NT; i++ {
		for j := 0; j < o.NX-1; j++ {
			o.Strain[i][j] = (o.Displ[i][j+1] - o.Displ[i][j]) / o.Dx
			o.Stress[i][j] = o.E * o.Strain[i][j]
		}
	}
}

// String returns a short description of the segment
func (o *Segment) String() string {
	var b bytes.Buffer
	io.Ff(&b, "\nL: %g m\n", o.L)
	io.Ff(&b, "Z: %v kg/s\n", uniqueImpedances(o.Z))
	io.Ff(&b, "Left: %s\n", o.Left)
	io.Ff(&b, "Right: %s\n", o.Right)
	io.Ff(&b, "nX: %d\n", o.NX)
	return b.String()
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func uniqueImpedances(z []float64) (res []string) {
	u := append([]float64{}, z...)
	sort.Float64s(u)
	for i, v := range u {
		if i == 0 || v != u[i-1] {
			res = append(res, io.Sf("%g", v))
		}
	}
	return
}
