// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bar

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// GrooveData holds the geometry of a grooved striker followed by an impacted bar
type GrooveData struct {
	Interv []float64 // lengths of the intervals separating grooves
	Lg     float64   // length of a groove along the bar axis
	LL     float64   // total length of grooved striker + impacted bar
	D0     float64   // diameter of the bar
	D1     float64   // diameter at grooves; diameter of the pin hole if Pin
	E      float64   // Young's modulus
	Rho    float64   // density
	Pin    bool      // transverse pin hole instead of groove
}

// DefaultGrooveData returns the default groove geometry and material (aluminium alloy)
func DefaultGrooveData(interv []float64) GrooveData {
	return GrooveData{
		Interv: interv,
		Lg:     0.003,
		LL:     2,
		D0:     0.030,
		D1:     0.0278,
		E:      78e9,
		Rho:    2800,
	}
}

// Grooved builds a bar with grooves (or pin holes) followed by an impacted bar
//  Output:
//   o      -- the bar; one segment per interval and per groove plus the impacted bar
//   indelt -- index of the last element of the striker
func Grooved(dat GrooveData) (o *Hete, indelt int, err error) {

	// check
	if len(dat.Interv) == 0 {
		return nil, 0, chk.Err("grooved bar needs at least one interval")
	}

	// pin across the bar: square hole with equivalent section
	d1, lg := dat.D1, dat.Lg
	if dat.Pin {
		R := dat.D0 / 2.0
		h := dat.D1 / 2.0
		if h >= R {
			return nil, 0, chk.Err("pin diameter (%g) must be smaller than bar diameter (%g)", dat.D1, dat.D0)
		}
		area := R*R*math.Acos(h/R) - h*math.Sqrt(R*R-h*h) // circular segment
		d1 = 2.0 * math.Sqrt(2.0*area/math.Pi)
		lg = dat.D1
	}

	// alternate intervals and grooves; the last groove is removed
	var d, l []float64
	for _, ll := range dat.Interv {
		d = append(d, dat.D0, d1)
		l = append(l, ll, lg)
	}
	d = d[:len(d)-1]
	l = l[:len(l)-1]

	// impacted bar
	d = append(d, dat.D0)
	l = append(l, dat.LL-l[len(l)-1])

	// material
	n := len(d)
	E := make([]float64, n)
	rho := make([]float64, n)
	for i := 0; i < n; i++ {
		E[i] = dat.E
		rho[i] = dat.Rho
	}

	// bar
	o, err = NewHete(E, rho, l, d, 0, 1, Free)
	if err != nil {
		return
	}
	for _, ne := range o.Nelt[:len(o.Nelt)-1] {
		indelt += ne
	}
	return
}
