// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bar implements continuous and discretized elastic bars and their segments
package bar

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Bar describes a piecewise continuous bar before discretization.
// Each piece has constant Young's modulus, density, length and diameter
type Bar struct {

	// input
	E   []float64 // Young's moduli
	Rho []float64 // densities
	L   []float64 // lengths of pieces
	D   []float64 // diameters

	// derived
	A  []float64 // cross-sectional areas
	Co []float64 // wave celerities
	Z  []float64 // impedances
	X  []float64 // abscissae of piece ends [npieces+1]
}

// NewBar computes area, celerity and impedance of each piece
func NewBar(E, rho, L, d []float64) (o *Bar, err error) {

	// check
	n := len(E)
	if n == 0 {
		return nil, chk.Err("bar must have at least one piece")
	}
	if len(rho) != n || len(L) != n || len(d) != n {
		return nil, chk.Err("E, rho, L and d must have the same length. %d, %d, %d, %d is invalid", n, len(rho), len(L), len(d))
	}
	for i := 0; i < n; i++ {
		if E[i] <= 0 || rho[i] <= 0 || L[i] <= 0 || d[i] <= 0 {
			return nil, chk.Err("piece %d: E, rho, L and d must be positive. E=%g rho=%g L=%g d=%g is invalid", i, E[i], rho[i], L[i], d[i])
		}
	}

	// input
	o = new(Bar)
	o.E = append([]float64{}, E...)
	o.Rho = append([]float64{}, rho...)
	o.L = append([]float64{}, L...)
	o.D = append([]float64{}, d...)

	// derived
	o.A = make([]float64, n)
	o.Co = make([]float64, n)
	o.Z = make([]float64, n)
	o.X = make([]float64, n+1)
	for i := 0; i < n; i++ {
		o.A[i] = Area(d[i])
		o.Co[i] = math.Sqrt(E[i] / rho[i])
		o.Z[i] = o.A[i] * rho[i] * o.Co[i]
		o.X[i+1] = o.X[i] + L[i]
	}
	return
}

// Npieces returns the number of pieces
func (o *Bar) Npieces() int { return len(o.E) }

// Rows returns one row per piece with: L, d, A, rho, E, c_0, Z
func (o *Bar) Rows() (rows [][]float64) {
	rows = make([][]float64, len(o.E))
	for i := range o.E {
		rows[i] = []float64{o.L[i], o.D[i], o.A[i], o.Rho[i], o.E[i], o.Co[i], o.Z[i]}
	}
	return
}

// TableHeader holds the column titles of Rows
var TableHeader = []string{"L [m]", "d [m]", "A [m2]", "rho [kg/m3]", "E [Pa]", "c_0 [m/s]", "Z [kg/s]"}

// Table returns a text representation of the bar
func (o *Bar) Table() string {
	var b bytes.Buffer
	for _, h := range TableHeader {
		io.Ff(&b, "%14s", h)
	}
	io.Ff(&b, "\n")
	for _, row := range o.Rows() {
		for _, v := range row {
			io.Ff(&b, "%14.6g", v)
		}
		io.Ff(&b, "\n")
	}
	return b.String()
}

// Area returns the area of a circular cross-section with diameter d
func Area(d float64) float64 {
	return math.Pi * d * d / 4.0
}
