// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/cpmech/gosl/chk"

// shading modes
const (
	Nearest = "nearest" // cells centred on given coordinates
	Flat    = "flat"    // given coordinates are the edges of cells
)

// QuadMesh holds the edges of the cells of a Lagrange (x-t) diagram
type QuadMesh struct {
	X []float64 // edges along x
	T []float64 // edges along time
}

// NewQuadMesh computes the edges of cells from node abscissae and times
func NewQuadMesh(x, t []float64, shading string) (o *QuadMesh, err error) {
	if len(x) < 2 || len(t) < 2 {
		return nil, chk.Err("quad mesh needs at least 2 abscissae and 2 times")
	}
	o = new(QuadMesh)
	switch shading {
	case Nearest:
		o.X = edges(x)
		o.T = edges(t)
	case Flat:
		o.X = append([]float64{}, x...)
		o.T = append([]float64{}, t...)
	default:
		return nil, chk.Err("shading %q is invalid. Use %s or %s", shading, Nearest, Flat)
	}
	return
}

// MinMax returns the extent of the mesh
func (o *QuadMesh) MinMax() (xmin, xmax, tmin, tmax float64) {
	xmin, xmax = span(o.X)
	tmin, tmax = span(o.T)
	return
}

// Lagrange returns the quad mesh of the x-t diagram of results
func (o *Results) Lagrange() (*QuadMesh, error) {
	return NewQuadMesh(o.X, o.Time, Nearest)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// edges returns midpoints between values plus half spacings beyond both ends
func edges(v []float64) (e []float64) {
	n := len(v)
	e = make([]float64, n+1)
	e[0] = v[0] - (v[1]-v[0])/2.0
	for i := 1; i < n; i++ {
		e[i] = (v[i-1] + v[i]) / 2.0
	}
	e[n] = v[n-1] + (v[n-1]-v[n-2])/2.0
	return
}

func span(v []float64) (mn, mx float64) {
	mn, mx = v[0], v[0]
	for _, x := range v {
		if x < mn {
			mn = x
		}
		if x > mx {
			mx = x
		}
	}
	return
}
