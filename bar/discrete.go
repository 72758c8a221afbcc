// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bar

// Discrete defines a spatially discretized bar; i.e. nodes and elements with
// one impedance per element. Time step and element lengths are such that
// waves travel exactly one element per time step
type Discrete interface {
	Nodes() []float64      // abscissae of nodes [nelt+1]
	Impedances() []float64 // impedance of each element [nelt]
	Areas() []float64      // cross-sectional area of each element [nelt]
	Moduli() []float64     // Young's modulus of each element [nelt]
	Lengths() []float64    // length of each element [nelt]
	TimeStep() float64     // time step
	Nelems() int           // number of elements
}

// elemLengths computes the length of each element from node abscissae
func elemLengths(x []float64) (l []float64) {
	if len(x) < 2 {
		return
	}
	l = make([]float64, len(x)-1)
	for i := 0; i < len(l); i++ {
		l[i] = x[i+1] - x[i]
	}
	return
}
