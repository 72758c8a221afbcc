// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wave implements the propagation of one-dimensional elastic waves in bars.
//
// The scheme follows Bacon (1993): waves travel exactly one element per time step and the
// normal force F and particle velocity V of each node at time t are obtained from the
// characteristics reaching it from the neighbour nodes at time t-T:
//
//   F = (Z_{i+1} F_l + Z_i F_r + Z_i Z_{i+1} (V_r - V_l)) / (Z_i + Z_{i+1})
//   V = (F_r - F_l + Z_i V_l + Z_{i+1} V_r) / (Z_i + Z_{i+1})
//
// Waveprop solves a single rod (traction crosses section changes); WP2 solves a set of rods
// in contact (traction does not cross interfaces, contact may be lost).
package wave

import (
	"io"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Verbose activates messages printed by solvers
var Verbose = false

// Logger reports warnings from solvers
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:  log.WarnLevel,
	Prefix: "wave",
})

// SetLogOutput redirects solvers' warnings; e.g. io.Discard in tests
func SetLogOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// GetMax returns the maximum absolute extremum of a matrix
func GetMax(mat [][]float64) float64 {
	mn, mx := minmax(mat)
	return math.Max(math.Abs(mn), math.Abs(mx))
}

// Ptp returns the range (peak to peak) of the values of a matrix
func Ptp(mat [][]float64) float64 {
	mn, mx := minmax(mat)
	return mx - mn
}

// ScaleTime returns scaled times and the corresponding label
//  unit -- "s", "ms", "µs" (or "us") or "ind" (index)
func ScaleTime(time []float64, unit string) (scaled []float64, label string, err error) {
	var coef float64
	switch unit {
	case "s":
		coef, label = 1, "t [s]"
	case "ms":
		coef, label = 1e3, "t [ms]"
	case "µs", "us":
		coef, label = 1e6, "t [µs]"
	case "ind":
		scaled = utl.LinSpace(0, float64(len(time)-1), len(time))
		return scaled, "index [-]", nil
	default:
		return nil, "", chk.Err("unknown time unit %q. Use s, ms, µs or ind", unit)
	}
	scaled = make([]float64, len(time))
	for i, t := range time {
		scaled[i] = t * coef
	}
	return
}

// AutoTimeScale chooses the time unit according to the final time
func AutoTimeScale(tend float64) (coef float64, label string) {
	switch {
	case tend < 1e-6:
		return 1e9, "t [ns]"
	case tend < 1e-3:
		return 1e6, "t [µs]"
	case tend < 1:
		return 1e3, "t [ms]"
	}
	return 1, "t [s]"
}

// CellEdges returns the edges of cells centred on nodes x: midpoints plus half spacing
// beyond both ends. The first edge mirrors the second node about the origin
func CellEdges(x []float64) (edges []float64) {
	n := len(x)
	if n < 2 {
		return
	}
	edges = make([]float64, n+1)
	edges[0] = -x[1] / 2.0
	for i := 1; i < n; i++ {
		edges[i] = (x[i] + x[i-1]) / 2.0
	}
	edges[n] = x[n-1] + (x[n-1]-x[n-2])/2.0
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func minmax(mat [][]float64) (mn, mx float64) {
	mn, mx = math.Inf(1), math.Inf(-1)
	for _, row := range mat {
		for _, v := range row {
			mn = math.Min(mn, v)
			mx = math.Max(mx, v)
		}
	}
	if math.IsInf(mn, 1) {
		return 0, 0
	}
	return
}

// lastLessEq returns the index of the last value such that vals[i] <= v; -1 if none
func lastLessEq(vals []float64, v float64) int {
	idx := -1
	for i, x := range vals {
		if x <= v {
			idx = i
		}
	}
	return idx
}
