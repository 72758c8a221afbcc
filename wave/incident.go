// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wave

// TrapezeWave returns a trapezoidal incident wave
//  Input:
//   plateau -- number of points on the plateau
//   rise    -- number of points of the rising part
//   fall    -- number of points of the falling part; 0 means rise
//   A       -- amplitude
func TrapezeWave(plateau, rise, fall int, A float64) (w []float64) {
	if fall == 0 {
		fall = rise
	}
	w = make([]float64, 0, rise+plateau+fall)
	for i := 0; i < rise; i++ {
		w = append(w, A*float64(i)/float64(rise))
	}
	for i := 0; i < plateau; i++ {
		w = append(w, A)
	}
	for i := fall - 1; i >= 0; i-- {
		w = append(w, A*float64(i)/float64(fall))
	}
	return
}

// StepWave returns a wave with amplitude A during the first n points, then zero up to length
func StepWave(n, length int, A float64) (w []float64) {
	if length < n {
		length = n
	}
	w = make([]float64, length)
	for i := 0; i < n; i++ {
		w[i] = A
	}
	return
}
