// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bar

import "github.com/cpmech/gosl/chk"

// End defines the condition at one end of a bar or segment
type End string

// end conditions
const (
	Free     End = "free"     // no force
	Fixed    End = "fixed"    // no velocity
	Infinite End = "infinite" // anechoic; waves leave the bar without reflection
	Interf   End = "interf"   // contact interface with the neighbour segment
	Impact   End = "impact"   // impacted end; force given by the incident wave
)

// ParseEnd converts a name into an end condition. An empty name gives Free
func ParseEnd(name string) (End, error) {
	switch name {
	case "", "free":
		return Free, nil
	case "fixed", "clamped":
		return Fixed, nil
	case "infinite", "anechoic":
		return Infinite, nil
	case "interf":
		return Interf, nil
	case "impact":
		return Impact, nil
	}
	return "", chk.Err("unknown end condition %q", name)
}

// Outer tells whether the condition can be used at an outer end of the bar
func (o End) Outer() bool {
	return o == Free || o == Fixed || o == Infinite
}
