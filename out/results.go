// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Define locates a node and records its time histories under alias.
// An empty alias is replaced by the abscissa of the node
func (o *Results) Define(alias string, loc Locator) (err error) {
	err = o.live()
	if err != nil {
		return
	}
	p, err := loc.Locate(o)
	if err != nil {
		return chk.Err("cannot define probe %q:\n%v", alias, err)
	}
	if alias == "" {
		alias = io.Sf("%g", p.X)
	}
	if o.GetProbe(alias) != nil {
		return chk.Err("probe %q is already defined", alias)
	}
	p.Alias = alias
	o.Probes = append(o.Probes, p)
	return
}

// GetProbe returns a probe by alias; nil if not found
func (o *Results) GetProbe(alias string) *Probe {
	for _, p := range o.Probes {
		if p.Alias == alias {
			return p
		}
	}
	return nil
}

// GetRes returns the time history of a probe
//  key -- F (force), V (velocity) or D (displacement)
func (o *Results) GetRes(key, alias string) (res []float64, err error) {
	p := o.GetProbe(alias)
	if p == nil {
		return nil, chk.Err("cannot find probe %q", alias)
	}
	switch key {
	case "F":
		return p.Force, nil
	case "V":
		return p.Veloc, nil
	case "D":
		return p.Displ, nil
	}
	return nil, chk.Err("key %q is invalid. Use F, V or D", key)
}

// Peak returns the maximum absolute value of the time history of a probe and its time
func (o *Results) Peak(key, alias string) (peak, t float64, err error) {
	res, err := o.GetRes(key, alias)
	if err != nil {
		return
	}
	for i, v := range res {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak, t = v, o.Time[i]
		}
	}
	return
}
