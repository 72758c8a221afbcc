// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Summary records summary of outputs
type Summary struct {

	// main data
	Solver   string   // solver name
	Dt       float64  // time step
	Nsteps   int      // number of time steps
	Nnodes   int      // number of nodes
	Nseg     int      // number of segments
	MaxForce float64  // maximum absolute force
	Dirout   string   // directory where results are stored
	Fnkey    string   // filename key of simulation
	Files    []string // exported files

	// interfaces: number of (time, interface) pairs
	Ncontact   int // in contact
	Nseparated int // separated
	Nindented  int // with indentation
}

// NewSummary summarises results
func NewSummary(res *Results, dirout, fnkey string) (o *Summary) {
	o = &Summary{
		Solver:   res.Solver,
		Dt:       res.Dt,
		Nsteps:   res.Nsteps(),
		Nnodes:   res.Nnodes(),
		Nseg:     res.Nseg,
		MaxForce: res.MaxForce(),
		Dirout:   dirout,
		Fnkey:    fnkey,
	}
	o.Ncontact, o.Nseparated, o.Nindented = res.ContactCount()
	return
}

// Save saves summary to <dirout>/<fnkey>_sum.<enctype>
func (o Summary) Save(enctype string, verbose bool) (err error) {
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode summary\n%v", err)
	}
	return save_file(out_sum_path(o.Dirout, o.Fnkey, enctype), &buf, verbose)
}

// ReadSum reads summary back
func ReadSum(dir, fnkey, enctype string) (o *Summary, err error) {

	// open file
	fil, err := os.Open(out_sum_path(dir, fnkey, enctype))
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()

	// decode summary
	o = new(Summary)
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode summary\n%v", err)
	}
	return
}

// String returns a text representation of the summary
func (o Summary) String() string {
	var b bytes.Buffer
	io.Ff(&b, "solver      = %s\n", o.Solver)
	io.Ff(&b, "dt          = %g s\n", o.Dt)
	io.Ff(&b, "nsteps      = %d\n", o.Nsteps)
	io.Ff(&b, "nnodes      = %d\n", o.Nnodes)
	io.Ff(&b, "nseg        = %d\n", o.Nseg)
	io.Ff(&b, "max |F|     = %g N\n", o.MaxForce)
	if o.Nseg > 1 {
		io.Ff(&b, "contact     = %d\n", o.Ncontact)
		io.Ff(&b, "separated   = %d\n", o.Nseparated)
		io.Ff(&b, "indented    = %d\n", o.Nindented)
	}
	for _, f := range o.Files {
		io.Ff(&b, "file        = %s\n", f)
	}
	return b.String()
}
