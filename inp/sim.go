// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.bar) JSON or a TOML file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/dbrizard/elwaspatid/bar"
	"github.com/dbrizard/elwaspatid/wave"
)

// Material holds the parameters of one elastic material
type Material struct {
	Name string   `json:"name" toml:"name"` // name of material. ex: steel
	Desc string   `json:"desc" toml:"desc"` // description
	Prms fun.Prms `json:"prms" toml:"prms"` // parameters: E [Pa], rho [kg/m³]
}

// SegmentData holds one cylindrical piece of a heterogeneous bar
type SegmentData struct {
	Mat string  `json:"mat" toml:"mat"` // material name; E and rho are then ignored
	E   float64 `json:"E" toml:"E"`     // Young's modulus
	Rho float64 `json:"rho" toml:"rho"` // density
	L   float64 `json:"L" toml:"L"`     // length
	D   float64 `json:"d" toml:"d"`     // diameter
}

// SectionData holds a change of section inside a segment
type SectionData struct {
	Iseg int     `json:"iseg" toml:"iseg"` // index of segment
	L    float64 `json:"l" toml:"l"`       // local abscissa where the new section starts
	D    float64 `json:"d" toml:"d"`       // new diameter
}

// BarData holds the definition of the bar
type BarData struct {

	// kind
	Type string `json:"type" toml:"type"` // hete, homo or grooved

	// heterogeneous bar
	Segments []*SegmentData `json:"segments" toml:"segments"` // pieces of the bar
	Nmin     int            `json:"nmin" toml:"nmin"`         // minimum number of elements in a piece
	Dt       float64        `json:"dt" toml:"dt"`             // time step; 0 means computed from nmin
	Right    string         `json:"right" toml:"right"`       // right end of the last segment
	Sections []*SectionData `json:"sections" toml:"sections"` // changes of section inside segments

	// homogeneous bar (also material of grooved bar)
	Dx   float64   `json:"dx" toml:"dx"`     // length of elements
	Diam []float64 `json:"d" toml:"d"`       // diameter of each element; a single value is repeated nelt times
	Nelt int       `json:"nelt" toml:"nelt"` // number of elements if a single diameter is given
	Mat  string    `json:"mat" toml:"mat"`   // material name
	E    float64   `json:"E" toml:"E"`       // Young's modulus
	Rho  float64   `json:"rho" toml:"rho"`   // density

	// grooved bar
	Interv []float64 `json:"interv" toml:"interv"` // intervals between grooves
	Lg     float64   `json:"lg" toml:"lg"`         // length of grooves
	LL     float64   `json:"LL" toml:"LL"`         // total length
	D0     float64   `json:"d0" toml:"d0"`         // bar diameter
	D1     float64   `json:"d1" toml:"d1"`         // diameter at grooves or pin diameter
	Pin    bool      `json:"pin" toml:"pin"`       // pin holes instead of grooves
}

// IncidentData holds the incident wave applied to the left end of the first segment
type IncidentData struct {
	Kind    string    `json:"kind" toml:"kind"`         // trapeze, step, values or none
	Amp     float64   `json:"amp" toml:"amp"`           // amplitude [N]
	Plateau int       `json:"plateau" toml:"plateau"`   // trapeze: number of steps of the plateau
	Rise    int       `json:"rise" toml:"rise"`         // trapeze: number of steps of the rise
	Fall    int       `json:"fall" toml:"fall"`         // trapeze: number of steps of the fall; 0 means rise
	Tplat   float64   `json:"tplateau" toml:"tplateau"` // trapeze: duration of plateau; used if plateau is 0
	Trise   float64   `json:"trise" toml:"trise"`       // trapeze: duration of rise; used if rise is 0
	Tfall   float64   `json:"tfall" toml:"tfall"`       // trapeze: duration of fall; used if fall is 0
	N       int       `json:"n" toml:"n"`               // step: number of steps with amplitude
	Tstep   float64   `json:"tstep" toml:"tstep"`       // step: duration; used if n is 0
	Length  int       `json:"length" toml:"length"`     // step: total number of steps
	Values  []float64 `json:"values" toml:"values"`     // values: force at each step
}

// SolverData holds the solver type and options
type SolverData struct {
	Type          string  `json:"type" toml:"type"`                   // wp2 or waveprop
	Nstep         int     `json:"nstep" toml:"nstep"`                 // number of time steps; 0 means default
	Left          string  `json:"left" toml:"left"`                   // left end after the incident wave
	Right         string  `json:"right" toml:"right"`                 // right end of the bar; "" means the bar's one
	Vinit         float64 `json:"vinit" toml:"vinit"`                 // initial velocity
	IndV          int     `json:"indv" toml:"indv"`                   // waveprop: number of nodes with initial velocity
	ContactLoss   float64 `json:"contactloss" toml:"contactloss"`     // wp2: gap threshold
	NoContactLoss bool    `json:"nocontactloss" toml:"nocontactloss"` // wp2: segments always stay in contact
	Damper        float64 `json:"damper" toml:"damper"`               // waveprop: damping coefficient at right end
	Spring        float64 `json:"spring" toml:"spring"`               // waveprop: spring stiffness at right end
}

// ProbeData holds a location where time histories are recorded
type ProbeData struct {
	Iseg *int    `json:"iseg" toml:"iseg"` // index of segment; nil means x is global
	X    float64 `json:"x" toml:"x"`       // abscissa
}

// OutputData holds output options
type OutputData struct {
	DirOut  string       `json:"dirout" toml:"dirout"`   // directory for output; default is /tmp/elwaspatid/<key>
	Encoder string       `json:"encoder" toml:"encoder"` // encoder name: gob or json
	Formats []string     `json:"formats" toml:"formats"` // exports: csv, xlsx
	Probes  []*ProbeData `json:"probes" toml:"probes"`   // probes
}

// ImpactData holds the parameters of the analytical striker impact
type ImpactData struct {
	Prms   fun.Prms `json:"prms" toml:"prms"`     // E, rho, d, d1, d2, L, V
	Tmin   float64  `json:"tmin" toml:"tmin"`     // first time
	Tmax   float64  `json:"tmax" toml:"tmax"`     // last time; 0 means 3 round trips
	Npts   int      `json:"npts" toml:"npts"`     // number of times
	Nterms int      `json:"nterms" toml:"nterms"` // number of terms of the summation
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Desc      string       `json:"desc" toml:"desc"`           // description of simulation
	Materials []*Material  `json:"materials" toml:"materials"` // materials
	Bar       BarData      `json:"bar" toml:"bar"`             // bar
	Incident  IncidentData `json:"incident" toml:"incident"`   // incident wave
	Solver    SolverData   `json:"solver" toml:"solver"`       // solver
	Output    OutputData   `json:"output" toml:"output"`       // output
	Impact    *ImpactData  `json:"impact" toml:"impact"`       // analytical impact; optional

	// derived
	Path    string // path of simulation file
	Dir     string // directory of simulation file
	Key     string // simulation key; e.g. mysim01.bar => mysim01 or mysim01.bar + alias => mysim01-alias
	DirOut  string // directory to save results
	EncType string // encoder type
}

// SetDefault sets default values of solver options
func (o *SolverData) SetDefault() {
	o.Type = "wp2"
	o.ContactLoss = wave.DefaultContactLoss
}

// SetDefault sets default values of bar data
func (o *BarData) SetDefault() {
	o.Type = "hete"
	o.Nmin = 4
	o.Right = string(bar.Free)
}

// ReadSim reads all simulation data from a .bar (JSON), .json or .toml file
func ReadSim(simfilepath, alias string) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Bar.SetDefault()
	o.Solver.SetDefault()

	// decode
	switch strings.ToLower(filepath.Ext(simfilepath)) {
	case ".toml":
		err = toml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q\n%v", simfilepath, err)
	}

	// input directory and filename key
	o.Path = simfilepath
	o.Dir = os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Output.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/elwaspatid/" + fnkey
	}

	// encoder type
	o.EncType = o.Output.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// check
	err = o.check()
	if err != nil {
		return nil, chk.Err("ReadSim: %q is invalid:\n%v", simfilepath, err)
	}
	return
}

// PrepareDirOut creates the output directory and, if erase, removes previous results
func (o *Simulation) PrepareDirOut(erase bool) (err error) {
	err = os.MkdirAll(o.DirOut, 0777)
	if err != nil {
		return chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
	}
	if erase {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}
	return
}

// GetMat returns a material by name; nil if not found
func (o *Simulation) GetMat(name string) *Material {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// BuildBar discretizes the bar. The result is a *bar.Hete for hete and grooved bars
func (o *Simulation) BuildBar() (b bar.Discrete, err error) {
	switch o.Bar.Type {
	case "hete":
		return o.buildHete()
	case "homo":
		return o.buildHomo()
	case "grooved":
		return o.buildGrooved()
	}
	return nil, chk.Err("bar type %q is invalid. Use hete, homo or grooved", o.Bar.Type)
}

// BuildHete discretizes the bar and requires a segmented one (for the wp2 solver)
func (o *Simulation) BuildHete() (h *bar.Hete, err error) {
	b, err := o.BuildBar()
	if err != nil {
		return
	}
	h, ok := b.(*bar.Hete)
	if !ok {
		return nil, chk.Err("bar of type %q has no segments", o.Bar.Type)
	}
	return
}

// IncidentWave returns the force applied at each time step on the left end
func (o *Simulation) IncidentWave(dt float64) (w []float64, err error) {
	dat := o.Incident
	nsteps := func(n int, t float64) int {
		if n == 0 && t > 0 && dt > 0 {
			return int(math.Round(t / dt))
		}
		return n
	}
	switch dat.Kind {
	case "", "none":
		return nil, nil
	case "trapeze":
		plateau := nsteps(dat.Plateau, dat.Tplat)
		rise := nsteps(dat.Rise, dat.Trise)
		fall := nsteps(dat.Fall, dat.Tfall)
		if plateau < 0 || rise < 0 || fall < 0 {
			return nil, chk.Err("trapeze wave needs non-negative numbers of steps. plateau=%d rise=%d fall=%d", plateau, rise, fall)
		}
		return wave.TrapezeWave(plateau, rise, fall, dat.Amp), nil
	case "step":
		n := nsteps(dat.N, dat.Tstep)
		if n < 1 {
			return nil, chk.Err("step wave needs at least one step")
		}
		return wave.StepWave(n, dat.Length, dat.Amp), nil
	case "values":
		if len(dat.Values) == 0 {
			return nil, chk.Err("incident wave of kind values has no values")
		}
		return append([]float64{}, dat.Values...), nil
	}
	return nil, chk.Err("incident wave kind %q is invalid. Use trapeze, step, values or none", dat.Kind)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// check checks names and values that can be verified before building the bar
func (o *Simulation) check() (err error) {
	switch o.Solver.Type {
	case "wp2", "waveprop":
	default:
		return chk.Err("solver type %q is invalid. Use wp2 or waveprop", o.Solver.Type)
	}
	for _, name := range []string{o.Bar.Right, o.Solver.Left, o.Solver.Right} {
		end, err := bar.ParseEnd(name)
		if err != nil {
			return err
		}
		if !end.Outer() {
			return chk.Err("end condition %q cannot be used at an outer end", name)
		}
	}
	for _, f := range o.Output.Formats {
		if f != "csv" && f != "xlsx" {
			return chk.Err("output format %q is invalid. Use csv or xlsx", f)
		}
	}
	for i, m := range o.Materials {
		if m.Name == "" {
			return chk.Err("material %d has no name", i)
		}
	}
	return
}

// props returns E and rho from a material name or from given values
func (o *Simulation) props(mat string, E, rho float64) (float64, float64, error) {
	if mat != "" {
		m := o.GetMat(mat)
		if m == nil {
			return 0, 0, chk.Err("cannot find material named %q", mat)
		}
		pE, prho := m.Prms.Find("E"), m.Prms.Find("rho")
		if pE == nil || prho == nil {
			return 0, 0, chk.Err("material %q needs parameters E and rho", mat)
		}
		E, rho = pE.V, prho.V
	}
	if E <= 0 || rho <= 0 {
		return 0, 0, chk.Err("E and rho must be positive. E=%g rho=%g is invalid", E, rho)
	}
	return E, rho, nil
}

func (o *Simulation) buildHete() (h *bar.Hete, err error) {
	n := len(o.Bar.Segments)
	if n == 0 {
		return nil, chk.Err("hete bar has no segments")
	}
	E, rho := make([]float64, n), make([]float64, n)
	L, d := make([]float64, n), make([]float64, n)
	for i, s := range o.Bar.Segments {
		E[i], rho[i], err = o.props(s.Mat, s.E, s.Rho)
		if err != nil {
			return nil, chk.Err("segment %d: %v", i, err)
		}
		L[i], d[i] = s.L, s.D
	}
	right, _ := bar.ParseEnd(o.Bar.Right)
	h, err = bar.NewHete(E, rho, L, d, o.Bar.Dt, o.Bar.Nmin, right)
	if err != nil {
		return
	}
	for _, sec := range o.Bar.Sections {
		err = h.ChangeSection(sec.Iseg, sec.L, sec.D)
		if err != nil {
			return nil, err
		}
	}
	return
}

func (o *Simulation) buildHomo() (h *bar.Homo, err error) {
	E, rho, err := o.props(o.Bar.Mat, o.Bar.E, o.Bar.Rho)
	if err != nil {
		return
	}
	d := o.Bar.Diam
	if len(d) == 1 && o.Bar.Nelt > 1 {
		d = make([]float64, o.Bar.Nelt)
		for i := range d {
			d[i] = o.Bar.Diam[0]
		}
	}
	return bar.NewHomo(o.Bar.Dx, d, E, rho)
}

func (o *Simulation) buildGrooved() (h *bar.Hete, err error) {
	dat := bar.DefaultGrooveData(o.Bar.Interv)
	if o.Bar.Mat != "" || o.Bar.E > 0 {
		dat.E, dat.Rho, err = o.props(o.Bar.Mat, o.Bar.E, o.Bar.Rho)
		if err != nil {
			return
		}
	}
	if o.Bar.Lg > 0 {
		dat.Lg = o.Bar.Lg
	}
	if o.Bar.LL > 0 {
		dat.LL = o.Bar.LL
	}
	if o.Bar.D0 > 0 {
		dat.D0 = o.Bar.D0
	}
	if o.Bar.D1 > 0 {
		dat.D1 = o.Bar.D1
	}
	dat.Pin = o.Bar.Pin
	h, _, err = bar.Grooved(dat)
	return
}
