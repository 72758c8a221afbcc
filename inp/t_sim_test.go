// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/dbrizard/elwaspatid/bar"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. json file with materials")

	sim, err := ReadSim("data/shpb.bar", "a")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	chk.String(tst, sim.Key, "shpb-a")
	chk.String(tst, sim.DirOut, "/tmp/elwaspatid/test")
	chk.String(tst, sim.EncType, "json")
	chk.String(tst, sim.Solver.Type, "wp2")
	chk.Int(tst, "nstep", sim.Solver.Nstep, 400)
	chk.Float64(tst, "contact loss", 1e-20, sim.Solver.ContactLoss, 1e-9)
	chk.Int(tst, "nmat", len(sim.Materials), 2)
	if sim.GetMat("alu") == nil || sim.GetMat("copper") != nil {
		tst.Errorf("GetMat failed")
	}

	// bar
	h, err := sim.BuildHete()
	if err != nil {
		tst.Errorf("BuildHete failed:\n%v", err)
		return
	}
	chk.Ints(tst, "nelt", h.Nelt, []int{98, 2, 98})
	chk.String(tst, string(h.Seg[2].Right), string(bar.Infinite))

	// incident wave
	w, err := sim.IncidentWave(h.Dt)
	if err != nil {
		tst.Errorf("IncidentWave failed:\n%v", err)
		return
	}
	chk.Int(tst, "len(incw)", len(w), 50)
	chk.Float64(tst, "incw[20]", 1e-15, w[20], -1e4)

	// output
	chk.Int(tst, "nprobes", len(sim.Output.Probes), 3)
	if sim.Output.Probes[1].Iseg == nil || *sim.Output.Probes[1].Iseg != 2 {
		tst.Errorf("probe 1 must be on segment 2")
	}
	if sim.Output.Probes[2].Iseg != nil {
		tst.Errorf("probe 2 must be global")
	}
	chk.Int(tst, "nformats", len(sim.Output.Formats), 2)
	chk.String(tst, sim.Output.Formats[1], "xlsx")
	if sim.Impact != nil {
		tst.Errorf("impact must be nil")
	}
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. toml file with change of section and impact")

	sim, err := ReadSim("data/striker.toml", "")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	chk.String(tst, sim.Key, "striker")
	chk.String(tst, sim.DirOut, "/tmp/elwaspatid/striker")
	chk.String(tst, sim.EncType, "gob")
	chk.String(tst, sim.Bar.Right, "free")
	chk.Float64(tst, "vinit", 1e-15, sim.Solver.Vinit, 5)

	h, err := sim.BuildHete()
	if err != nil {
		tst.Errorf("BuildHete failed:\n%v", err)
		return
	}
	chk.Ints(tst, "nelt", h.Nelt, []int{10, 40})
	chk.Float64(tst, "d[39]", 1e-15, h.D[39], 0.03)
	chk.Float64(tst, "d[40]", 1e-15, h.D[40], 0.02)
	chk.Float64(tst, "d[49]", 1e-15, h.D[49], 0.02)
	chk.Float64(tst, "A[49]", 1e-15, h.A[49], bar.Area(0.02))

	w, err := sim.IncidentWave(h.Dt)
	if err != nil || w != nil {
		tst.Errorf("incident wave must be nil without error")
	}

	if sim.Impact == nil {
		tst.Errorf("impact must be given")
		return
	}
	chk.Int(tst, "nprms", len(sim.Impact.Prms), 4)
	chk.Float64(tst, "d1", 1e-15, sim.Impact.Prms.Find("d1").V, 0.04)
	chk.Int(tst, "npts", sim.Impact.Npts, 200)
	chk.Int(tst, "nterms", sim.Impact.Nterms, 16)
	if len(sim.Output.Probes) != 1 || *sim.Output.Probes[0].Iseg != 1 {
		tst.Errorf("probe must be on segment 1")
	}
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. homogeneous and grooved bars")

	sim, err := ReadSim("data/homo.json", "")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	chk.String(tst, sim.EncType, "gob")
	chk.String(tst, sim.Solver.Left, "infinite")
	b, err := sim.BuildBar()
	if err != nil {
		tst.Errorf("BuildBar failed:\n%v", err)
		return
	}
	h, ok := b.(*bar.Homo)
	if !ok {
		tst.Errorf("bar must be homogeneous")
		return
	}
	chk.Int(tst, "nelt", h.Nelems(), 8)
	chk.Float64(tst, "Z3/Z2", 1e-15, h.Z[3]/h.Z[2], 2.25)
	if _, err = sim.BuildHete(); err == nil {
		tst.Errorf("homogeneous bar has no segments")
	}
	w, err := sim.IncidentWave(h.Dt)
	if err != nil {
		tst.Errorf("IncidentWave failed:\n%v", err)
		return
	}
	chk.Array(tst, "step", 1e-15, w, []float64{1000, 1000, 1000, 0, 0, 0, 0, 0, 0, 0, 0, 0})

	// single diameter
	sim.Bar.Diam = []float64{0.02}
	sim.Bar.Nelt = 5
	b, err = sim.BuildBar()
	if err != nil {
		tst.Errorf("BuildBar failed:\n%v", err)
		return
	}
	chk.Int(tst, "nelt", b.Nelems(), 5)

	// durations
	sim.Incident = IncidentData{Kind: "trapeze", Tplat: 3e-6, Trise: 1e-6, Amp: 2}
	w, err = sim.IncidentWave(1e-6)
	if err != nil {
		tst.Errorf("IncidentWave failed:\n%v", err)
		return
	}
	chk.Array(tst, "trapeze", 1e-15, w, []float64{0, 2, 2, 2, 0})

	// grooved
	sim, err = ReadSim("data/grooved.bar", "")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	chk.String(tst, sim.Solver.Type, "wp2")
	g, err := sim.BuildHete()
	if err != nil {
		tst.Errorf("BuildHete failed:\n%v", err)
		return
	}
	chk.Int(tst, "nseg", g.Nseg(), 6)
	chk.Float64(tst, "d0", 1e-15, g.Continuous.D[0], 0.03)
	if g.Continuous.D[1] >= 0.03 {
		tst.Errorf("pin hole must reduce the equivalent diameter")
	}
}

func Test_sim04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim04. errors and output directory")

	if _, err := ReadSim("data/inexistent.bar", ""); err == nil {
		tst.Errorf("inexistent file must fail")
	}
	if _, err := ReadSim("data/bad.bar", ""); err == nil {
		tst.Errorf("interf at outer end must fail")
	}
	sim, err := ReadSim("data/nomat.bar", "")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	if _, err = sim.BuildBar(); err == nil {
		tst.Errorf("unknown material must fail")
	}
	if _, err = sim.IncidentWave(1e-6); err == nil {
		tst.Errorf("unknown incident wave must fail")
	}
	sim.Bar.Type = "tapered"
	if _, err = sim.BuildBar(); err == nil {
		tst.Errorf("unknown bar type must fail")
	}

	// output directory
	sim.DirOut = filepath.Join(tst.TempDir(), "out")
	err = sim.PrepareDirOut(false)
	if err != nil {
		tst.Errorf("PrepareDirOut failed:\n%v", err)
		return
	}
	fn := filepath.Join(sim.DirOut, sim.Key+"_res.gob")
	err = ioutil.WriteFile(fn, []byte("old"), 0644)
	if err != nil {
		tst.Errorf("cannot write file:\n%v", err)
		return
	}
	err = sim.PrepareDirOut(true)
	if err != nil {
		tst.Errorf("PrepareDirOut failed:\n%v", err)
		return
	}
	if _, err = os.Stat(fn); !os.IsNotExist(err) {
		tst.Errorf("previous results must be erased")
	}
}
