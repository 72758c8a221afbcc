// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/csv"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/xuri/excelize/v2"
)

// sheet names
const (
	SheetProbes = "Probes"
	SheetForce  = "Force"
)

// Header returns the titles of the probes table: time then force, velocity and displacement of each probe
func (o *Results) Header() (h []string) {
	h = []string{"t [s]"}
	for _, p := range o.Probes {
		h = append(h, io.Sf("F@%s [N]", p.Alias), io.Sf("V@%s [m/s]", p.Alias), io.Sf("D@%s [m]", p.Alias))
	}
	return
}

// Row returns the values of the probes table at time index it
func (o *Results) Row(it int) (row []float64) {
	row = make([]float64, 1, 1+3*len(o.Probes))
	row[0] = o.Time[it]
	for _, p := range o.Probes {
		row = append(row, p.Force[it], p.Veloc[it], p.Displ[it])
	}
	return
}

// WriteCSV writes the time histories of all probes
func (o *Results) WriteCSV(filename string) (err error) {
	return writeCSV(filename, o.Header(), len(o.Time), o.Row)
}

// WriteColumns writes columns of equal length to a csv file, one column per title in header
func WriteColumns(filename string, header []string, cols ...[]float64) (err error) {
	if len(cols) != len(header) {
		return chk.Err("number of columns (%d) must equal the number of titles (%d)", len(cols), len(header))
	}
	if len(cols) == 0 {
		return chk.Err("at least one column is required")
	}
	for j, col := range cols {
		if len(col) != len(cols[0]) {
			return chk.Err("column %q has %d values instead of %d", header[j], len(col), len(cols[0]))
		}
	}
	return writeCSV(filename, header, len(cols[0]), func(i int) (row []float64) {
		row = make([]float64, len(cols))
		for j, col := range cols {
			row[j] = col[i]
		}
		return
	})
}

// writeCSV writes a header then nrows rows of values
func writeCSV(filename string, header []string, nrows int, row func(int) []float64) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	w := csv.NewWriter(fil)
	err = w.Write(header)
	if err != nil {
		return
	}
	for i := 0; i < nrows; i++ {
		vals := row(i)
		rec := make([]string, len(vals))
		for j, v := range vals {
			rec[j] = io.Sf("%.8g", v)
		}
		err = w.Write(rec)
		if err != nil {
			return
		}
	}
	w.Flush()
	return w.Error()
}

// WriteXLSX writes the time histories of all probes (sheet Probes) and the force at all
// nodes (sheet Force; one row per time and one column per node)
func (o *Results) WriteXLSX(filename string) (err error) {
	if len(o.X)+1 > excelize.MaxColumns || len(o.Time)+1 > excelize.TotalRows {
		return chk.Err("force matrix (%d times, %d nodes) is too large for a spreadsheet", len(o.Time), len(o.X))
	}
	f := excelize.NewFile()
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()

	// probes
	err = f.SetSheetName("Sheet1", SheetProbes)
	if err != nil {
		return
	}
	hp := o.Header()
	err = o.stream(f, SheetProbes, toCells(hp), len(o.Time), func(it int) []interface{} {
		return toValues(o.Row(it))
	})
	if err != nil {
		return
	}

	// force
	_, err = f.NewSheet(SheetForce)
	if err != nil {
		return
	}
	hf := make([]interface{}, 1+len(o.X))
	hf[0] = "t [s] \\ x [m]"
	for j, x := range o.X {
		hf[1+j] = x
	}
	err = o.stream(f, SheetForce, hf, len(o.Time), func(it int) []interface{} {
		return toValues(append([]float64{o.Time[it]}, o.Force[it]...))
	})
	if err != nil {
		return
	}
	return f.SaveAs(filename)
}

// Export writes the requested formats (csv, xlsx) to <dirout>/<fnkey>.<format> and returns the filenames
func (o *Results) Export(dirout, fnkey string, formats []string, verbose bool) (files []string, err error) {
	for _, format := range formats {
		fn := path.Join(dirout, io.Sf("%s.%s", fnkey, format))
		switch format {
		case "csv":
			err = o.WriteCSV(fn)
		case "xlsx":
			err = o.WriteXLSX(fn)
		default:
			return files, chk.Err("export format %q is invalid. Use csv or xlsx", format)
		}
		if err != nil {
			return files, chk.Err("cannot write %s file:\n%v", format, err)
		}
		if verbose {
			io.Pfblue2("file <%s> written\n", fn)
		}
		files = append(files, fn)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// stream writes a header row and nrows rows with the excelize stream writer
func (o *Results) stream(f *excelize.File, sheet string, header []interface{}, nrows int, row func(int) []interface{}) (err error) {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return
	}
	err = sw.SetRow("A1", header)
	if err != nil {
		return
	}
	for i := 0; i < nrows; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		err = sw.SetRow(cell, row(i))
		if err != nil {
			return err
		}
	}
	return sw.Flush()
}

func toCells(s []string) (res []interface{}) {
	res = make([]interface{}, len(s))
	for i, v := range s {
		res[i] = v
	}
	return
}

func toValues(v []float64) (res []interface{}) {
	res = make([]interface{}, len(v))
	for i, x := range v {
		res[i] = x
	}
	return
}
