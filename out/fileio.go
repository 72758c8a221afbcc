// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Save saves results to <dirout>/<fnkey>_res.<enctype>
func (o *Results) Save(dirout, fnkey, enctype string, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)

	// encode results
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode results\n%v", err)
	}

	// save file
	fn := out_res_path(dirout, fnkey, enctype)
	return save_file(fn, &buf, verbose)
}

// Read reads results saved by Save. Probes cannot be defined on results read from file
func Read(dir, fnkey, enctype string) (o *Results, err error) {

	// open file
	fn := out_res_path(dir, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()

	// decode results
	o = new(Results)
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode results\n%v", err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_res_path(dir, fnkey, enctype string) string {
	return path.Join(dir, io.Sf("%s_res.%s", fnkey, enctype))
}

func out_sum_path(dir, fnkey, enctype string) string {
	return path.Join(dir, io.Sf("%s_sum.%s", fnkey, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
