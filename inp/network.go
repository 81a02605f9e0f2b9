// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/dynarelax/gofem-dr/dr"
)

// FuncSpec names a prescribed function by type and parameters, following
// inp.FuncData's "name/type/prms" JSON shape; only Type and Prms are
// needed here since a network file has at most one load-scaling function.
type FuncSpec struct {
	Type string     `json:"type"` // e.g. "cte", "rmp"
	Prms dbf.Params `json:"prms"` // function parameters
}

// OptionsData is the JSON-serializable mirror of dr.Options. Pointer
// fields distinguish "absent from the file" from "present with a
// JSON-legal zero value", resolving the zero-is-unset ambiguity that
// dr.DefaultOptions documents as the reason Solve itself does not
// default-fill (see dr/options.go).
type OptionsData struct {
	KMax  *int     `json:"kmax"`
	Dt    *float64 `json:"dt"`
	Tol1  *float64 `json:"tol1"`
	Tol2  *float64 `json:"tol2"`
	C     *float64 `json:"c"`
	Steps *int     `json:"steps"`

	Verbose  bool      `json:"verbose"`
	LoadFunc *FuncSpec `json:"loadfunc"`
}

// NetworkData is the JSON-serializable mirror of dr.Network, plus the
// Options for the solve.
type NetworkData struct {
	Vertices [][]float64 `json:"vertices"`
	Edges    [][2]int    `json:"edges"`
	Fixed    []bool      `json:"fixed"`
	Loads    [][]float64 `json:"loads"`

	QPre   []float64 `json:"qpre"`
	FPre   []float64 `json:"fpre"`
	LPre   []float64 `json:"lpre"`
	Linit  []float64 `json:"linit"`
	EMod   []float64 `json:"emod"`
	Radius []float64 `json:"radius"`

	Options OptionsData `json:"options"`
}

// ReadNetwork reads and unmarshals a network file into a dr.Network and
// its dr.Options: io.ReadFile → json.Unmarshal, then dr.DefaultOptions
// overridden by every option key present in the file. It follows
// inp.ReadSim's convention of panicking (via chk.Panic)
// rather than returning an error, since a malformed input file is a
// startup-time configuration mistake, not a recoverable runtime error.
func ReadNetwork(path string) (*dr.Network, dr.Options) {
	b, err := io.ReadFile(path)
	if err != nil {
		chk.Panic("ReadNetwork: cannot read network file %q:\n%v", path, err)
	}

	var d NetworkData
	if err := json.Unmarshal(b, &d); err != nil {
		chk.Panic("ReadNetwork: cannot unmarshal network file %q:\n%v", path, err)
	}

	net := &dr.Network{
		NV:       len(d.Vertices),
		NE:       len(d.Edges),
		Vertices: d.Vertices,
		Edges:    d.Edges,
		Fixed:    d.Fixed,
		Loads:    d.Loads,
		QPre:     d.QPre,
		FPre:     d.FPre,
		LPre:     d.LPre,
		Linit:    d.Linit,
		EMod:     d.EMod,
		Radius:   d.Radius,
	}

	opts := dr.DefaultOptions()
	if d.Options.KMax != nil {
		opts.KMax = *d.Options.KMax
	}
	if d.Options.Dt != nil {
		opts.Dt = *d.Options.Dt
	}
	if d.Options.Tol1 != nil {
		opts.Tol1 = *d.Options.Tol1
	}
	if d.Options.Tol2 != nil {
		opts.Tol2 = *d.Options.Tol2
	}
	if d.Options.C != nil {
		opts.C = *d.Options.C
	}
	if d.Options.Steps != nil {
		opts.Steps = *d.Options.Steps
	}
	opts.Verbose = d.Options.Verbose
	if d.Options.LoadFunc != nil {
		fcn, err := fun.New(d.Options.LoadFunc.Type, d.Options.LoadFunc.Prms)
		if err != nil {
			chk.Panic("ReadNetwork: cannot build loadfunc %q:\n%v", d.Options.LoadFunc.Type, err)
		}
		opts.LoadFunc = fcn
	}

	return net, opts
}
