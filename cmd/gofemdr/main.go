// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dynarelax/gofem-dr/dr"
	"github.com/dynarelax/gofem-dr/inp"
)

func main() {

	verbose := true

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nGofemDR -- Dynamic Relaxation solver for pin-jointed networks\n\n")
	io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a network filename. Ex.: truss.json")
	}

	if io.FnExt(fnamepath) == "" {
		fnamepath += ".json"
	}

	if len(flag.Args()) > 1 {
		verbose = io.Atob(flag.Arg(1))
	}

	net, opts := inp.ReadNetwork(fnamepath)
	opts.Verbose = verbose

	io.Pf("vertices = %d (free = %d, fixed = %d)\n", net.NV, len(net.Free()), net.NV-len(net.Free()))
	io.Pf("edges    = %d\n\n", net.NE)

	res, err := dr.Solve(net, opts)
	if err != nil {
		chk.Panic("Solve failed:\n%v", err)
	}

	io.Pf("\n")
	io.PfGreen("iterations = %d\n", res.Iterations)
	io.PfGreen("crit1      = %v\n", res.Crit1)
	io.PfGreen("crit2      = %v\n", res.Crit2)
	for i, x := range res.X {
		io.Pf("x[%d] = %v\n", i, x)
	}
}
