// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dr

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestComputeMassBasic(tst *testing.T) {

	chk.PrintTitle("ComputeMassBasic")

	n := &Network{
		NE:     1,
		QPre:   []float64{2},
		FPre:   []float64{0},
		LPre:   []float64{0},
		Linit:  []float64{1},
		EMod:   []float64{0},
		Radius: []float64{0},
	}
	conn := NewConnectivity(2, [][2]int{{0, 1}}, []bool{true, false})
	terms := ComputeEdgeLaws(n, []float64{1}, []float64{0})
	dt := 1.0
	mass := ComputeMass(conn, n, terms, dt)
	// mass lumping term per edge = q_pre = 2; mass[i] = 0.5*dt^2*Ct2*term
	chk.Float64(tst, "mass[0]", 1e-15, mass[0], 0.5*dt*dt*2)
	chk.Float64(tst, "mass[1]", 1e-15, mass[1], 0.5*dt*dt*2)
}

func TestComputeMassZero(tst *testing.T) {

	chk.PrintTitle("ComputeMassZero")

	n := &Network{
		NE:     1,
		QPre:   []float64{0},
		FPre:   []float64{0},
		LPre:   []float64{0},
		Linit:  []float64{0},
		EMod:   []float64{0},
		Radius: []float64{0},
	}
	conn := NewConnectivity(2, [][2]int{{0, 1}}, []bool{true, false})
	terms := ComputeEdgeLaws(n, []float64{1}, []float64{0})
	mass := ComputeMass(conn, n, terms, 1.0)
	chk.Float64(tst, "mass[1]", 1e-15, mass[1], 0)
}
