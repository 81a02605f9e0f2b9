// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dr

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// two vertices, one edge (0,1): C = [-1, 1]
func TestConnectivityEdgeVectors(tst *testing.T) {

	chk.PrintTitle("ConnectivityEdgeVectors")

	conn := NewConnectivity(2, [][2]int{{0, 1}}, []bool{true, false})
	x := [][]float64{{0, 0, 0}, {3, 4, 0}}
	u := conn.EdgeVectors(x)
	chk.Array(tst, "u[0]", 1e-15, u[0], []float64{3, 4, 0})
}

func TestConnectivityApplyStiffness(tst *testing.T) {

	chk.PrintTitle("ConnectivityApplyStiffness")

	conn := NewConnectivity(2, [][2]int{{0, 1}}, []bool{true, false})
	x := [][]float64{{0, 0, 0}, {1, 0, 0}}
	q := []float64{2}
	fia := conn.ApplyStiffness(q, x)
	// fia[1] = Cᵀ·diag(q)·u = +1 * q[0] * u[0] = 2*(1,0,0)
	chk.Array(tst, "fia[1]", 1e-15, fia[1], []float64{2, 0, 0})
	// fia[0] = -1 * q[0] * u[0] = -2*(1,0,0)
	chk.Array(tst, "fia[0]", 1e-15, fia[0], []float64{-2, 0, 0})
}

func TestConnectivityLumpedSum(tst *testing.T) {

	chk.PrintTitle("ConnectivityLumpedSum")

	// a chain 0-1-2: vertex 1 touches both edges
	conn := NewConnectivity(3, [][2]int{{0, 1}, {1, 2}}, []bool{true, false, true})
	v := []float64{5, 7}
	sum := conn.LumpedSum(v)
	chk.Array(tst, "lumped", 1e-15, sum, []float64{5, 12, 7})
}

func TestConnectivityFreeMask(tst *testing.T) {

	chk.PrintTitle("ConnectivityFreeMask")

	conn := NewConnectivity(3, [][2]int{{0, 1}, {1, 2}}, []bool{true, false, true})
	if conn.Free[0] || !conn.Free[1] || conn.Free[2] {
		tst.Errorf("Free mask wrong: %v", conn.Free)
	}
}
