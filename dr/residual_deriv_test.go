// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dr

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// TestApplyStiffnessIsEnergyGradient cross-checks Connectivity.ApplyStiffness
// against num.DerivCen applied to the quadratic energy E(x) = 0.5*Σ q_e·|C_e·x|²,
// whose gradient is exactly Cᵀ·diag(q)·C·x for frozen q. Follows the
// ana-vs-num derivative check pattern of mdl/solid/driver.go.
func TestApplyStiffnessIsEnergyGradient(tst *testing.T) {

	chk.PrintTitle("ApplyStiffnessIsEnergyGradient")

	conn := NewConnectivity(3, [][2]int{{0, 1}, {1, 2}}, []bool{false, false, false})
	q := []float64{2, 3}
	x := [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}

	energy := func(xx [][]float64) float64 {
		u := conn.EdgeVectors(xx)
		e := 0.0
		for i, ui := range u {
			for d := 0; d < 3; d++ {
				e += 0.5 * q[i] * ui[d] * ui[d]
			}
		}
		return e
	}

	fia := conn.ApplyStiffness(q, x)

	for i := 0; i < conn.NV; i++ {
		for d := 0; d < 3; d++ {
			orig := x[i][d]
			dnum := num.DerivCen(func(v float64, args ...interface{}) (res float64) {
				x[i][d] = v
				res = energy(x)
				x[i][d] = orig
				return
			}, orig)
			err := chk.PrintAnaNum(derivLabel(i, d), 1e-6, fia[i][d], dnum, false)
			if err != nil {
				tst.Errorf("gradient mismatch at vertex %d, dof %d: %v", i, d, err)
			}
		}
	}
}

func derivLabel(i, d int) string {
	const letters = "xyz"
	return "dE/d" + string(letters[d]) + itoa(i)
}
