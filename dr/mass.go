// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dr

// ComputeMass computes the per-vertex lumped fictitious mass:
// mass = 0.5·dt²·Ct2·(q_pre + q_fpre + q_lpre + EA/linit).
//
// mass[i] == 0 for a free vertex is not flagged here: it is a legitimate
// outcome of an unstressed, unloaded network. The degenerate-mass error
// fires only where it actually matters — inside the RK integrator, the
// first time a zero-mass free vertex is asked to divide a non-zero
// residual by zero (see rk.go); a zero residual over zero mass is the
// inert 0/0=0 case and never surfaces as an error.
func ComputeMass(conn *Connectivity, n *Network, terms EdgeLawTerms, dt float64) []float64 {
	lumpTerm := massLumpingTerms(n, terms)
	summed := conn.LumpedSum(lumpTerm)

	mass := make([]float64, conn.NV)
	coef := 0.5 * dt * dt
	for i := range mass {
		mass[i] = coef * summed[i]
	}
	return mass
}
