// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dr

import "github.com/dynarelax/gofem-dr/vec3"

// ComputeResidual computes r = p - Cᵀ·diag(q)·C·x over all V vertices.
// The RK integrator reuses Connectivity.ApplyStiffness directly for its
// free-rows-only accelerating residual; this function is the full-vertex
// variant used once per iteration.
func ComputeResidual(conn *Connectivity, p [][]float64, q []float64, x [][]float64) [][]float64 {
	fia := conn.ApplyStiffness(q, x)
	return vec3.Sub(nil, p, fia)
}
