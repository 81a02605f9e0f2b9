// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smooth

import "github.com/dynarelax/gofem-dr/vec3"

// TargetFunc computes the relaxation target for vertex v from a frozen
// snapshot of the vertex array taken at the start of the current pass.
type TargetFunc func(v int, snapshot [][]float64) [3]float64

// Callback is invoked synchronously after every pass, mirroring
// dr.Callback's non-retaining contract: it may read x but must not keep a
// reference beyond the call.
type Callback func(x [][]float64, k int, args interface{})

// Run performs kmax Jacobi-with-damping passes over x in place: each
// pass reads from a frozen snapshot and writes into the live array,
// skips fixed vertices, and applies new = old + d*(target - old).
func Run(x [][]float64, fixed []bool, kmax int, d float64, target TargetFunc, cb Callback, args interface{}) {
	for k := 0; k < kmax; k++ {
		snapshot := vec3.Clone(x)
		for i := range x {
			if fixed[i] {
				continue
			}
			t := target(i, snapshot)
			for c := 0; c < 3; c++ {
				x[i][c] += d * (t[c] - x[i][c])
			}
		}
		if cb != nil {
			cb(x, k, args)
		}
	}
}
