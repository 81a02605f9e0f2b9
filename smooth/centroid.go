// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smooth

// CentroidTarget returns a TargetFunc whose target for vertex v is the
// arithmetic mean of its neighbors' positions in the snapshot.
// neighbors[v] lists v's neighbor indices; an isolated vertex (no
// neighbors) targets its own current position, a no-op move.
func CentroidTarget(neighbors [][]int) TargetFunc {
	return func(v int, snapshot [][]float64) [3]float64 {
		ns := neighbors[v]
		if len(ns) == 0 {
			return [3]float64{snapshot[v][0], snapshot[v][1], snapshot[v][2]}
		}
		var sum [3]float64
		for _, n := range ns {
			for c := 0; c < 3; c++ {
				sum[c] += snapshot[n][c]
			}
		}
		inv := 1.0 / float64(len(ns))
		for c := 0; c < 3; c++ {
			sum[c] *= inv
		}
		return sum
	}
}
