// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smooth

// CenterOfMassTarget returns a TargetFunc whose target for vertex v is
// the area-weighted centroid of the polygon formed by its ordered
// neighbor ring. ring[v] must list v's neighbors in polygon order; fewer
// than 3 neighbors degenerates to the plain centroid, since no polygon
// can be formed.
func CenterOfMassTarget(ring [][]int) TargetFunc {
	centroid := CentroidTarget(ring)
	return func(v int, snapshot [][]float64) [3]float64 {
		r := ring[v]
		if len(r) < 3 {
			return centroid(v, snapshot)
		}
		com, area := polygonCentroidArea(r, snapshot)
		if area == 0 {
			return centroid(v, snapshot)
		}
		return com
	}
}
