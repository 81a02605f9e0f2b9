// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smooth

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// polygonCentroidArea computes the area-weighted centroid and total area
// of a planar or near-planar polygon given by ordered vertex indices into
// snapshot, by triangle-fanning from its first vertex. Grounded on
// ele/solid/beam.go's utl.Cross3d-based local-frame construction, applied
// to face-area weighting instead of a beam's cross-section frame.
func polygonCentroidArea(ring []int, snapshot [][]float64) ([3]float64, float64) {
	if len(ring) < 3 {
		return [3]float64{}, 0
	}
	apex := snapshot[ring[0]]
	var areaSum float64
	var weighted [3]float64
	e1 := make([]float64, 3)
	e2 := make([]float64, 3)
	cross := make([]float64, 3)
	for i := 1; i+1 < len(ring); i++ {
		b, c := snapshot[ring[i]], snapshot[ring[i+1]]
		for d := 0; d < 3; d++ {
			e1[d] = b[d] - apex[d]
			e2[d] = c[d] - apex[d]
		}
		utl.Cross3d(cross, e1, e2)
		area := 0.5 * math.Sqrt(utl.Dot3d(cross, cross))
		if area == 0 {
			continue
		}
		areaSum += area
		for d := 0; d < 3; d++ {
			weighted[d] += area * (apex[d] + b[d] + c[d]) / 3
		}
	}
	if areaSum == 0 {
		return [3]float64{apex[0], apex[1], apex[2]}, 0
	}
	for d := 0; d < 3; d++ {
		weighted[d] /= areaSum
	}
	return weighted, areaSum
}
