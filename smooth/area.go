// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smooth

// Face is a polygon face given as an ordered list of vertex indices.
type Face []int

// AreaWeightedTarget returns a TargetFunc whose target for vertex v is
// the area-weighted mean of the centroids of v's incident faces. faces
// holds every face in the mesh; incidentFaces[v] lists the indices into
// faces of the faces touching v.
func AreaWeightedTarget(faces []Face, incidentFaces [][]int) TargetFunc {
	return func(v int, snapshot [][]float64) [3]float64 {
		inc := incidentFaces[v]
		if len(inc) == 0 {
			return [3]float64{snapshot[v][0], snapshot[v][1], snapshot[v][2]}
		}
		var areaSum float64
		var weighted [3]float64
		for _, fi := range inc {
			centroid, area := polygonCentroidArea([]int(faces[fi]), snapshot)
			if area == 0 {
				continue
			}
			areaSum += area
			for d := 0; d < 3; d++ {
				weighted[d] += area * centroid[d]
			}
		}
		if areaSum == 0 {
			return [3]float64{snapshot[v][0], snapshot[v][1], snapshot[v][2]}
		}
		for d := 0; d < 3; d++ {
			weighted[d] /= areaSum
		}
		return weighted
	}
}
