// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dr

import (
	"github.com/cpmech/gosl/la"

	"github.com/dynarelax/gofem-dr/vec3"
)

// Connectivity is the signed incidence operator C ∈ ℝ^{E×V}:
// C[e,i] = -1, C[e,j] = +1 for edge e = (i, j). It is built once per
// solve from la.Triplet and compressed to la.CCMatrix, grounded on
// fem/essenbcs.go's EssentialBcs.A/Am Triplet/CCMatrix pair. A second
// cached operator, Ct2, is the unsigned V×E incidence (Ct2[i,e] = 1 iff
// vertex i is incident to edge e) used for mass lumping.
type Connectivity struct {
	NV, NE int
	Free   []bool // [NV] true if vertex i is free (not pinned)
	Fixed  []bool // [NV] complement of Free, cached for masked-copy callers

	c   la.Triplet  // E×V signed incidence
	cm  *la.CCMatrix // compressed form of c
	ct2 la.Triplet  // V×E unsigned incidence
	ct2m *la.CCMatrix // compressed form of ct2
}

// NewConnectivity builds the incidence operator and its cached derived
// forms from an edge list. edges and fixed are assumed already validated
// by Network.Validate.
func NewConnectivity(nv int, edges [][2]int, fixed []bool) *Connectivity {
	ne := len(edges)

	free := make([]bool, nv)
	for i := range free {
		free[i] = !fixed[i]
	}

	o := &Connectivity{NV: nv, NE: ne, Free: free, Fixed: fixed}

	o.c.Init(ne, nv, 2*ne)
	o.ct2.Init(nv, ne, 2*ne)
	for e, ij := range edges {
		i, j := ij[0], ij[1]
		o.c.Put(e, i, -1)
		o.c.Put(e, j, +1)
		o.ct2.Put(i, e, 1)
		o.ct2.Put(j, e, 1)
	}
	o.cm = o.c.ToMatrix(nil)
	o.ct2m = o.ct2.ToMatrix(nil)
	return o
}

// EdgeVectors computes u = C·x (E×3), i.e. u[e] = x[j] - x[i] for edge
// e = (i, j), one coordinate at a time via la.SpMatVecMulAdd.
func (o *Connectivity) EdgeVectors(x [][]float64) [][]float64 {
	u := vec3.Alloc(o.NE)
	for d := 0; d < 3; d++ {
		col := vec3.Column(x, d)
		dst := make([]float64, o.NE)
		la.SpMatVecMulAdd(dst, 1, o.cm, col)
		vec3.SetColumn(u, d, dst)
	}
	return u
}

// ApplyStiffness computes fia = Cᵀ·diag(q)·C·x (V×3), the internal-force
// operator over all V vertices. It never forms a dense V×V matrix:
// u = C·x is computed first, then scaled by q row-wise, then Cᵀ is
// applied via la.SpMatTrVecMulAdd.
func (o *Connectivity) ApplyStiffness(q []float64, x [][]float64) [][]float64 {
	u := o.EdgeVectors(x)
	qu := vec3.ScaleRows(nil, q, u)
	fia := vec3.Alloc(o.NV)
	for d := 0; d < 3; d++ {
		col := vec3.Column(qu, d)
		dst := make([]float64, o.NV)
		la.SpMatTrVecMulAdd(dst, 1, o.cm, col)
		vec3.SetColumn(fia, d, dst)
	}
	return fia
}

// LumpedSum computes Ct2·v (a V-length vector), summing v[e] over every
// edge incident to each vertex. Used by the mass estimator.
func (o *Connectivity) LumpedSum(v []float64) []float64 {
	dst := make([]float64, o.NV)
	la.SpMatVecMulAdd(dst, 1, o.ct2m, v)
	return dst
}
