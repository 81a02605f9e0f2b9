// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dr

import "github.com/cpmech/gosl/io"

// Network holds the inputs to a DR solve: vertex count, edge list, pinned
// vertices, applied loads, and the four per-edge laws that drive the edge
// force density. Solve leaves them unchanged except Linit, which it
// overwrites in place with the initial edge lengths when every entry is
// zero on entry.
type Network struct {
	NV    int       // number of vertices
	NE    int       // number of edges
	Vertices [][]float64 // [NV][3] initial nodal positions
	Edges [][2]int  // [NE][2] unordered vertex-index pairs (i, j)
	Fixed []bool    // [NV] true if vertex is pinned
	Loads [][]float64 // [NV][3] applied nodal forces p

	QPre  []float64 // [NE] prescribed force densities
	FPre  []float64 // [NE] prescribed member forces
	LPre  []float64 // [NE] prescribed rest lengths (0 = not prescribed)
	Linit []float64 // [NE] initial rest lengths for axial-stiffness strain (0 on entry = autofill)
	EMod  []float64 // [NE] Young's modulus
	Radius []float64 // [NE] member radius
}

// Free returns the indices of vertices not in Fixed.
func (n *Network) Free() []int {
	free := make([]int, 0, n.NV)
	for i, fx := range n.Fixed {
		if !fx {
			free = append(free, i)
		}
	}
	return free
}

// Validate checks that every per-vertex and per-edge array has the shape
// NV/NE promises, and that every edge's endpoints are distinct and in
// range. It mutates nothing.
func (n *Network) Validate() error {
	if len(n.Edges) != n.NE {
		return errShape("Edges", len(n.Edges), n.NE)
	}
	if len(n.Fixed) != n.NV {
		return errShape("Fixed", len(n.Fixed), n.NV)
	}
	if len(n.Vertices) != n.NV {
		return errShape("Vertices", len(n.Vertices), n.NV)
	}
	if len(n.Loads) != n.NV {
		return errShape("Loads", len(n.Loads), n.NV)
	}
	for i, row := range n.Loads {
		if len(row) != 3 {
			return errShape("Loads row "+itoa(i), len(row), 3)
		}
	}
	for i, row := range n.Vertices {
		if len(row) != 3 {
			return errShape("Vertices row "+itoa(i), len(row), 3)
		}
	}
	for name, arr := range map[string][]float64{
		"QPre": n.QPre, "FPre": n.FPre, "LPre": n.LPre,
		"Linit": n.Linit, "EMod": n.EMod, "Radius": n.Radius,
	} {
		if len(arr) != n.NE {
			return errShape(name, len(arr), n.NE)
		}
	}
	for e, ij := range n.Edges {
		i, j := ij[0], ij[1]
		if i == j || i < 0 || j < 0 || i >= n.NV || j >= n.NV {
			return errBadEdge(e, i, j, n.NV)
		}
	}
	return nil
}

// autofillLinit replaces Linit by the current edge lengths l if every entry
// of Linit is zero on entry. Returns true if it did.
func autofillLinit(n *Network, l []float64) bool {
	for _, v := range n.Linit {
		if v != 0 {
			return false
		}
	}
	copy(n.Linit, l)
	return true
}

// itoa formats an int for an error message, following the io.Sf convention
// used throughout gofem instead of ad hoc fmt.Sprintf calls.
func itoa(i int) string {
	return io.Sf("%d", i)
}
