// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dr

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/dynarelax/gofem-dr/vec3"
)

// Result is the tuple (x, q, f, l, r): final positions, edge force
// densities, edge forces, edge lengths and nodal residuals, plus the
// iteration count and the two convergence criteria at termination.
type Result struct {
	X [][]float64 // [NV][3] final positions
	Q []float64   // [NE] edge force densities
	F []float64   // [NE] edge axial forces, f = q*l
	L []float64   // [NE] edge lengths
	R [][]float64 // [NV][3] nodal residuals

	Iterations int     // number of completed iterations
	Crit1      float64 // ‖r[free]‖₂ at termination
	Crit2      float64 // ‖(v·dt)[free]‖₂ at termination
}

// Solve runs the Dynamic Relaxation iteration to equilibrium (or to
// opts.KMax iterations) and returns the final state. net is not retained
// after Solve returns; callers are free to mutate or discard it.
func Solve(net *Network, opts Options) (*Result, error) {

	if err := net.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	conn := NewConnectivity(net.NV, net.Edges, net.Fixed)
	ca, cb := DampingCoefs(opts.C)

	// mutable state, allocated once
	nv, ne := net.NV, net.NE
	x := vec3.Clone(net.Vertices)

	v := vec3.Alloc(nv)
	f := make([]float64, ne) // previous-iteration edge force, used by q_lpre's closure lag

	// initial edge lengths, needed for linit autofill
	l := vec3.RowNorms(conn.EdgeVectors(x))
	autofillLinit(net, l)

	var r [][]float64
	var q []float64
	crit1, crit2 := 0.0, 0.0

	if opts.KMax == 0 {
		terms := ComputeEdgeLaws(net, l, f)
		q = terms.Sum()
		r = ComputeResidual(conn, net.Loads, q, x)
		crit1 = freeNorm(r, conn.Free)
		return &Result{X: x, Q: q, F: f, L: l, R: r, Iterations: 0, Crit1: crit1, Crit2: 0}, nil
	}

	for k := 0; k < opts.KMax; k++ {

		terms := ComputeEdgeLaws(net, l, f)
		q = terms.Sum()

		mass := ComputeMass(conn, net, terms, opts.Dt)

		p := scaledLoads(net.Loads, opts.LoadFunc, k)

		x0 := vec3.Clone(x)
		v0 := vec3.Scale3(nil, ca, v)

		dv, err := RK(conn, q, mass, p, x0, v0, opts.Dt, cb, opts.Steps, k)
		if err != nil {
			return &Result{X: x, Q: q, F: f, L: l, R: r, Iterations: k}, err
		}

		for i, free := range conn.Free {
			if free {
				for d := 0; d < 3; d++ {
					v[i][d] = v0[i][d] + dv[i][d]
				}
			}
		}

		disp := vec3.Alloc(nv) // v·dt, restricted to free rows below
		for i, free := range conn.Free {
			if free {
				for d := 0; d < 3; d++ {
					disp[i][d] = v[i][d] * opts.Dt
					x[i][d] = x0[i][d] + disp[i][d]
				}
			}
		}

		u := conn.EdgeVectors(x)
		l = vec3.RowNorms(u)
		f = make([]float64, ne)
		for e := range f {
			f[e] = q[e] * l[e]
		}
		r = ComputeResidual(conn, p, q, x)

		crit1 = freeNorm(r, conn.Free)
		crit2 = freeNorm(disp, conn.Free)

		if opts.Callback != nil {
			opts.Callback(k, x, [2]float64{crit1, crit2}, opts.CallbackArgs)
		}
		if opts.Verbose {
			io.Pf("k=%6d crit1=%13.6e crit2=%13.6e\n", k, crit1, crit2)
		}

		if crit1 < opts.Tol1 || crit2 < opts.Tol2 || k+1 == opts.KMax {
			return &Result{X: x, Q: q, F: f, L: l, R: r, Iterations: k + 1, Crit1: crit1, Crit2: crit2}, nil
		}
	}

	return &Result{X: x, Q: q, F: f, L: l, R: r, Iterations: opts.KMax, Crit1: crit1, Crit2: crit2}, nil
}

// freeNorm computes the Euclidean norm of a over the free-row subset only,
// i.e. ‖a[free]‖₂, without allocating a separate free-only array.
func freeNorm(a [][]float64, free []bool) float64 {
	sum := 0.0
	for i, on := range free {
		if on {
			for d := 0; d < 3; d++ {
				sum += a[i][d] * a[i][d]
			}
		}
	}
	return math.Sqrt(sum)
}
