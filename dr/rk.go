// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dr

import (
	"github.com/dynarelax/gofem-dr/vec3"
)

// rkState holds the scratch buffers reused across accel evaluations within
// one RK call, an allocate-once-reuse resource model following
// mdl/solid/driver.go's Driver.Run pattern of pre-allocated result
// buffers threaded through an increment loop.
type rkState struct {
	conn *Connectivity
	q    []float64
	mass []float64
	p    [][]float64
	cb   float64
	x0   [][]float64
	k    int // iteration index, for errDegenerateMass only

	xScratch [][]float64 // reused across accel calls; overwritten every call
	dv       [][]float64 // reused across accel calls; caller must copy before reuse
	err      error       // set by accel on a genuine 0-mass/nonzero-residual vertex
}

func newRKState(nv int) *rkState {
	return &rkState{
		xScratch: vec3.Alloc(nv),
		dv:       vec3.Alloc(nv),
	}
}

// accel implements the acceleration function a(τ, v): it advances free
// rows of the scratch position buffer by v·τ from the x0 snapshot,
// recomputes the residual there, and returns cb·r/mass element-wise on
// free rows (zero on fixed rows, which are never advanced or read back
// by the caller).
//
// A free vertex with mass[i] == 0 divides only if the residual there is
// also exactly zero, in which case the quotient is taken as 0 (an inert
// vertex under no net force never needs to move). A zero mass under a
// non-zero residual is a genuine configuration error — a vertex under
// load with no stiffness or inertia to resist it; it is recorded in
// s.err and RK returns it once, rather than panicking mid-stage.
func (s *rkState) accel(tau float64, v [][]float64) [][]float64 {
	vec3.MaskedCopy(s.xScratch, s.x0, s.conn.Fixed)
	for i, free := range s.conn.Free {
		if free {
			for d := 0; d < 3; d++ {
				s.xScratch[i][d] = s.x0[i][d] + v[i][d]*tau
			}
		}
	}

	fia := s.conn.ApplyStiffness(s.q, s.xScratch)

	for i, free := range s.conn.Free {
		if !free {
			s.dv[i][0], s.dv[i][1], s.dv[i][2] = 0, 0, 0
			continue
		}
		for d := 0; d < 3; d++ {
			rid := s.p[i][d] - fia[i][d]
			if s.mass[i] == 0 {
				if rid != 0 && s.err == nil {
					s.err = errDegenerateMass(i, s.k)
				}
				s.dv[i][d] = 0
				continue
			}
			s.dv[i][d] = s.cb * rid / s.mass[i]
		}
	}
	return s.dv
}

// RK advances one full DR iteration's velocity increment Δv using an
// explicit 1/2/4-stage Runge-Kutta scheme with a fixed Butcher tableau.
// x0 is the position snapshot at the start of the iteration, v0 is the
// damping-decayed velocity (ca·v), and steps selects the tableau.
func RK(conn *Connectivity, q, mass []float64, p [][]float64, x0, v0 [][]float64, dt, cb float64, steps, iter int) ([][]float64, error) {
	nv := conn.NV
	s := newRKState(nv)
	s.conn, s.q, s.mass, s.p, s.cb, s.x0, s.k = conn, q, mass, p, cb, x0, iter

	switch steps {
	case 1:
		a0 := s.accel(0, v0)
		if s.err != nil {
			return nil, s.err
		}
		return vec3.Scale3(nil, dt, a0), nil

	case 2:
		a0 := s.accel(0, v0)
		k0 := vec3.Scale3(nil, dt, a0)
		v1 := vec3.AddScaled3(nil, v0, 1, k0)
		a1 := s.accel(dt, v1)
		k1 := vec3.Scale3(nil, dt, a1)
		if s.err != nil {
			return nil, s.err
		}
		return k1, nil // Δv = 0·K0 + 1·K1

	case 4:
		a0 := s.accel(0, v0)
		k0 := vec3.Scale3(nil, dt, a0)

		v1 := vec3.AddScaled3(nil, v0, 0.5, k0)
		a1 := s.accel(0.5*dt, v1)
		k1 := vec3.Scale3(nil, dt, a1)

		v2 := vec3.AddScaled3(nil, v0, 0.5, k1)
		a2 := s.accel(0.5*dt, v2)
		k2 := vec3.Scale3(nil, dt, a2)

		v3 := vec3.AddScaled3(nil, v0, 1.0, k2)
		a3 := s.accel(dt, v3)
		k3 := vec3.Scale3(nil, dt, a3)

		if s.err != nil {
			return nil, s.err
		}

		dv := vec3.Alloc(nv)
		for i := 0; i < nv; i++ {
			for d := 0; d < 3; d++ {
				dv[i][d] = k0[i][d]/6 + k1[i][d]/3 + k2[i][d]/3 + k3[i][d]/6
			}
		}
		return dv, nil

	default:
		return nil, errBadOption("steps", steps)
	}
}
