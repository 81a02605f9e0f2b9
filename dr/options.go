// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dr

import "github.com/cpmech/gosl/fun"

// Callback is invoked synchronously at the end of every iteration with
// the iteration index, the current positions, and the two convergence
// criteria. It must not retain x beyond the call.
type Callback func(k int, x [][]float64, crit [2]float64, args interface{})

// Options configures a Solve call. See DefaultOptions for why
// Solve does not fill in zero-valued fields itself.
type Options struct {
	KMax int     // maximum iterations
	Dt   float64 // fictitious time step
	Tol1 float64 // residual-force norm threshold
	Tol2 float64 // displacement norm threshold
	C    float64 // viscous damping parameter
	Steps int    // RK sub-steps: 1, 2 or 4

	Callback     Callback    // optional per-iteration observer
	CallbackArgs interface{} // opaque handle forwarded to Callback

	// LoadFunc optionally scales Network.Loads by LoadFunc.F(float64(k), nil)
	// at the start of iteration k, letting a caller ramp load across the
	// DR iterations the way gofem ramps multi-stage loads.
	// nil means no scaling (equivalent to a constant multiplier of 1).
	LoadFunc fun.Func

	// Verbose prints one diagnostic line per iteration via gosl/io.
	Verbose bool
}

// DefaultOptions returns a reasonable default option set. Callers start
// from DefaultOptions and override only the fields they care about; Solve
// itself does not fill in zero-valued fields, since c=0 (no damping) is a
// legitimate explicit choice that a zero-is-unset convention would mask.
// The network-file loader in package inp instead unmarshals into
// pointer-typed fields and overrides DefaultOptions only for the keys
// present in the file, so JSON-field presence resolves the ambiguity.
func DefaultOptions() Options {
	return Options{
		KMax:  10000,
		Dt:    1.0,
		Tol1:  1e-3,
		Tol2:  1e-6,
		C:     0.1,
		Steps: 4,
	}
}

// Validate rejects options that would make Solve meaningless or
// numerically unstable: non-positive dt/tolerances, negative damping, a
// negative KMax, or an RK stage count other than 1, 2, or 4. KMax == 0 is
// accepted: Solve treats it as a degenerate no-op that still recomputes
// edge lengths and autofills Linit (see Solve).
func (o *Options) Validate() error {
	if o.Dt <= 0 {
		return errBadOption("dt", o.Dt)
	}
	if o.KMax < 0 {
		return errBadOption("kmax", o.KMax)
	}
	if o.Tol1 <= 0 {
		return errBadOption("tol1", o.Tol1)
	}
	if o.Tol2 <= 0 {
		return errBadOption("tol2", o.Tol2)
	}
	if o.C < 0 {
		return errBadOption("c", o.C)
	}
	switch o.Steps {
	case 1, 2, 4:
	default:
		return errBadOption("steps", o.Steps)
	}
	return nil
}
