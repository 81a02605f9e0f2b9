// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dr

import (
	"github.com/cpmech/gosl/chk"
)

// eager validation errors, built with chk.Err following inp.ReadSim's and
// ele/factory.go's error-formatting convention. All pre-iteration errors
// abort without mutating the caller's inputs.

func errShape(what string, got, want int) error {
	return chk.Err("dr: shape mismatch: %s has length %d, want %d", what, got, want)
}

func errBadEdge(e, i, j, nv int) error {
	return chk.Err("dr: bad edge %d: endpoints (%d, %d) must be distinct and in [0, %d)", e, i, j, nv)
}

func errBadOption(what string, val interface{}) error {
	return chk.Err("dr: bad option %s=%v", what, val)
}

func errDegenerateMass(i, k int) error {
	return chk.Err("dr: degenerate mass: free vertex %d has zero lumped mass at iteration %d", i, k)
}
