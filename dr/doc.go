// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dr implements the Dynamic Relaxation solver for the static
// equilibrium of a pin-jointed network of axial force members.
//
// DR is an explicit time-stepping method: the network is treated as a
// system of fictitious masses connected by springs, the resulting motion
// is viscously damped, and the kinetic energy is driven toward zero so
// that residual nodal forces vanish. A single call to Solve runs the
// whole iteration; see Network, Options and Result.
package dr
