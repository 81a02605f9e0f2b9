// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dr

// DampingCoefs derives the two kinematic-damping constants used by the RK
// integrator from the single dimensionless viscous parameter c, the way
// fem/dyncoefs.go's DynCoefs derives its Newmark/HHT α/β constants once
// from θ/α for the whole solve.
//
//	ca = (1 - c/2) / (1 + c/2) -- multiplicative velocity decay per RK step
//	cb = 0.5 * (1 + ca)        -- half-sum coefficient applied to residual
func DampingCoefs(c float64) (ca, cb float64) {
	ca = (1 - c/2) / (1 + c/2)
	cb = 0.5 * (1 + ca)
	return
}
