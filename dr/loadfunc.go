// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dr

import (
	"github.com/cpmech/gosl/fun"

	"github.com/dynarelax/gofem-dr/vec3"
)

// scaledLoads returns p scaled by loadFunc.F(float64(k), nil) for
// iteration k, following the bc.Fcn.F(sol.T, nil) call convention of
// fem/essenbcs.go. A nil loadFunc means no scaling: the returned slice is
// p itself, unscaled, so a plain single-stage load is unaffected by this
// optional stage-ramp feature.
func scaledLoads(p [][]float64, loadFunc fun.Func, k int) [][]float64 {
	if loadFunc == nil {
		return p
	}
	factor := loadFunc.F(float64(k), nil)
	return vec3.Scale3(nil, factor, p)
}
