// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vec3

import (
	"github.com/cpmech/gosl/la"
)

// Alloc allocates a new n×3 array, grounded on la.MatAlloc's row-major
// dense allocation.
func Alloc(n int) [][]float64 {
	return la.MatAlloc(n, 3)
}

// Clone returns a deep copy of an n×3 array.
func Clone(a [][]float64) [][]float64 {
	b := Alloc(len(a))
	for i := range a {
		copy(b[i], a[i])
	}
	return b
}

// CopyInto copies src into dst, row by row. dst and src must have the same length.
func CopyInto(dst, src [][]float64) {
	for i := range src {
		copy(dst[i], src[i])
	}
}

// Column extracts column k (0, 1 or 2) of an n×3 array as a fresh n-length slice.
func Column(a [][]float64, k int) []float64 {
	col := make([]float64, len(a))
	for i := range a {
		col[i] = a[i][k]
	}
	return col
}

// SetColumn writes col into column k (0, 1 or 2) of an n×3 array.
func SetColumn(a [][]float64, k int, col []float64) {
	for i := range a {
		a[i][k] = col[i]
	}
}

// RowNorms returns the Euclidean norm of every row of an n×3 array, using
// la.VecNorm per row rather than a hand-rolled sqrt(sum of squares).
func RowNorms(a [][]float64) []float64 {
	norms := make([]float64, len(a))
	for i, row := range a {
		norms[i] = la.VecNorm(row)
	}
	return norms
}

// Sub computes dst = a - b, row by row. Allocates dst if nil.
func Sub(dst, a, b [][]float64) [][]float64 {
	if dst == nil {
		dst = Alloc(len(a))
	}
	for i := range a {
		for d := 0; d < 3; d++ {
			dst[i][d] = a[i][d] - b[i][d]
		}
	}
	return dst
}

// AddScaled3 computes dst = a + alpha*b over an n×3 array. Allocates dst if nil.
func AddScaled3(dst, a [][]float64, alpha float64, b [][]float64) [][]float64 {
	if dst == nil {
		dst = Alloc(len(a))
	}
	for i := range a {
		for d := 0; d < 3; d++ {
			dst[i][d] = a[i][d] + alpha*b[i][d]
		}
	}
	return dst
}

// Scale3 computes dst = alpha*a over an n×3 array. Allocates dst if nil.
func Scale3(dst [][]float64, alpha float64, a [][]float64) [][]float64 {
	if dst == nil {
		dst = Alloc(len(a))
	}
	for i := range a {
		for d := 0; d < 3; d++ {
			dst[i][d] = alpha * a[i][d]
		}
	}
	return dst
}

// ScaleRows computes dst[e][:] = s[e]*a[e][:] over an n×3 array. Allocates dst if nil.
func ScaleRows(dst [][]float64, s []float64, a [][]float64) [][]float64 {
	if dst == nil {
		dst = Alloc(len(a))
	}
	for i := range a {
		for d := 0; d < 3; d++ {
			dst[i][d] = s[i] * a[i][d]
		}
	}
	return dst
}

// MaskedCopy copies src[i] into dst[i] only where mask[i] is true.
func MaskedCopy(dst, src [][]float64, mask []bool) {
	for i, on := range mask {
		if on {
			copy(dst[i], src[i])
		}
	}
}
