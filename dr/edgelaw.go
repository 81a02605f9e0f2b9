// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dr

import "math"

// sanitize replaces NaN and ±Inf by zero, per edge, before the four
// force-density laws are summed. It must never be skipped: "arithmetic on
// NaN stays NaN" is not a contract this package relies on.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// EdgeLawTerms holds the four per-edge force-density contributions, kept
// separate because the mass estimator needs three of them plus a
// differently-normalized fourth term.
type EdgeLawTerms struct {
	QPre  []float64 // direct: qpre
	QFpre []float64 // fpre / l, zero where l == 0
	QLpre []float64 // f / lpre, zero where lpre == 0 (uses f from the previous iteration)
	QEA   []float64 // EA·(l - linit)/(linit·l), zero where linit == 0 or l == 0
}

// axialStiffness returns EA = E·A = E·π·radius² for edge e, the
// axial-stiffness ancestor of ele/solid/elastrod.go's α = E·A/L term.
func axialStiffness(n *Network, e int) float64 {
	r := n.Radius[e]
	area := math.Pi * r * r
	return n.EMod[e] * area
}

// ComputeEdgeLaws assembles the four edge-law contributions for the
// current iteration. l is the current edge length array; fPrev is the
// edge axial force from the previous iteration, a deliberate one-step
// closure lag that avoids an implicit solve for f at the current
// geometry.
func ComputeEdgeLaws(n *Network, l, fPrev []float64) EdgeLawTerms {
	ne := n.NE
	t := EdgeLawTerms{
		QPre:  make([]float64, ne),
		QFpre: make([]float64, ne),
		QLpre: make([]float64, ne),
		QEA:   make([]float64, ne),
	}
	for e := 0; e < ne; e++ {
		t.QPre[e] = sanitize(n.QPre[e])

		if l[e] != 0 {
			t.QFpre[e] = sanitize(n.FPre[e] / l[e])
		}

		if n.LPre[e] != 0 {
			t.QLpre[e] = sanitize(fPrev[e] / n.LPre[e])
		}

		if n.Linit[e] != 0 && l[e] != 0 {
			ea := axialStiffness(n, e)
			t.QEA[e] = sanitize(ea * (l[e] - n.Linit[e]) / (n.Linit[e] * l[e]))
		}
	}
	return t
}

// Sum returns q = q_pre + q_fpre + q_lpre + q_EA, sanitized once more
// after summation so a pathological combination of finite terms that sums
// to a non-finite value (not expected given each term is already finite)
// cannot propagate a NaN or Inf force density into the solve.
func (t EdgeLawTerms) Sum() []float64 {
	q := make([]float64, len(t.QPre))
	for e := range q {
		q[e] = sanitize(t.QPre[e] + t.QFpre[e] + t.QLpre[e] + t.QEA[e])
	}
	return q
}

// massLumpingTerms returns q_pre + q_fpre + q_lpre + EA/linit, with EA/linit zero wherever linit == 0.
func massLumpingTerms(n *Network, t EdgeLawTerms) []float64 {
	ne := n.NE
	out := make([]float64, ne)
	for e := 0; e < ne; e++ {
		eaOverL := 0.0
		if n.Linit[e] != 0 {
			eaOverL = sanitize(axialStiffness(n, e) / n.Linit[e])
		}
		out[e] = t.QPre[e] + t.QFpre[e] + t.QLpre[e] + eaOverL
	}
	return out
}
