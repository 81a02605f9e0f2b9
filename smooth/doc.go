// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package smooth implements three Laplacian-relaxation mesh smoothers: a
// Jacobi-with-damping fixed-point loop that moves each free vertex toward
// a per-vertex target computed from a frozen snapshot of the previous
// pass. The core DR driver in package dr does not depend on this
// package; it is an external collaborator that prepares or post-processes
// vertex arrays.
package smooth
