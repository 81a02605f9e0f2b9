// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vec3 provides dense V×3 array primitives shared by the dynamic
// relaxation solver: allocation, row-wise arithmetic and row norms over an
// N×3 array of nodal quantities (positions, velocities, residuals, loads).
package vec3
