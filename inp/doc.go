// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data read from a network (.json) file:
// a dr.Network plus its dr.Options, in a read-file → unmarshal →
// default-fill flow.
package inp
