// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pax

import "errors"

// Errors returned by Figure operations wrap one of these, so callers
// can classify failures with errors.Is. A failed operation never
// modifies the Figure.
var (
	// ErrInvalidArgument reports a bad count, precision, or
	// non-finite value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDimensionMismatch reports a row or label list whose
	// length does not match the figure.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIndexOutOfRange reports an axis or row index outside the
	// figure.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidBounds reports an axis whose effective minimum
	// would exceed its effective maximum.
	ErrInvalidBounds = errors.New("invalid bounds")
)
