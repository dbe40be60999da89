// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pax

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Range is the state of one axis.
//
// Manual bounds only narrow or widen the displayed window. The data
// bounds keep tracking every value ever appended, so clearing the
// manual bounds always restores the full extent of the data.
type Range struct {
	// DataMin and DataMax are the smallest and largest values
	// appended to this axis. They are NaN until the first value
	// arrives.
	DataMin, DataMax float64

	// ManualMin and ManualMax override DataMin and DataMax for
	// display. NaN means unset; each bound is independent.
	ManualMin, ManualMax float64

	// Inverted flips the drawing direction so that the largest
	// value is at the bottom of the axis.
	Inverted bool
}

// NewRange returns an empty Range with no data and no manual bounds.
func NewRange() Range {
	nan := math.NaN()
	return Range{DataMin: nan, DataMax: nan, ManualMin: nan, ManualMax: nan}
}

// Empty reports whether the range has neither data nor manual
// bounds on both sides.
func (r Range) Empty() bool {
	lo, hi := r.bounds()
	return math.IsNaN(lo) || math.IsNaN(hi)
}

// Extend widens the data bounds to include values. The first call
// initializes the bounds from values, which may be a single value.
func (r *Range) Extend(values []float64) {
	if len(values) == 0 {
		return
	}
	lo, hi := stats.Bounds(values)
	if math.IsNaN(r.DataMin) {
		r.DataMin, r.DataMax = lo, hi
		return
	}
	r.DataMin = math.Min(r.DataMin, lo)
	r.DataMax = math.Max(r.DataMax, hi)
}

// SetManual sets the manual bounds. A NaN argument leaves that side
// unset.
func (r *Range) SetManual(min, max float64) {
	r.ManualMin, r.ManualMax = min, max
}

// ClearManual removes both manual bounds.
func (r *Range) ClearManual() {
	r.ManualMin, r.ManualMax = math.NaN(), math.NaN()
}

// Invert toggles the drawing direction. It does not change any
// bounds.
func (r *Range) Invert() {
	r.Inverted = !r.Inverted
}

// Effective returns the bounds used for display: each manual bound if
// set, otherwise the corresponding data bound. It fails with
// ErrInvalidBounds only if both manual bounds are set and the minimum
// exceeds the maximum.
//
// If a single manual bound lies beyond the data on the other side,
// the unset side collapses onto it and the window is degenerate.
func (r Range) Effective() (lo, hi float64, err error) {
	if err := r.check(); err != nil {
		return math.NaN(), math.NaN(), err
	}
	lo, hi = r.bounds()
	return lo, hi, nil
}

func (r Range) bounds() (lo, hi float64) {
	lo, hi = r.DataMin, r.DataMax
	if !math.IsNaN(r.ManualMin) {
		lo = r.ManualMin
	}
	if !math.IsNaN(r.ManualMax) {
		hi = r.ManualMax
	}
	if lo > hi {
		if math.IsNaN(r.ManualMax) {
			hi = lo
		} else if math.IsNaN(r.ManualMin) {
			lo = hi
		}
	}
	return
}

func (r Range) check() error {
	if r.ManualMin > r.ManualMax {
		return fmt.Errorf("manual min %g > manual max %g: %w", r.ManualMin, r.ManualMax, ErrInvalidBounds)
	}
	return nil
}

func (r Range) String() string {
	lo, hi := r.bounds()
	s := fmt.Sprintf("[%g,%g]", lo, hi)
	if r.Inverted {
		s += " inverted"
	}
	return s
}
