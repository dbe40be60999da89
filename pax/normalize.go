// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pax

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Normalize maps v to a position on an axis with bounds [lo, hi].
// lo maps to 0 and hi maps to 1, or the reverse if inverted. Values
// outside the bounds map outside [0, 1].
//
// If lo == hi, every value maps to 0.5, so a constant column is drawn
// through the middle of its axis.
func Normalize(v, lo, hi float64, inverted bool) float64 {
	var p float64
	if lo == hi {
		p = 0.5
	} else {
		s := scale.Linear{Min: lo, Max: hi}
		p = s.Map(v)
	}
	if inverted {
		p = 1 - p
	}
	return p
}

// Denormalize is the inverse of Normalize. For a degenerate axis
// (lo == hi) every position maps back to lo.
func Denormalize(p, lo, hi float64, inverted bool) float64 {
	if inverted {
		p = 1 - p
	}
	return lo + p*(hi-lo)
}

// A ClipPolicy says what happens to draw positions that fall outside
// an axis window, which is possible once manual limits are narrower
// than the data.
type ClipPolicy int

const (
	// ClipNone leaves positions as computed; values beyond the
	// window are drawn beyond the axis.
	ClipNone ClipPolicy = iota

	// ClipClamp pins positions to the nearest end of the axis.
	ClipClamp

	// ClipOmit replaces positions outside the window with NaN.
	// Renderers break the polyline at NaN positions.
	ClipOmit
)

func (c ClipPolicy) String() string {
	switch c {
	case ClipNone:
		return "none"
	case ClipClamp:
		return "clamp"
	case ClipOmit:
		return "omit"
	}
	return "ClipPolicy(?)"
}

// ParseClipPolicy returns the policy named by s, as printed by
// String.
func ParseClipPolicy(s string) (ClipPolicy, bool) {
	for _, c := range []ClipPolicy{ClipNone, ClipClamp, ClipOmit} {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

func (c ClipPolicy) apply(p float64) float64 {
	switch c {
	case ClipClamp:
		return clamp01(p)
	case ClipOmit:
		if p < 0 || p > 1 {
			return math.NaN()
		}
	}
	return p
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	} else if p > 1 {
		return 1
	}
	return p
}
