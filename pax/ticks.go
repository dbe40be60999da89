// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pax

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

// A Tick is a labeled mark on an axis.
type Tick struct {
	// Value is the data value the tick labels, rounded if the
	// axis asked for a display precision.
	Value float64

	// Position is where the tick sits on the axis, in the same
	// [0, 1] space as row positions.
	Position float64

	// Label is Value formatted for display.
	Label string
}

// AutoTickMax is the largest number of major ticks generated for an
// axis in automatic mode.
const AutoTickMax = 10

type tickMode int

const (
	tickAuto tickMode = iota
	tickExplicit
	tickEven
)

// tickSpec records how ticks should be generated for an axis. Ticks
// themselves are never stored since they depend on the current
// bounds.
type tickSpec struct {
	mode tickMode

	values []float64 // tickExplicit

	count     int // tickEven
	precision int // tickEven; -1 for no rounding
}

// SetTicks places ticks on axis i at the given data values. This
// replaces any earlier tick request for the axis.
func (f *Figure) SetTicks(i int, values []float64) error {
	if err := f.checkAxis(i); err != nil {
		return err
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("axis %d: tick value %g is not finite: %w", i, v, ErrInvalidArgument)
		}
	}
	f.ticks[i] = tickSpec{mode: tickExplicit, values: append([]float64(nil), values...)}
	return nil
}

// SetEvenTicks places count ticks evenly from the minimum to the
// maximum of axis i, inclusive. count must be at least 2.
func (f *Figure) SetEvenTicks(i, count int) error {
	return f.setEvenTicks(i, count, -1)
}

// SetEvenTicksPrecision is like SetEvenTicks, but rounds each tick
// value to precision decimal places for display.
func (f *Figure) SetEvenTicksPrecision(i, count, precision int) error {
	if precision < 0 {
		if err := f.checkAxis(i); err != nil {
			return err
		}
		return fmt.Errorf("axis %d: negative tick precision %d: %w", i, precision, ErrInvalidArgument)
	}
	return f.setEvenTicks(i, count, precision)
}

func (f *Figure) setEvenTicks(i, count, precision int) error {
	if err := f.checkAxis(i); err != nil {
		return err
	}
	if count < 2 {
		return fmt.Errorf("axis %d: need at least 2 even ticks, got %d: %w", i, count, ErrInvalidArgument)
	}
	f.ticks[i] = tickSpec{mode: tickEven, count: count, precision: precision}
	return nil
}

// ClearTicks returns axis i to automatic tick placement.
func (f *Figure) ClearTicks(i int) error {
	if err := f.checkAxis(i); err != nil {
		return err
	}
	f.ticks[i] = tickSpec{}
	return nil
}

// Ticks returns the ticks of axis i against its current bounds and
// direction. An axis with no data and no manual bounds has no ticks.
func (f *Figure) Ticks(i int) ([]Tick, error) {
	if err := f.checkAxis(i); err != nil {
		return nil, err
	}
	return f.planTicks(i, f.ranges[i].Inverted), nil
}

func (f *Figure) planTicks(i int, inverted bool) []Tick {
	r := f.ranges[i]
	if r.Empty() {
		return nil
	}
	// Figure mutations keep every range valid.
	lo, hi, _ := r.Effective()
	if lo == hi {
		// A constant axis has a single meaningful tick, in the
		// middle where all of its rows are drawn.
		return []Tick{{Value: lo, Position: 0.5, Label: formatTick(lo, -1)}}
	}

	spec := f.ticks[i]
	var ticks []Tick
	switch spec.mode {
	case tickExplicit:
		ticks = make([]Tick, len(spec.values))
		for k, v := range spec.values {
			ticks[k] = Tick{v, Normalize(v, lo, hi, inverted), formatTick(v, -1)}
		}

	case tickEven:
		vals := vec.Linspace(lo, hi, spec.count)
		ticks = make([]Tick, len(vals))
		for k, v := range vals {
			// Position the tick at the exact value so ticks
			// stay evenly spaced; only the label is rounded.
			disp := round(v, spec.precision)
			ticks[k] = Tick{disp, Normalize(v, lo, hi, inverted), formatTick(disp, spec.precision)}
		}

	default:
		s := scale.Linear{Min: lo, Max: hi}
		major, _ := s.Ticks(scale.TickOptions{Max: AutoTickMax})
		for _, v := range major {
			if v < lo || v > hi {
				continue
			}
			ticks = append(ticks, Tick{v, Normalize(v, lo, hi, inverted), formatTick(v, -1)})
		}
	}
	return ticks
}

// round rounds x to prec decimal places. prec < 0 means no rounding.
func round(x float64, prec int) float64 {
	if prec < 0 {
		return x
	}
	p := math.Pow(10, float64(prec))
	return math.Round(x*p) / p
}

func formatTick(x float64, prec int) string {
	if prec < 0 {
		return strconv.FormatFloat(x, 'g', 6, 64)
	}
	return strconv.FormatFloat(x, 'f', prec, 64)
}
