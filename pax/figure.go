// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pax

import (
	"fmt"
	"math"

	"github.com/paxplot/paxplot/colormap"
)

// A Figure is the state of one parallel-coordinates plot: its axes,
// the rows appended so far, and the current position of every row on
// every axis.
//
// The zero Figure is not usable; create one with New.
type Figure struct {
	ranges []Range
	labels []string
	ticks  []tickSpec

	// rows holds the raw values of every appended row. These are
	// the source of truth; pos is always recomputed from them.
	rows [][]float64

	// pos[i][j] is the unclipped position of row i on axis j
	// against the current effective bounds.
	pos [][]float64

	colorAxis int // -1 if unset
	cmap      Colormap
	colorbar  bool
	legend    []string

	clip ClipPolicy
}

// An Option configures a Figure at construction.
type Option func(*Figure)

// WithColormap sets the colormap used to color rows by the color
// axis. The default is colormap.Blues.
func WithColormap(cmap Colormap) Option {
	return func(f *Figure) {
		f.cmap = cmap
	}
}

// WithClip sets the policy for draw positions outside an axis
// window. The default is ClipNone.
func WithClip(c ClipPolicy) Option {
	return func(f *Figure) {
		f.clip = c
	}
}

// New returns a Figure with n empty axes and no rows.
func New(n int, opts ...Option) (*Figure, error) {
	if n < 1 {
		return nil, fmt.Errorf("figure needs at least 1 axis, got %d: %w", n, ErrInvalidArgument)
	}
	f := &Figure{
		ranges:    make([]Range, n),
		labels:    make([]string, n),
		ticks:     make([]tickSpec, n),
		colorAxis: -1,
		cmap:      colormap.Blues,
	}
	for i := range f.ranges {
		f.ranges[i] = NewRange()
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Axes returns the number of axes.
func (f *Figure) Axes() int {
	return len(f.ranges)
}

// Len returns the number of rows appended so far.
func (f *Figure) Len() int {
	return len(f.rows)
}

// Clip returns the figure's clip policy.
func (f *Figure) Clip() ClipPolicy {
	return f.clip
}

func (f *Figure) checkAxis(i int) error {
	if i < 0 || i >= len(f.ranges) {
		return fmt.Errorf("axis %d not in [0,%d): %w", i, len(f.ranges), ErrIndexOutOfRange)
	}
	return nil
}

// Range returns a copy of axis i's range.
func (f *Figure) Range(i int) (Range, error) {
	if err := f.checkAxis(i); err != nil {
		return Range{}, err
	}
	return f.ranges[i], nil
}

// Row returns a copy of the raw values of row id.
func (f *Figure) Row(id int) ([]float64, error) {
	if id < 0 || id >= len(f.rows) {
		return nil, fmt.Errorf("row %d not in [0,%d): %w", id, len(f.rows), ErrIndexOutOfRange)
	}
	return append([]float64(nil), f.rows[id]...), nil
}

// AppendRows adds a batch of rows to the figure. Every row must have
// one finite value per axis; otherwise the whole batch is rejected
// and the figure is unchanged.
//
// Appending can widen the bounds of any axis, which moves rows that
// were already in the figure. AppendRows therefore returns the draw
// positions of every row, old and new, indexed by row ID and then by
// axis, with the figure's clip policy applied.
//
// Appending an empty batch does nothing.
func (f *Figure) AppendRows(rows [][]float64) ([][]float64, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	n := len(f.ranges)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d of batch has %d values, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("row %d of batch has non-finite value %g on axis %d: %w", i, v, j, ErrInvalidArgument)
			}
		}
	}

	// Extend copies of the ranges so a bounds failure leaves the
	// figure untouched.
	ranges := append([]Range(nil), f.ranges...)
	col := make([]float64, len(rows))
	for j := range ranges {
		for i, row := range rows {
			col[i] = row[j]
		}
		ranges[j].Extend(col)
	}

	all := make([][]float64, 0, len(f.rows)+len(rows))
	all = append(all, f.rows...)
	for _, row := range rows {
		all = append(all, append([]float64(nil), row...))
	}

	pos, err := reproject(ranges, all)
	if err != nil {
		return nil, err
	}
	f.ranges, f.rows, f.pos = ranges, all, pos
	return f.positions(), nil
}

// SetLimits sets the manual bounds of axis i. Pass NaN for either
// bound to leave that side following the data. Manual bounds change
// only the displayed window; later appends still extend the data
// bounds, which take effect again after ClearLimits.
func (f *Figure) SetLimits(i int, min, max float64) error {
	if err := f.checkAxis(i); err != nil {
		return err
	}
	if math.IsInf(min, 0) || math.IsInf(max, 0) {
		return fmt.Errorf("axis %d limits [%g,%g] are infinite: %w", i, min, max, ErrInvalidArgument)
	}
	return f.updateRange(i, func(r *Range) {
		r.SetManual(min, max)
	})
}

// ClearLimits removes the manual bounds of axis i.
func (f *Figure) ClearLimits(i int) error {
	if err := f.checkAxis(i); err != nil {
		return err
	}
	return f.updateRange(i, (*Range).ClearManual)
}

// InvertAxis toggles the direction of axis i. Inverting twice
// restores every position exactly.
func (f *Figure) InvertAxis(i int) error {
	if err := f.checkAxis(i); err != nil {
		return err
	}
	return f.updateRange(i, (*Range).Invert)
}

// updateRange applies fn to a copy of axis i's range and, if the
// result is valid, commits it and reprojects every row.
func (f *Figure) updateRange(i int, fn func(*Range)) error {
	ranges := append([]Range(nil), f.ranges...)
	fn(&ranges[i])
	if err := ranges[i].check(); err != nil {
		return fmt.Errorf("axis %d: %w", i, err)
	}
	pos, err := reproject(ranges, f.rows)
	if err != nil {
		return err
	}
	f.ranges, f.pos = ranges, pos
	return nil
}

// reproject computes the position of every row on every axis against
// ranges. It is the only place positions are computed.
func reproject(ranges []Range, rows [][]float64) ([][]float64, error) {
	type bounds struct{ lo, hi float64 }
	bs := make([]bounds, len(ranges))
	for j, r := range ranges {
		lo, hi, err := r.Effective()
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", j, err)
		}
		bs[j] = bounds{lo, hi}
	}

	pos := make([][]float64, len(rows))
	flat := make([]float64, len(rows)*len(ranges))
	for i, row := range rows {
		p := flat[i*len(ranges) : (i+1)*len(ranges) : (i+1)*len(ranges)]
		for j, v := range row {
			p[j] = Normalize(v, bs[j].lo, bs[j].hi, ranges[j].Inverted)
		}
		pos[i] = p
	}
	return pos, nil
}

// positions returns a clipped copy of every row's positions.
func (f *Figure) positions() [][]float64 {
	out := make([][]float64, len(f.pos))
	for i, p := range f.pos {
		out[i] = make([]float64, len(p))
		for j, y := range p {
			out[i][j] = f.clip.apply(y)
		}
	}
	return out
}

// A RowPosition is the draw position of one row on one axis.
type RowPosition struct {
	Row      int
	Position float64
}

// AxisPositions returns the current draw position of every row on
// axis i, in row order, with the clip policy applied.
func (f *Figure) AxisPositions(i int) ([]RowPosition, error) {
	if err := f.checkAxis(i); err != nil {
		return nil, err
	}
	out := make([]RowPosition, len(f.pos))
	for id, p := range f.pos {
		out[id] = RowPosition{id, f.clip.apply(p[i])}
	}
	return out, nil
}

// SetLabel sets the display label of axis i.
func (f *Figure) SetLabel(i int, label string) error {
	if err := f.checkAxis(i); err != nil {
		return err
	}
	f.labels[i] = label
	return nil
}

// SetLabels sets the display label of every axis.
func (f *Figure) SetLabels(labels []string) error {
	if len(labels) != len(f.labels) {
		return fmt.Errorf("%d labels for %d axes: %w", len(labels), len(f.labels), ErrDimensionMismatch)
	}
	copy(f.labels, labels)
	return nil
}

// Label returns the display label of axis i.
func (f *Figure) Label(i int) (string, error) {
	if err := f.checkAxis(i); err != nil {
		return "", err
	}
	return f.labels[i], nil
}

// SetLegend attaches one legend label to each row currently in the
// figure. Rows appended later have no legend entry. A nil labels
// removes the legend.
func (f *Figure) SetLegend(labels []string) error {
	if labels == nil {
		f.legend = nil
		return nil
	}
	if len(labels) != len(f.rows) {
		return fmt.Errorf("%d legend labels for %d rows: %w", len(labels), len(f.rows), ErrDimensionMismatch)
	}
	f.legend = append([]string(nil), labels...)
	return nil
}

// SetColorbar controls whether Render draws a colorbar for the color
// axis.
func (f *Figure) SetColorbar(on bool) {
	f.colorbar = on
}
