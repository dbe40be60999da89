// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"image/color"

	"github.com/paxplot/paxplot/pax"
)

// A Scene records the drawing calls of pax.Figure.Render so a back
// end can lay the figure out once everything that needs space is
// known. It implements every pax.Renderer method except Export.
type Scene struct {
	// Width and Height are the canvas size in pixels. If either
	// is zero, Size picks the default for the number of axes.
	Width, Height int

	NumAxes int
	Lines   []Line
	Axes    []Axis

	// Cmap is nil if the figure has no colorbar.
	Cmap     pax.Colormap
	BarLabel string
	BarTicks []pax.Tick
	Entries  []pax.LegendEntry
}

// A Line is one row's polyline in normalized coordinates.
type Line struct {
	Xs, Ys []float64
	Color  color.Color
}

// An Axis is one recorded axis.
type Axis struct {
	Label string
	Ticks []pax.Tick
}

func (s *Scene) Begin(axes int) {
	*s = Scene{Width: s.Width, Height: s.Height, NumAxes: axes, Axes: make([]Axis, axes)}
}

func (s *Scene) Polyline(xs, ys []float64, c color.Color) {
	s.Lines = append(s.Lines, Line{
		Xs:    append([]float64(nil), xs...),
		Ys:    append([]float64(nil), ys...),
		Color: c,
	})
}

func (s *Scene) Axis(axis int, label string, ticks []pax.Tick) {
	s.Axes[axis] = Axis{label, ticks}
}

func (s *Scene) Colorbar(cmap pax.Colormap, label string, ticks []pax.Tick) {
	s.Cmap, s.BarLabel, s.BarTicks = cmap, label, ticks
}

func (s *Scene) Legend(entries []pax.LegendEntry) {
	s.Entries = entries
}

// Layout returns the pixel layout of the recorded figure.
func (s *Scene) Layout() *Frame {
	w, h := s.Width, s.Height
	if w <= 0 || h <= 0 {
		w, h = Size(s.NumAxes)
	}
	return New(w, h, s.NumAxes, s.Cmap != nil, len(s.Entries) > 0)
}

// MaxLegend returns how many legend entries fit in f.
func (f *Frame) MaxLegend() int {
	n := int((float64(f.Height)-MarginBottom-f.LegendY)/LegendLeading) + 1
	if n < 0 {
		return 0
	}
	return n
}

// InWindow reports whether a tick or draw position lies on its axis.
func InWindow(pos float64) bool {
	const eps = 1e-9
	return pos >= -eps && pos <= 1+eps
}
