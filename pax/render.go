// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pax

import (
	"image/color"
	"io"
)

// A Renderer draws a figure. Figure.Render calls Begin once, then
// Polyline for each row, Axis for each axis, then Colorbar and Legend
// if the figure has them. Export writes the finished drawing.
//
// All coordinates are in the figure's normalized space: x runs from 0
// at the first axis to 1 at the last, and y from 0 at the bottom of
// each axis to 1 at the top.
type Renderer interface {
	Begin(axes int)

	// Polyline draws one row. xs and ys have one entry per axis.
	// A non-finite y breaks the line.
	Polyline(xs, ys []float64, c color.Color)

	Axis(axis int, label string, ticks []Tick)
	Colorbar(cmap Colormap, label string, ticks []Tick)
	Legend(entries []LegendEntry)

	Export(w io.Writer) error
}

// A LegendEntry labels one row's line.
type LegendEntry struct {
	Label string
	Color color.Color
}

// AxisX returns the horizontal position of axis i of n in [0, 1].
func AxisX(i, n int) float64 {
	if n == 1 {
		return 0.5
	}
	return float64(i) / float64(n-1)
}

// Render draws the figure with r. It does not call r.Export.
func (f *Figure) Render(r Renderer) {
	n := len(f.ranges)
	r.Begin(n)

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = AxisX(i, n)
	}
	colors := f.RowColors()
	for id, row := range f.positions() {
		var c color.Color = color.Black
		if colors != nil {
			c = colors[id]
		}
		r.Polyline(xs, row, c)
	}

	for i := 0; i < n; i++ {
		r.Axis(i, f.labels[i], f.planTicks(i, f.ranges[i].Inverted))
	}

	if f.colorbar && f.colorAxis >= 0 {
		r.Colorbar(f.cmap, f.labels[f.colorAxis], f.ColorbarTicks())
	}

	if f.legend != nil {
		entries := make([]LegendEntry, len(f.legend))
		for id, label := range f.legend {
			entries[id] = LegendEntry{Label: label, Color: color.Black}
			if colors != nil {
				entries[id].Color = colors[id]
			}
		}
		r.Legend(entries)
	}
}
