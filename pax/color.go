// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pax

import (
	"image/color"
)

// A Colormap maps a position in [0, 1] to a color. Any go-gg
// palette.Continuous is a Colormap.
type Colormap interface {
	Map(x float64) color.Color
}

// SetColorAxis makes axis i the source of row colors. This replaces
// any previous color axis.
func (f *Figure) SetColorAxis(i int) error {
	if err := f.checkAxis(i); err != nil {
		return err
	}
	f.colorAxis = i
	return nil
}

// ClearColorAxis removes the color axis. Rows are then drawn without
// a color of their own.
func (f *Figure) ClearColorAxis() {
	f.colorAxis = -1
}

// ColorAxis returns the current color axis, if any.
func (f *Figure) ColorAxis() (int, bool) {
	return f.colorAxis, f.colorAxis >= 0
}

// Colormap returns the figure's colormap.
func (f *Figure) Colormap() Colormap {
	return f.cmap
}

// RowColors returns the color of every row, in row order, or nil if
// there is no color axis.
//
// A row's color is its value on the color axis normalized against
// that axis's effective bounds and passed through the colormap.
// Inverting the color axis flips its drawing direction but not the
// colors. Values outside a manual window take the color at the
// nearest end.
func (f *Figure) RowColors() []color.Color {
	if f.colorAxis < 0 {
		return nil
	}
	r := f.ranges[f.colorAxis]
	lo, hi, _ := r.Effective()
	out := make([]color.Color, len(f.rows))
	for id, row := range f.rows {
		out[id] = f.cmap.Map(clamp01(Normalize(row[f.colorAxis], lo, hi, false)))
	}
	return out
}

// ColorbarTicks returns the ticks of the color axis positioned on a
// colorbar, which always runs from the low end of the colormap at 0
// to the high end at 1. It returns nil if there is no color axis.
func (f *Figure) ColorbarTicks() []Tick {
	if f.colorAxis < 0 {
		return nil
	}
	return f.planTicks(f.colorAxis, false)
}
