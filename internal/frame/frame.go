// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame lays out a parallel-coordinates figure in pixels.
//
// A Frame divides the canvas into a plot area holding the axes and
// lines, and an optional side panel on the right holding the colorbar
// and the legend.
package frame

import "math"

// Unit is the size in pixels of one figure unit. A figure is 2 units
// wide per axis and 4 units high.
const Unit = 100

// Margins around the plot area, in pixels.
const (
	MarginLeft   = 60
	MarginRight  = 40
	MarginTop    = 20
	MarginBottom = 40

	// ColorbarWidth is the width of the colorbar panel, including
	// its tick labels.
	ColorbarWidth = 90
	// BarWidth is the width of the gradient bar itself.
	BarWidth = 16

	// LegendWidth is the width of the legend panel.
	LegendWidth = 140
	// LegendLeading is the vertical distance between legend entries.
	LegendLeading = 16

	// TickLength is the length of an axis tick mark.
	TickLength = 5
	// FontSize is the nominal text size.
	FontSize = 12
)

// Size returns the default canvas size for a figure with the given
// number of axes.
func Size(axes int) (width, height int) {
	if axes < 1 {
		axes = 1
	}
	return 2 * Unit * axes, 4 * Unit
}

// A Rect is an axis-aligned rectangle in pixels. Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

// A Frame is the pixel layout of one figure.
type Frame struct {
	Width, Height int
	Axes          int

	// Plot holds the axes. Axis lines run from its top edge to its
	// bottom edge.
	Plot Rect

	// Bar is the colorbar gradient. It is the zero Rect if the
	// figure has no colorbar.
	Bar Rect

	// Legend is the origin of the first legend entry.
	LegendX, LegendY float64
}

// New lays out a figure of the given size and number of axes. Space
// for the colorbar and legend panels is taken from the right edge of
// the plot area, but never so much that the plot area vanishes.
func New(width, height, axes int, colorbar, legend bool) *Frame {
	f := &Frame{Width: width, Height: height, Axes: axes}
	right := float64(width) - MarginRight
	if legend {
		right -= LegendWidth
		f.LegendX = right + 10
		f.LegendY = MarginTop + FontSize
	}
	if colorbar {
		right -= ColorbarWidth
		f.Bar = Rect{right + 30, MarginTop, BarWidth, float64(height) - MarginTop - MarginBottom}
		if legend {
			f.LegendX = right + ColorbarWidth + 10
		}
	}
	left := float64(MarginLeft)
	if right < left+1 {
		right = left + 1
	}
	f.Plot = Rect{left, MarginTop, right - left, math.Max(1, float64(height)-MarginTop-MarginBottom)}
	if f.Bar.H < 1 && colorbar {
		f.Bar.H = 1
	}
	return f
}

// X returns the pixel column of a horizontal position in [0, 1].
func (f *Frame) X(frac float64) float64 {
	return f.Plot.X + frac*f.Plot.W
}

// Y returns the pixel row of a draw position. Position 0 is the
// bottom of the plot area and 1 is the top. Positions outside [0, 1]
// map outside the plot area.
func (f *Frame) Y(pos float64) float64 {
	return f.Plot.Y + (1-pos)*f.Plot.H
}

// BarY returns the pixel row of a colorbar position in [0, 1].
func (f *Frame) BarY(pos float64) float64 {
	return f.Bar.Y + (1-pos)*f.Bar.H
}

// LabelY returns the baseline of the axis labels below the plot area.
func (f *Frame) LabelY() float64 {
	return f.Plot.Y + f.Plot.H + TickLength + 1.5*FontSize
}

// LegendEntryY returns the baseline of legend entry i.
func (f *Frame) LegendEntryY(i int) float64 {
	return f.LegendY + float64(i)*LegendLeading
}
