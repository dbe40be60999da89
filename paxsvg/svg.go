// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paxsvg renders parallel-coordinates figures as SVG.
package paxsvg

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/paxplot/paxplot/internal/frame"
	"github.com/paxplot/paxplot/pax"
)

// Warning is the logger for non-fatal rendering problems.
var Warning = log.New(os.Stderr, "[paxsvg] ", log.Lshortfile)

// barStops is the number of color stops sampled from a colormap to
// build the colorbar gradient.
const barStops = 17

// Renderer is a pax.Renderer that produces an SVG document.
type Renderer struct {
	frame.Scene
}

var _ pax.Renderer = (*Renderer)(nil)

// New returns a Renderer for a canvas of the given size in pixels. If
// width or height is 0, the size is chosen from the number of axes.
func New(width, height int) *Renderer {
	return &Renderer{frame.Scene{Width: width, Height: height}}
}

// Export writes the figure recorded by the last Render as an SVG
// document to w.
func (r *Renderer) Export(w io.Writer) error {
	if r.NumAxes == 0 {
		return fmt.Errorf("paxsvg: nothing rendered")
	}
	f := r.Layout()
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(f.Width, f.Height, fmt.Sprintf(`font-size="%dpx" font-family="Helvetica,Arial,sans-serif"`, frame.FontSize))
	canvas.Rect(0, 0, f.Width, f.Height, "fill:white")

	for _, l := range r.Lines {
		drawLine(canvas, f, l)
	}
	for i, a := range r.Axes {
		drawAxis(canvas, f, i, a)
	}
	if r.Cmap != nil {
		drawColorbar(canvas, f, r.Cmap, r.BarLabel, r.BarTicks)
	}
	if len(r.Entries) > 0 {
		drawLegend(canvas, f, r.Entries)
	}

	canvas.End()
	return ew.err
}

// drawLine draws one row. Non-finite positions break the line, and
// isolated points are drawn as dots.
func drawLine(canvas *svg.SVG, f *frame.Frame, l frame.Line) {
	var path []byte
	flush := func(run []int) {
		switch len(run) {
		case 0:
			return
		case 1:
			i := run[0]
			canvas.Circle(int(f.X(l.Xs[i])), int(f.Y(l.Ys[i])), 2, cssPaint("fill", l.Color))
			return
		}
		for k, i := range run {
			if k == 0 {
				path = append(path, 'M')
			} else {
				path = append(path, 'L')
			}
			path = strconv.AppendFloat(path, f.X(l.Xs[i]), 'g', 6, 64)
			path = append(path, ' ')
			path = strconv.AppendFloat(path, f.Y(l.Ys[i]), 'g', 6, 64)
		}
	}
	var run []int
	for i := range l.Xs {
		if isFinite(l.Ys[i]) {
			run = append(run, i)
			continue
		}
		flush(run)
		run = run[:0]
	}
	flush(run)
	if len(path) == 0 {
		return
	}
	canvas.Path(string(path), cssPaint("stroke", l.Color)+";fill:none;stroke-width:1.5")
}

// drawAxis draws axis i with its ticks and label. The last axis of a
// multi-axis figure carries its tick labels on the right.
func drawAxis(canvas *svg.SVG, f *frame.Frame, i int, a frame.Axis) {
	x := f.X(pax.AxisX(i, f.Axes))
	canvas.Path(fmt.Sprintf("M%.6g %.6gV%.6g", x, f.Y(1), f.Y(0)), "stroke:#000;stroke-width:1")

	dir, anchor := -1.0, "end"
	if f.Axes > 1 && i == f.Axes-1 {
		dir, anchor = 1, "start"
	}
	for _, t := range a.Ticks {
		if !frame.InWindow(t.Position) {
			continue
		}
		y := f.Y(t.Position)
		canvas.Path(fmt.Sprintf("M%.6g %.6gh%.6g", x, y, dir*frame.TickLength), "stroke:#000;stroke-width:1")
		canvas.Text(int(x+dir*(frame.TickLength+2)), int(y), t.Label, `text-anchor="`+anchor+`" dy=".3em"`)
	}
	if a.Label != "" {
		canvas.Text(int(x), int(f.LabelY()), a.Label, `text-anchor="middle"`)
	}
}

func drawColorbar(canvas *svg.SVG, f *frame.Frame, cmap pax.Colormap, label string, ticks []pax.Tick) {
	stops := make([]svg.Offcolor, barStops)
	for i := range stops {
		p := float64(i) / (barStops - 1)
		hex, alpha := cssColor(cmap.Map(p))
		stops[i] = svg.Offcolor{Offset: uint8(math.Round(100 * p)), Color: hex, Opacity: alpha}
	}
	canvas.Def()
	// The gradient runs from the bottom of the bar to the top.
	canvas.LinearGradient("colorbar", 0, 100, 0, 0, stops)
	canvas.DefEnd()

	b := f.Bar
	canvas.Rect(int(b.X), int(b.Y), int(b.W), int(b.H), `fill="url(#colorbar)"`, `stroke="#000"`)
	right := b.X + b.W
	for _, t := range ticks {
		if !frame.InWindow(t.Position) {
			continue
		}
		y := f.BarY(t.Position)
		canvas.Path(fmt.Sprintf("M%.6g %.6gh%d", right, y, frame.TickLength), "stroke:#000;stroke-width:1")
		canvas.Text(int(right+frame.TickLength+2), int(y), t.Label, `text-anchor="start" dy=".3em"`)
	}
	if label != "" {
		canvas.Text(int(b.X+b.W/2), int(b.Y+b.H+frame.TickLength+1.5*frame.FontSize), label, `text-anchor="middle"`)
	}
}

func drawLegend(canvas *svg.SVG, f *frame.Frame, entries []pax.LegendEntry) {
	if n := f.MaxLegend(); len(entries) > n {
		Warning.Printf("legend has %d entries but only %d fit; truncating", len(entries), n)
		entries = entries[:n]
	}
	for i, e := range entries {
		y := f.LegendEntryY(i)
		canvas.Path(fmt.Sprintf("M%.6g %.6gh20", f.LegendX, y-frame.FontSize/3), cssPaint("stroke", e.Color)+";stroke-width:2")
		canvas.Text(int(f.LegendX+26), int(y), e.Label)
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// cssColor returns c as an SVG 1.1 color and opacity.
func cssColor(c color.Color) (string, float64) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "none", 0
	}
	if a != 0xffff {
		// Undo alpha pre-multiplication.
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	r, g, b = r>>8, g>>8, b>>8
	return fmt.Sprintf("#%02x%02x%02x", r, g, b), float64(a) / 0xffff
}

// cssPaint returns a CSS declaration painting property prop with c.
func cssPaint(prop string, c color.Color) string {
	hex, alpha := cssColor(c)
	css := prop + ":" + hex
	if alpha != 0 && alpha != 1 {
		css += fmt.Sprintf(";%s-opacity:%.6g", prop, alpha)
	}
	return css
}

// errWriter remembers the first write error, since svgo does not
// report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.err = err
	return n, err
}
