// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paxgg renders parallel-coordinates figures with go-gg and
// exposes figure positions as go-gg tables.
//
// The go-gg rendition draws every row as a path over the axis index,
// with all axes sharing a single [0, 1] position scale. go-gg has no
// per-axis scales, colorbars, or legends, so the Renderer draws axis
// labels but not per-axis tick values, and reports colorbars and
// legends through Warning.
package paxgg

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"os"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/paxplot/paxplot/internal/frame"
	"github.com/paxplot/paxplot/pax"
)

// Warning is the logger for figure features this back end cannot
// draw.
var Warning = log.New(os.Stderr, "[paxgg] ", log.Lshortfile)

// Renderer is a pax.Renderer that builds a go-gg plot.
type Renderer struct {
	// Width and Height are the SVG size in pixels. If either is
	// zero, the size is chosen from the number of axes.
	Width, Height int

	// Title, if non-empty, is drawn above the plot.
	Title string

	axes   int
	labels []string

	// Columns of the row table, one entry per point.
	rows      []int
	axis      []int
	positions []float64
	strokes   []color.Color
}

var _ pax.Renderer = (*Renderer)(nil)

// New returns a Renderer for an SVG of the given size in pixels.
func New(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

func (r *Renderer) Begin(axes int) {
	*r = Renderer{Width: r.Width, Height: r.Height, Title: r.Title, axes: axes, labels: make([]string, axes)}
}

func (r *Renderer) Polyline(xs, ys []float64, c color.Color) {
	id := 0
	if n := len(r.rows); n > 0 {
		id = r.rows[n-1] + 1
	}
	for i, y := range ys {
		r.rows = append(r.rows, id)
		r.axis = append(r.axis, i)
		r.positions = append(r.positions, y)
		r.strokes = append(r.strokes, c)
	}
}

func (r *Renderer) Axis(axis int, label string, ticks []pax.Tick) {
	r.labels[axis] = label
}

func (r *Renderer) Colorbar(cmap pax.Colormap, label string, ticks []pax.Tick) {
	Warning.Printf("colorbar for %q not drawn", label)
}

func (r *Renderer) Legend(entries []pax.LegendEntry) {
	Warning.Printf("legend with %d entries not drawn", len(entries))
}

// Plot returns the go-gg plot of the figure recorded by the last
// Render.
func (r *Renderer) Plot() (*gg.Plot, error) {
	if r.axes == 0 {
		return nil, fmt.Errorf("paxgg: nothing rendered")
	}
	lines := new(table.Builder).
		Add("axis", r.axis).
		Add("position", r.positions).
		Add("row", r.rows).
		Add("stroke", r.strokes).
		Done()
	p := gg.NewPlot(lines)

	x := gg.NewLinearScaler().SetMin(-0.25).SetMax(float64(r.axes) - 0.75)
	x.SetFormatter(r.axisLabel)
	p.SetScale("x", x)
	p.SetScale("y", gg.NewLinearScaler().SetMin(0).SetMax(1))
	p.SetScale("stroke", gg.NewIdentityScale())

	// Axes are drawn first so rows cover them.
	ax, pos := make([]int, 0, 2*r.axes), make([]float64, 0, 2*r.axes)
	for i := 0; i < r.axes; i++ {
		ax = append(ax, i, i)
		pos = append(pos, 0, 1)
	}
	p.Save()
	p.SetData(new(table.Builder).Add("axis", ax).Add("position", pos).Done())
	p.GroupBy("axis")
	p.Add(gg.LayerPaths{X: "axis", Y: "position", Color: p.Const(color.Gray{0x88})})
	p.Restore()

	p.GroupBy("row")
	p.Add(gg.LayerPaths{X: "axis", Y: "position", Color: "stroke"})

	p.Add(gg.AxisLabel("x", ""), gg.AxisLabel("y", "position"))
	if r.Title != "" {
		p.Add(gg.Title(r.Title))
	}
	return p, nil
}

// axisLabel formats an x tick as the label of the axis at that index.
func (r *Renderer) axisLabel(x float64) string {
	i := int(math.Round(x))
	if i < 0 || i >= len(r.labels) || math.Abs(x-float64(i)) > 1e-9 {
		return ""
	}
	if r.labels[i] == "" {
		return fmt.Sprint(i)
	}
	return r.labels[i]
}

// Export writes the plot as SVG to w.
func (r *Renderer) Export(w io.Writer) error {
	p, err := r.Plot()
	if err != nil {
		return err
	}
	width, height := r.Width, r.Height
	if width <= 0 || height <= 0 {
		width, height = frame.Size(r.axes)
	}
	return p.WriteSVG(w, width, height)
}
