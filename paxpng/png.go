// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paxpng renders parallel-coordinates figures as PNG images.
//
// Lines are rasterized with anti-aliasing by golang.org/x/image/vector.
// Text uses the fixed 7x13 face from golang.org/x/image/font/basicfont.
package paxpng

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/paxplot/paxplot/internal/frame"
	"github.com/paxplot/paxplot/pax"
)

// Warning is the logger for non-fatal rendering problems.
var Warning = log.New(os.Stderr, "[paxpng] ", log.Lshortfile)

// barStops is the number of colormap samples stretched over the
// colorbar.
const barStops = 64

// Renderer is a pax.Renderer that produces a PNG image.
type Renderer struct {
	frame.Scene

	// LineWidth is the stroke width of row lines in pixels. If
	// zero, 1.5 is used.
	LineWidth float64
}

var _ pax.Renderer = (*Renderer)(nil)

// New returns a Renderer for an image of the given size in pixels. If
// width or height is 0, the size is chosen from the number of axes.
func New(width, height int) *Renderer {
	return &Renderer{Scene: frame.Scene{Width: width, Height: height}}
}

// Image draws the figure recorded by the last Render.
func (r *Renderer) Image() (*image.RGBA, error) {
	if r.NumAxes == 0 {
		return nil, fmt.Errorf("paxpng: nothing rendered")
	}
	f := r.Layout()
	c := &canvas{
		img:  image.NewRGBA(image.Rect(0, 0, f.Width, f.Height)),
		rast: vector.NewRasterizer(f.Width, f.Height),
	}
	draw.Draw(c.img, c.img.Bounds(), image.White, image.Point{}, draw.Src)

	lw := r.LineWidth
	if lw == 0 {
		lw = 1.5
	}
	for _, l := range r.Lines {
		c.polyline(f, l, lw)
	}
	for i, a := range r.Axes {
		c.axis(f, i, a)
	}
	if r.Cmap != nil {
		c.colorbar(f, r.Cmap, r.BarLabel, r.BarTicks)
	}
	if len(r.Entries) > 0 {
		c.legend(f, r.Entries)
	}
	return c.img, nil
}

// Export encodes the figure recorded by the last Render as a PNG
// to w.
func (r *Renderer) Export(w io.Writer) error {
	img, err := r.Image()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

type canvas struct {
	img  *image.RGBA
	rast *vector.Rasterizer
}

// segment fills the quadrilateral around the segment from (x0, y0) to
// (x1, y1) with the given width.
func (c *canvas) segment(x0, y0, x1, y1, width float64, col color.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		c.dot(x0, y0, width, col)
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	b := c.img.Bounds()
	c.rast.Reset(b.Dx(), b.Dy())
	c.rast.MoveTo(float32(x0+nx), float32(y0+ny))
	c.rast.LineTo(float32(x1+nx), float32(y1+ny))
	c.rast.LineTo(float32(x1-nx), float32(y1-ny))
	c.rast.LineTo(float32(x0-nx), float32(y0-ny))
	c.rast.ClosePath()
	c.rast.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// dot fills a square of side size centered on (x, y).
func (c *canvas) dot(x, y, size float64, col color.Color) {
	h := size / 2
	b := c.img.Bounds()
	c.rast.Reset(b.Dx(), b.Dy())
	c.rast.MoveTo(float32(x-h), float32(y-h))
	c.rast.LineTo(float32(x+h), float32(y-h))
	c.rast.LineTo(float32(x+h), float32(y+h))
	c.rast.LineTo(float32(x-h), float32(y+h))
	c.rast.ClosePath()
	c.rast.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// polyline draws one row, breaking it at non-finite positions.
// Isolated points are drawn as dots.
func (c *canvas) polyline(f *frame.Frame, l frame.Line, width float64) {
	start := 0
	for i := 0; i <= len(l.Xs); i++ {
		if i < len(l.Xs) && isFinite(l.Ys[i]) {
			continue
		}
		switch i - start {
		case 0:
		case 1:
			c.dot(f.X(l.Xs[start]), f.Y(l.Ys[start]), 2*width, l.Color)
		default:
			for j := start + 1; j < i; j++ {
				c.segment(f.X(l.Xs[j-1]), f.Y(l.Ys[j-1]), f.X(l.Xs[j]), f.Y(l.Ys[j]), width, l.Color)
			}
		}
		start = i + 1
	}
}

func (c *canvas) axis(f *frame.Frame, i int, a frame.Axis) {
	x := f.X(pax.AxisX(i, f.Axes))
	c.segment(x, f.Y(1), x, f.Y(0), 1, color.Black)

	dir := -1.0
	if f.Axes > 1 && i == f.Axes-1 {
		dir = 1
	}
	for _, t := range a.Ticks {
		if !frame.InWindow(t.Position) {
			continue
		}
		y := f.Y(t.Position)
		c.segment(x, y, x+dir*frame.TickLength, y, 1, color.Black)
		tx := x + dir*(frame.TickLength+2)
		if dir < 0 {
			tx -= float64(c.measure(t.Label))
		}
		c.text(tx, y+4, t.Label)
	}
	if a.Label != "" {
		c.text(x-float64(c.measure(a.Label))/2, f.LabelY(), a.Label)
	}
}

// colorbar stretches a strip of colormap samples over the bar.
func (c *canvas) colorbar(f *frame.Frame, cmap pax.Colormap, label string, ticks []pax.Tick) {
	strip := image.NewRGBA(image.Rect(0, 0, 1, barStops))
	for i := 0; i < barStops; i++ {
		// Row 0 is the top of the bar.
		strip.Set(0, i, cmap.Map(1-float64(i)/(barStops-1)))
	}
	b := f.Bar
	dst := image.Rect(int(b.X), int(b.Y), int(b.X+b.W), int(b.Y+b.H))
	draw.BiLinear.Scale(c.img, dst, strip, strip.Bounds(), draw.Src, nil)

	right := b.X + b.W
	for _, t := range ticks {
		if !frame.InWindow(t.Position) {
			continue
		}
		y := f.BarY(t.Position)
		c.segment(right, y, right+frame.TickLength, y, 1, color.Black)
		c.text(right+frame.TickLength+2, y+4, t.Label)
	}
	if label != "" {
		c.text(b.X+b.W/2-float64(c.measure(label))/2, b.Y+b.H+frame.TickLength+1.5*frame.FontSize, label)
	}
}

func (c *canvas) legend(f *frame.Frame, entries []pax.LegendEntry) {
	if n := f.MaxLegend(); len(entries) > n {
		Warning.Printf("legend has %d entries but only %d fit; truncating", len(entries), n)
		entries = entries[:n]
	}
	for i, e := range entries {
		y := f.LegendEntryY(i)
		c.segment(f.LegendX, y-4, f.LegendX+20, y-4, 2, e.Color)
		c.text(f.LegendX+26, y, e.Label)
	}
}

func (c *canvas) text(x, y float64, s string) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(s)
}

func (c *canvas) measure(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
