// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paxpng

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/paxplot/paxplot/colormap"
	"github.com/paxplot/paxplot/pax"
)

func newFigure(t *testing.T, opts ...pax.Option) *pax.Figure {
	t.Helper()
	f, err := pax.New(2, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.AppendRows([][]float64{{0, 0}, {1, 1}}); err != nil {
		t.Fatal(err)
	}
	return f
}

func gray(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}

func TestExportDecodes(t *testing.T) {
	r := New(400, 300)
	newFigure(t).Render(r)
	var buf bytes.Buffer
	if err := r.Export(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b != image.Rect(0, 0, 400, 300) {
		t.Fatalf("image bounds %v, want 400x300", b)
	}
	if g := gray(img.At(1, 1)); g != 255 {
		t.Errorf("background gray %d, want 255", g)
	}
	// Row 0 runs along the bottom of the plot area, halfway between
	// the axes.
	l := r.Layout()
	x, y := int(l.X(0.5)), int(l.Y(0))
	if g := gray(img.At(x, y)); g > 128 {
		t.Errorf("pixel (%d,%d) on row 0 has gray %d", x, y, g)
	}
	// Nothing is drawn halfway up between the axes.
	if g := gray(img.At(x, int(l.Y(0.5)))); g != 255 {
		t.Errorf("empty pixel has gray %d", g)
	}
}

func TestDefaultSize(t *testing.T) {
	r := New(0, 0)
	newFigure(t).Render(r)
	img, err := r.Image()
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 400 {
		t.Errorf("default size %v, want 400x400", b)
	}
}

func TestColorbar(t *testing.T) {
	f := newFigure(t, pax.WithColormap(colormap.Gray))
	if err := f.SetColorAxis(0); err != nil {
		t.Fatal(err)
	}
	f.SetColorbar(true)
	r := New(600, 300)
	f.Render(r)
	img, err := r.Image()
	if err != nil {
		t.Fatal(err)
	}
	b := r.Layout().Bar
	x := int(b.X + b.W/2)
	if g := gray(img.At(x, int(b.Y)+2)); g < 200 {
		t.Errorf("top of colorbar has gray %d, want light", g)
	}
	if g := gray(img.At(x, int(b.Y+b.H)-3)); g > 55 {
		t.Errorf("bottom of colorbar has gray %d, want dark", g)
	}
}

func TestSingleAxis(t *testing.T) {
	f, err := pax.New(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.AppendRows([][]float64{{3}, {5}}); err != nil {
		t.Fatal(err)
	}
	f.SetLegend([]string{"low", "high"})
	r := New(0, 0)
	f.Render(r)
	if _, err := r.Image(); err != nil {
		t.Fatal(err)
	}
}

func TestNothingRendered(t *testing.T) {
	if err := New(10, 10).Export(new(bytes.Buffer)); err == nil {
		t.Error("Export before Render succeeded")
	}
}

func TestLegendTruncated(t *testing.T) {
	var log bytes.Buffer
	Warning.SetOutput(&log)
	defer Warning.SetOutput(os.Stderr)

	f, err := pax.New(2)
	if err != nil {
		t.Fatal(err)
	}
	rows := [][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}
	if _, err := f.AppendRows(rows); err != nil {
		t.Fatal(err)
	}
	if err := f.SetLegend([]string{"a", "b", "c", "d", "e"}); err != nil {
		t.Fatal(err)
	}
	r := New(600, 100)
	f.Render(r)
	if _, err := r.Image(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(log.String(), "legend has 5 entries") {
		t.Errorf("no truncation warning; log %q", log.String())
	}
}
