// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pax

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"reflect"
	"strings"
	"testing"
)

// recorder is a Renderer that logs every call.
type recorder struct {
	calls []string
	lines [][]float64
	cols  []color.Color
}

func (r *recorder) Begin(axes int) {
	r.calls = append(r.calls, fmt.Sprintf("begin %d", axes))
}

func (r *recorder) Polyline(xs, ys []float64, c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("line %v", xs))
	r.lines = append(r.lines, append([]float64(nil), ys...))
	r.cols = append(r.cols, c)
}

func (r *recorder) Axis(axis int, label string, ticks []Tick) {
	r.calls = append(r.calls, fmt.Sprintf("axis %d %q %d", axis, label, len(ticks)))
}

func (r *recorder) Colorbar(cmap Colormap, label string, ticks []Tick) {
	r.calls = append(r.calls, fmt.Sprintf("colorbar %q %d", label, len(ticks)))
}

func (r *recorder) Legend(entries []LegendEntry) {
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	r.calls = append(r.calls, "legend "+strings.Join(labels, ","))
}

func (r *recorder) Export(w io.Writer) error {
	return nil
}

func TestAxisX(t *testing.T) {
	if got := AxisX(0, 1); got != 0.5 {
		t.Errorf("AxisX(0, 1) = %g, want 0.5", got)
	}
	for i, want := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := AxisX(i, 5); got != want {
			t.Errorf("AxisX(%d, 5) = %g, want %g", i, got, want)
		}
	}
}

func TestRender(t *testing.T) {
	f := mustNew(t, 3, WithClip(ClipOmit))
	mustAppend(t, f, []float64{0, 0, 0}, []float64{10, 5, 1})
	if err := f.SetLabels([]string{"a", "b", "c"}); err != nil {
		t.Fatal(err)
	}
	if err := f.SetEvenTicks(1, 3); err != nil {
		t.Fatal(err)
	}

	var r recorder
	f.Render(&r)
	want := []string{
		"begin 3",
		"line [0 0.5 1]",
		"line [0 0.5 1]",
		`axis 0 "a" ` + fmt.Sprint(len(mustTicks(t, f, 0))),
		`axis 1 "b" 3`,
		`axis 2 "c" ` + fmt.Sprint(len(mustTicks(t, f, 2))),
	}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls:\n%s\nwant:\n%s", strings.Join(r.calls, "\n"), strings.Join(want, "\n"))
	}
	for _, c := range r.cols {
		if c != color.Black {
			t.Errorf("uncolored row drawn in %v", c)
		}
	}

	// Clipped positions reach the renderer as NaN.
	if err := f.SetLimits(0, 5, 20); err != nil {
		t.Fatal(err)
	}
	r = recorder{}
	f.Render(&r)
	if !math.IsNaN(r.lines[0][0]) || !near(r.lines[1][0], 1.0/3) {
		t.Errorf("clipped lines %v", r.lines)
	}
}

func TestRenderColorbarLegend(t *testing.T) {
	f := mustNew(t, 2, WithColormap(grayRamp))
	mustAppend(t, f, []float64{0, 0}, []float64{1, 1})
	if err := f.SetLabels([]string{"x", "y"}); err != nil {
		t.Fatal(err)
	}
	if err := f.SetLegend([]string{"first", "second"}); err != nil {
		t.Fatal(err)
	}

	// No colorbar without a color axis, even if requested.
	f.SetColorbar(true)
	var r recorder
	f.Render(&r)
	if last := r.calls[len(r.calls)-1]; last != "legend first,second" {
		t.Errorf("last call %q, want legend", last)
	}
	for _, c := range r.calls {
		if strings.HasPrefix(c, "colorbar") {
			t.Errorf("colorbar drawn without color axis")
		}
	}

	if err := f.SetColorAxis(1); err != nil {
		t.Fatal(err)
	}
	if err := f.SetEvenTicks(1, 5); err != nil {
		t.Fatal(err)
	}
	r = recorder{}
	f.Render(&r)
	n := len(r.calls)
	if r.calls[n-2] != `colorbar "y" 5` || r.calls[n-1] != "legend first,second" {
		t.Errorf("tail calls %q", r.calls[n-2:])
	}
	if !reflect.DeepEqual(r.cols, f.RowColors()) {
		t.Errorf("line colors %v, want %v", r.cols, f.RowColors())
	}
}
