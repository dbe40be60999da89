// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pax

import (
	"errors"
	"reflect"
	"testing"
)

func tickValues(ts []Tick) []float64 {
	vs := make([]float64, len(ts))
	for i, t := range ts {
		vs[i] = t.Value
	}
	return vs
}

func tickPositions(ts []Tick) []float64 {
	ps := make([]float64, len(ts))
	for i, t := range ts {
		ps[i] = t.Position
	}
	return ps
}

func mustTicks(t *testing.T, f *Figure, i int) []Tick {
	t.Helper()
	ts, err := f.Ticks(i)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func TestEvenTicks(t *testing.T) {
	f := mustNew(t, 1)
	mustAppend(t, f, []float64{0}, []float64{100})
	if err := f.SetEvenTicks(0, 5); err != nil {
		t.Fatal(err)
	}
	ts := mustTicks(t, f, 0)
	if want := []float64{0, 25, 50, 75, 100}; !reflect.DeepEqual(tickValues(ts), want) {
		t.Errorf("even tick values %v, want %v", tickValues(ts), want)
	}
	if want := []float64{0, 0.25, 0.5, 0.75, 1}; !reflect.DeepEqual(tickPositions(ts), want) {
		t.Errorf("even tick positions %v, want %v", tickPositions(ts), want)
	}
	if ts[1].Label != "25" {
		t.Errorf("tick label %q, want \"25\"", ts[1].Label)
	}

	// Ticks follow later appends.
	mustAppend(t, f, []float64{200})
	if want := []float64{0, 50, 100, 150, 200}; !reflect.DeepEqual(tickValues(mustTicks(t, f, 0)), want) {
		t.Errorf("even tick values after append %v, want %v", tickValues(mustTicks(t, f, 0)), want)
	}
}

func TestEvenTicksPrecision(t *testing.T) {
	f := mustNew(t, 1)
	mustAppend(t, f, []float64{0}, []float64{1})
	if err := f.SetEvenTicksPrecision(0, 4, 2); err != nil {
		t.Fatal(err)
	}
	ts := mustTicks(t, f, 0)
	if want := []float64{0, 0.33, 0.67, 1}; !reflect.DeepEqual(tickValues(ts), want) {
		t.Errorf("rounded tick values %v, want %v", tickValues(ts), want)
	}
	if ts[1].Label != "0.33" || ts[3].Label != "1.00" {
		t.Errorf("rounded tick labels %q %q", ts[1].Label, ts[3].Label)
	}
	// Positions are not rounded.
	if !near(ts[1].Position, 1.0/3) {
		t.Errorf("tick position %g, want 1/3", ts[1].Position)
	}
}

func TestEvenTicksInvalid(t *testing.T) {
	f := mustNew(t, 1)
	mustAppend(t, f, []float64{0}, []float64{1})
	if err := f.SetEvenTicks(0, 5); err != nil {
		t.Fatal(err)
	}
	for _, k := range []int{1, 0, -3} {
		if err := f.SetEvenTicks(0, k); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SetEvenTicks(0, %d): got %v, want ErrInvalidArgument", k, err)
		}
	}
	if err := f.SetEvenTicksPrecision(0, 3, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative precision: got %v, want ErrInvalidArgument", err)
	}
	if err := f.SetEvenTicksPrecision(1, 3, -1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("bad axis and precision: got %v, want ErrIndexOutOfRange", err)
	}
	// Failed calls keep the earlier request.
	if n := len(mustTicks(t, f, 0)); n != 5 {
		t.Errorf("got %d ticks, want 5", n)
	}
}

func TestExplicitTicks(t *testing.T) {
	f := mustNew(t, 2)
	mustAppend(t, f, []float64{0, 0}, []float64{10, 10})
	if err := f.SetTicks(0, []float64{0, 2.5, 10, 20}); err != nil {
		t.Fatal(err)
	}
	ts := mustTicks(t, f, 0)
	if want := []float64{0, 0.25, 1, 2}; !reflect.DeepEqual(tickPositions(ts), want) {
		t.Errorf("explicit tick positions %v, want %v", tickPositions(ts), want)
	}
	if ts[1].Label != "2.5" {
		t.Errorf("tick label %q, want \"2.5\"", ts[1].Label)
	}

	// Manual limits move ticks.
	if err := f.SetLimits(0, 0, 5); err != nil {
		t.Fatal(err)
	}
	if want := []float64{0, 0.5, 2, 4}; !reflect.DeepEqual(tickPositions(mustTicks(t, f, 0)), want) {
		t.Errorf("explicit tick positions %v, want %v", tickPositions(mustTicks(t, f, 0)), want)
	}
}

func TestTicksInverted(t *testing.T) {
	f := mustNew(t, 1)
	mustAppend(t, f, []float64{0}, []float64{100})
	if err := f.SetEvenTicks(0, 5); err != nil {
		t.Fatal(err)
	}
	if err := f.InvertAxis(0); err != nil {
		t.Fatal(err)
	}
	ts := mustTicks(t, f, 0)
	if want := []float64{1, 0.75, 0.5, 0.25, 0}; !reflect.DeepEqual(tickPositions(ts), want) {
		t.Errorf("inverted tick positions %v, want %v", tickPositions(ts), want)
	}
	// Tick positions agree with row positions.
	for _, tick := range ts {
		if got := Normalize(tick.Value, 0, 100, true); !near(got, tick.Position) {
			t.Errorf("tick %g at %g, row would be at %g", tick.Value, tick.Position, got)
		}
	}
}

func TestAutoTicks(t *testing.T) {
	f := mustNew(t, 1)
	if ts := mustTicks(t, f, 0); ts != nil {
		t.Errorf("ticks on empty axis: %v", ts)
	}
	mustAppend(t, f, []float64{0}, []float64{100})
	ts := mustTicks(t, f, 0)
	if len(ts) < 2 || len(ts) > AutoTickMax {
		t.Fatalf("got %d automatic ticks: %v", len(ts), ts)
	}
	for i, tick := range ts {
		if tick.Value < 0 || tick.Value > 100 {
			t.Errorf("tick %v outside data", tick)
		}
		if !near(tick.Position, tick.Value/100) {
			t.Errorf("tick %v at wrong position", tick)
		}
		if i > 0 && tick.Value <= ts[i-1].Value {
			t.Errorf("ticks not increasing: %v", ts)
		}
	}

	// ClearTicks returns to automatic mode.
	if err := f.SetTicks(0, []float64{50}); err != nil {
		t.Fatal(err)
	}
	if err := f.ClearTicks(0); err != nil {
		t.Fatal(err)
	}
	if got := mustTicks(t, f, 0); !reflect.DeepEqual(got, ts) {
		t.Errorf("ticks after ClearTicks %v, want %v", got, ts)
	}
}

func TestTicksDegenerate(t *testing.T) {
	f := mustNew(t, 1)
	mustAppend(t, f, []float64{3}, []float64{3})
	for _, set := range []func() error{
		func() error { return f.ClearTicks(0) },
		func() error { return f.SetEvenTicks(0, 5) },
		func() error { return f.SetTicks(0, []float64{1, 2, 3}) },
	} {
		if err := set(); err != nil {
			t.Fatal(err)
		}
		ts := mustTicks(t, f, 0)
		if want := []Tick{{3, 0.5, "3"}}; !reflect.DeepEqual(ts, want) {
			t.Errorf("degenerate ticks %v, want %v", ts, want)
		}
	}
}
