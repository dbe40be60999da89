// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/paxplot/paxplot/colormap"
	"github.com/paxplot/paxplot/pax"
	"github.com/paxplot/paxplot/paxcsv"
)

// buildFigure plots datasets as described by c. Each dataset is
// appended as its own batch, in order.
func buildFigure(c *Config, datasets []*paxcsv.Dataset) (*pax.Figure, error) {
	if len(datasets) == 0 {
		return nil, fmt.Errorf("no inputs")
	}
	cols := c.Columns
	if len(cols) == 0 {
		cols = datasets[0].Columns
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("no numeric columns to plot")
	}
	axis := make(map[string]int, len(cols))
	for i, col := range cols {
		axis[col] = i
	}
	for name := range c.Axes {
		if _, ok := axis[name]; !ok {
			return nil, fmt.Errorf("configured axis %q is not plotted", name)
		}
	}

	cmapName := c.Colormap
	if cmapName == "" {
		cmapName = "viridis"
	}
	cmap, ok := colormap.ByName(cmapName)
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q (have %s)", cmapName, strings.Join(colormap.Names(), ", "))
	}
	clip := pax.ClipNone
	if c.Clip != "" {
		if clip, ok = pax.ParseClipPolicy(c.Clip); !ok {
			return nil, fmt.Errorf("unknown clip policy %q", c.Clip)
		}
	}

	f, err := pax.New(len(cols), pax.WithColormap(cmap), pax.WithClip(clip))
	if err != nil {
		return nil, err
	}
	var legend []string
	for i, d := range datasets {
		sel, err := d.Select(cols)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i+1, err)
		}
		if _, err := f.AppendRows(sel.Rows); err != nil {
			return nil, fmt.Errorf("input %d: %w", i+1, err)
		}
		if c.Legend != "" {
			labels, err := d.Labels(c.Legend)
			if err != nil {
				return nil, fmt.Errorf("input %d: legend: %w", i+1, err)
			}
			legend = append(legend, labels...)
		}
	}

	labels := append([]string(nil), cols...)
	for name, a := range c.Axes {
		if a.Label != "" {
			labels[axis[name]] = a.Label
		}
	}
	if err := f.SetLabels(labels); err != nil {
		return nil, err
	}

	// Apply axis settings in column order so errors are
	// deterministic.
	names := make([]string, 0, len(c.Axes))
	for name := range c.Axes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return axis[names[i]] < axis[names[j]] })
	for _, name := range names {
		if err := applyAxis(f, axis[name], c.Axes[name]); err != nil {
			return nil, fmt.Errorf("axis %q: %w", name, err)
		}
	}

	if c.Color != "" {
		i, ok := axis[c.Color]
		if !ok {
			return nil, fmt.Errorf("color column %q is not plotted", c.Color)
		}
		if err := f.SetColorAxis(i); err != nil {
			return nil, err
		}
		f.SetColorbar(c.Colorbar)
	}
	if legend != nil {
		if err := f.SetLegend(legend); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func applyAxis(f *pax.Figure, i int, a AxisConfig) error {
	if a.Min != nil || a.Max != nil {
		min, max := math.NaN(), math.NaN()
		if a.Min != nil {
			min = *a.Min
		}
		if a.Max != nil {
			max = *a.Max
		}
		if err := f.SetLimits(i, min, max); err != nil {
			return err
		}
	}
	if a.Invert {
		if err := f.InvertAxis(i); err != nil {
			return err
		}
	}
	switch {
	case len(a.Ticks) > 0:
		return f.SetTicks(i, a.Ticks)
	case a.EvenTicks != 0 && a.Precision != nil:
		return f.SetEvenTicksPrecision(i, a.EvenTicks, *a.Precision)
	case a.EvenTicks != 0:
		return f.SetEvenTicks(i, a.EvenTicks)
	}
	return nil
}
