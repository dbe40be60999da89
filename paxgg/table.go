// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paxgg

import (
	"github.com/aclements/go-gg/table"
	"github.com/paxplot/paxplot/pax"
)

// Table returns one table row per figure row and axis, with columns
// "row", "axis", "label", "value", and "position". Positions have the
// figure's clip policy applied.
func Table(f *pax.Figure) (*table.Table, error) {
	n := f.Len() * f.Axes()
	rows, axes := make([]int, 0, n), make([]int, 0, n)
	labels := make([]string, 0, n)
	values, positions := make([]float64, 0, n), make([]float64, 0, n)

	ps := make([][]pax.RowPosition, f.Axes())
	for i := range ps {
		var err error
		if ps[i], err = f.AxisPositions(i); err != nil {
			return nil, err
		}
	}
	for id := 0; id < f.Len(); id++ {
		row, err := f.Row(id)
		if err != nil {
			return nil, err
		}
		for i, v := range row {
			label, _ := f.Label(i)
			rows = append(rows, id)
			axes = append(axes, i)
			labels = append(labels, label)
			values = append(values, v)
			positions = append(positions, ps[i][id].Position)
		}
	}
	return new(table.Builder).
		Add("row", rows).
		Add("axis", axes).
		Add("label", labels).
		Add("value", values).
		Add("position", positions).
		Done(), nil
}
