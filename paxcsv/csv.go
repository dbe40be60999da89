// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paxcsv reads datasets for parallel-coordinates plots from
// CSV files.
//
// The first record of a file is its header. Columns whose every value
// parses as a number become numeric columns; all others are kept as
// text, for use as legend labels.
package paxcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Dataset is the contents of one CSV file.
type Dataset struct {
	// Columns names the numeric columns, in file order.
	Columns []string

	// Rows holds one value per numeric column for each record.
	Rows [][]float64

	// Text holds the non-numeric columns by name.
	Text map[string][]string

	// Table is the whole file as a go-gg table, with numeric
	// columns coerced to []int or []float64. It is nil if the
	// file has no records after the header.
	Table *table.Table
}

// Read parses a CSV dataset from r. Leading spaces in fields are
// ignored.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no header")
	}
	return FromRecords(records[0], records[1:])
}

// FromRecords builds a dataset from a header and string records, as
// if they had been read from a CSV file. Every record must have one
// field per header column.
func FromRecords(header []string, records [][]string) (*Dataset, error) {
	seen := make(map[string]bool)
	for _, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
	}
	for i, rec := range records {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("record %d has %d fields, want %d", i+1, len(rec), len(header))
		}
	}

	d := &Dataset{Text: make(map[string][]string)}
	if len(records) == 0 {
		d.Columns = header
		return d, nil
	}

	d.Table = table.TableFromStrings(header, records, true)
	var cols [][]float64
	for _, name := range header {
		col := d.Table.MustColumn(name)
		if text, ok := col.([]string); ok {
			d.Text[name] = text
			continue
		}
		var fs []float64
		slice.Convert(&fs, col)
		d.Columns = append(d.Columns, name)
		cols = append(cols, fs)
	}

	d.Rows = make([][]float64, d.Table.Len())
	for i := range d.Rows {
		row := make([]float64, len(cols))
		for j, col := range cols {
			row[j] = col[i]
		}
		d.Rows[i] = row
	}
	return d, nil
}

// ReadFile parses the CSV dataset in the named file.
func ReadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Select returns a dataset holding only the named numeric columns, in
// the given order. Text columns are kept.
func (d *Dataset) Select(names []string) (*Dataset, error) {
	index := make(map[string]int, len(d.Columns))
	for i, name := range d.Columns {
		index[name] = i
	}
	idx := make([]int, len(names))
	for k, name := range names {
		i, ok := index[name]
		if !ok {
			if _, ok := d.Text[name]; ok {
				return nil, fmt.Errorf("column %q is not numeric", name)
			}
			return nil, fmt.Errorf("no column %q", name)
		}
		idx[k] = i
	}

	out := &Dataset{Columns: append([]string(nil), names...), Text: d.Text, Table: d.Table}
	out.Rows = make([][]float64, len(d.Rows))
	for r, row := range d.Rows {
		sel := make([]float64, len(idx))
		for k, i := range idx {
			sel[k] = row[i]
		}
		out.Rows[r] = sel
	}
	return out, nil
}

// Labels returns the values of column name as strings, one per row.
// Numeric columns are formatted with %g.
func (d *Dataset) Labels(name string) ([]string, error) {
	if text, ok := d.Text[name]; ok {
		return text, nil
	}
	for i, col := range d.Columns {
		if col != name {
			continue
		}
		out := make([]string, len(d.Rows))
		for r, row := range d.Rows {
			out[r] = fmt.Sprintf("%g", row[i])
		}
		return out, nil
	}
	return nil, fmt.Errorf("no column %q", name)
}
