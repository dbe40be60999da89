// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a plot description. It is normally read from a YAML file
// given by -config, and individual settings can be overridden by
// flags.
//
// An example:
//
//	columns: [lr, layers, loss]
//	color: loss
//	colormap: viridis
//	colorbar: true
//	legend: name
//	axes:
//	  lr:
//	    label: learning rate
//	    invert: true
//	  loss:
//	    min: 0
//	    even_ticks: 5
//	    precision: 2
type Config struct {
	// Format is the input format, "csv" or "bench". If empty, it
	// is chosen by file extension.
	Format string `yaml:"format"`

	// Columns selects and orders the plotted columns. If empty,
	// every numeric column of the first input is plotted.
	Columns []string `yaml:"columns"`

	// Axes configures individual axes by column name.
	Axes map[string]AxisConfig `yaml:"axes"`

	// Color names the column that colors each line.
	Color    string `yaml:"color"`
	Colormap string `yaml:"colormap"`
	Colorbar bool   `yaml:"colorbar"`

	// Legend names the column that labels each line.
	Legend string `yaml:"legend"`

	// Clip is "none", "clamp", or "omit".
	Clip string `yaml:"clip"`

	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Backend string `yaml:"backend"`
}

// AxisConfig configures one axis.
type AxisConfig struct {
	Label string `yaml:"label"`

	// Min and Max are manual limits. Either may be omitted.
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`

	Invert bool `yaml:"invert"`

	// Ticks places ticks at explicit values. It takes precedence
	// over EvenTicks.
	Ticks []float64 `yaml:"ticks"`

	// EvenTicks places this many evenly spaced ticks, rounded to
	// Precision decimals if Precision is set.
	EvenTicks int  `yaml:"even_ticks"`
	Precision *int `yaml:"precision"`
}

// parseConfig decodes a YAML plot description. Unknown keys are
// errors.
func parseConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Config
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, err
	}
	return &c, nil
}

func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := parseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for name, a := range c.Axes {
		if len(a.Ticks) > 0 && a.EvenTicks != 0 {
			return nil, fmt.Errorf("%s: axis %q has both ticks and even_ticks", path, name)
		}
	}
	return c, nil
}
