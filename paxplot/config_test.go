// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const testConfig = `
columns: [lr, layers, loss]
color: loss
colormap: plasma
colorbar: true
legend: name
clip: clamp
width: 900
axes:
  lr:
    label: learning rate
    invert: true
  loss:
    min: 0
    even_ticks: 5
    precision: 2
`

func TestParseConfig(t *testing.T) {
	c, err := parseConfig(strings.NewReader(testConfig))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"lr", "layers", "loss"}; !reflect.DeepEqual(c.Columns, want) {
		t.Errorf("Columns = %v, want %v", c.Columns, want)
	}
	if c.Color != "loss" || c.Colormap != "plasma" || !c.Colorbar || c.Legend != "name" || c.Clip != "clamp" || c.Width != 900 {
		t.Errorf("bad top-level settings: %+v", c)
	}
	lr := c.Axes["lr"]
	if lr.Label != "learning rate" || !lr.Invert || lr.Min != nil {
		t.Errorf("lr axis: %+v", lr)
	}
	loss := c.Axes["loss"]
	if loss.Min == nil || *loss.Min != 0 || loss.Max != nil {
		t.Errorf("loss limits: %v %v", loss.Min, loss.Max)
	}
	if loss.EvenTicks != 5 || loss.Precision == nil || *loss.Precision != 2 {
		t.Errorf("loss ticks: %+v", loss)
	}
}

func TestParseConfigEmpty(t *testing.T) {
	c, err := parseConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c, &Config{}) {
		t.Errorf("empty config parsed as %+v", c)
	}
}

func TestParseConfigUnknown(t *testing.T) {
	if _, err := parseConfig(strings.NewReader("colour: loss\n")); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte(testConfig), 0666); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(good); err != nil {
		t.Errorf("loadConfig: %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("axes:\n  x:\n    ticks: [1, 2]\n    even_ticks: 3\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(bad); err == nil || !strings.Contains(err.Error(), "even_ticks") {
		t.Errorf("conflicting ticks: %v", err)
	}
}
