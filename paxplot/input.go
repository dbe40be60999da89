// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/paxplot/paxplot/paxbench"
	"github.com/paxplot/paxplot/paxcsv"
)

// inputFormat returns the named input format, or if name is empty,
// the format implied by path's extension. Files ending in ".bench" or
// ".txt" are Go benchmark results; anything else is CSV.
func inputFormat(name, path string) (string, error) {
	switch name {
	case "csv", "bench":
		return name, nil
	case "":
	default:
		return "", fmt.Errorf("unknown input format %q (have csv, bench)", name)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bench", ".txt":
		return "bench", nil
	}
	return "csv", nil
}

func readInput(format, path string) (*paxcsv.Dataset, error) {
	format, err := inputFormat(format, path)
	if err != nil {
		return nil, err
	}
	if format == "bench" {
		return paxbench.ReadFile(path)
	}
	return paxcsv.ReadFile(path)
}
