// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paxbench reads Go benchmark results as datasets for
// parallel-coordinates plots.
//
// The input format is specified at:
// https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
//
// Each benchmark result line becomes one row. Every unit that appears
// on every line ("ns/op", "B/op", ...) becomes a numeric column.
// Configuration keys become columns too, numeric if all of their
// values are numbers. The benchmark name is the text column "name".
package paxbench

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/paxplot/paxplot/paxcsv"
)

// result is one benchmark result line.
type result struct {
	name   string
	config map[string]string
	values map[string]float64
}

var configRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// Read parses Go benchmark results from r.
func Read(r io.Reader) (*paxcsv.Dataset, error) {
	var results []result
	var units, keys []string
	seenUnit, seenKey := make(map[string]bool), make(map[string]bool)
	config := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if m := configRe.FindStringSubmatch(line); m != nil {
			config[m[1]] = m[2]
			continue
		}
		res, ok := parseResult(line, config)
		if !ok {
			continue
		}
		for _, u := range orderedKeys(line, res.values) {
			if !seenUnit[u] {
				seenUnit[u] = true
				units = append(units, u)
			}
		}
		for k := range res.config {
			if !seenKey[k] {
				seenKey[k] = true
				keys = append(keys, k)
			}
		}
		results = append(results, res)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no benchmark results")
	}

	sort.Strings(keys)

	// A unit missing from some line leaves an empty field, which
	// makes that column text.
	header := append([]string{"name"}, units...)
	header = append(header, keys...)
	records := make([][]string, len(results))
	for i, res := range results {
		rec := make([]string, 0, len(header))
		rec = append(rec, res.name)
		for _, u := range units {
			if v, ok := res.values[u]; ok {
				rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
			} else {
				rec = append(rec, "")
			}
		}
		for _, k := range keys {
			rec = append(rec, res.config[k])
		}
		records[i] = rec
	}
	return paxcsv.FromRecords(header, records)
}

// ReadFile parses the Go benchmark results in the named file.
func ReadFile(path string) (*paxcsv.Dataset, error) {
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

func parseResult(line string, global map[string]string) (result, bool) {
	f := strings.Fields(line)
	if len(f) < 4 || !strings.HasPrefix(f[0], "Benchmark") {
		return result{}, false
	}
	if f[0] != "Benchmark" {
		next, _ := utf8.DecodeRuneInString(f[0][len("Benchmark"):])
		if !unicode.IsUpper(next) {
			return result{}, false
		}
	}
	if n, err := strconv.Atoi(f[1]); err != nil || n <= 0 {
		return result{}, false
	}

	res := result{
		config: make(map[string]string),
		values: make(map[string]float64),
	}
	for k, v := range global {
		res.config[k] = v
	}

	// Sub-benchmark parts of the form key:value are configuration.
	// A trailing -N is GOMAXPROCS.
	name := strings.TrimPrefix(f[0], "Benchmark")
	if i := strings.LastIndex(name, "-"); i >= 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			res.config["gomaxprocs"] = name[i+1:]
			name = name[:i]
		}
	}
	parts := strings.Split(name, "/")
	res.name = parts[0]
	for _, part := range parts[1:] {
		if i := strings.Index(part, ":"); i >= 0 {
			res.config[part[:i]] = part[i+1:]
		} else {
			res.name += "/" + part
		}
	}

	for i := 2; i+2 <= len(f); i += 2 {
		val, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			continue
		}
		res.values[f[i+1]] = val
	}
	if len(res.values) == 0 {
		return result{}, false
	}
	return res, true
}

// orderedKeys returns the units of values in the order they appear
// on line.
func orderedKeys(line string, values map[string]float64) []string {
	f := strings.Fields(line)
	var out []string
	for i := 3; i < len(f); i += 2 {
		if _, ok := values[f[i]]; ok {
			out = append(out, f[i])
		}
	}
	return out
}
