// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command paxplot draws parallel-coordinates plots of CSV files.
//
// Each input is either a CSV file whose first line names its columns,
// or a file of Go benchmark results, in which each unit and each
// numeric configuration key is a column. Every numeric column becomes
// an axis, unless -cols or the configuration file selects a subset.
// Inputs are added to the plot one after the other, and axes rescale
// to fit all of them.
//
// The plot is written as SVG by default, or as PNG if the output file
// ends in ".png". With -table, paxplot instead prints the normalized
// position of every value.
//
// Plot details such as axis limits, tick placement, and inversion are
// set by a YAML file given with -config. See Config for its format.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/paxplot/paxplot/colormap"
	"github.com/paxplot/paxplot/paxcsv"
	"github.com/paxplot/paxplot/paxgg"
)

func main() {
	log.SetPrefix("paxplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagConfig     = flag.String("config", "", "read plot description from YAML `file`")
		flagFormat     = flag.String("format", "", "read inputs in `format`: csv or bench (default from file extension)")
		flagCols       = flag.String("cols", "", "plot comma-separated `columns` in this order")
		flagColor      = flag.String("color", "", "color lines by `column`")
		flagColormap   = flag.String("colormap", "", "color lines with colormap `name` (default viridis)")
		flagColorbar   = flag.Bool("colorbar", false, "draw a colorbar for the -color column")
		flagLegend     = flag.String("legend", "", "label lines by `column`")
		flagClip       = flag.String("clip", "", "draw values outside axis limits by `policy`: none, clamp, or omit")
		flagTitle      = flag.String("title", "", "plot `title` (gg backend only)")
		flagWidth      = flag.Int("width", 0, "image width in `pixels` (default 200 per axis)")
		flagHeight     = flag.Int("height", 0, "image height in `pixels` (default 400)")
		flagBackend    = flag.String("backend", "", "render with `backend`: svg, png, or gg (default from -o)")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable      = flag.Bool("table", false, "output a table of positions instead of a plot")
		flagView       = flag.String("view", "", "run `command` on the output file; {} is replaced by the file name")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] inputs.csv...\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nColormaps: %s (append _r to reverse)\n", strings.Join(colormap.Names(), ", "))
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *flagView != "" && *flagOut == "" {
		log.Fatal("-view requires -o")
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	// Load the plot description and apply flag overrides.
	config := new(Config)
	if *flagConfig != "" {
		var err error
		if config, err = loadConfig(*flagConfig); err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			config.Format = *flagFormat
		case "cols":
			config.Columns = splitList(*flagCols)
		case "color":
			config.Color = *flagColor
		case "colormap":
			config.Colormap = *flagColormap
		case "colorbar":
			config.Colorbar = *flagColorbar
		case "legend":
			config.Legend = *flagLegend
		case "clip":
			config.Clip = *flagClip
		case "title":
			config.Title = *flagTitle
		case "width":
			config.Width = *flagWidth
		case "height":
			config.Height = *flagHeight
		case "backend":
			config.Backend = *flagBackend
		}
	})

	// Read inputs.
	var datasets []*paxcsv.Dataset
	for _, path := range flag.Args() {
		d, err := readInput(config.Format, path)
		if err != nil {
			log.Fatal(err)
		}
		datasets = append(datasets, d)
	}

	fig, err := buildFigure(config, datasets)
	if err != nil {
		log.Fatal(err)
	}

	backend, err := chooseBackend(config.Backend, *flagOut)
	if err != nil {
		log.Fatal(err)
	}

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
	} else if !*flagTable {
		if err := checkOutput(backend, f); err != nil {
			log.Fatal(err)
		}
	}

	if *flagTable {
		tab, err := paxgg.Table(fig)
		if err != nil {
			log.Fatal(err)
		}
		table.Fprint(f, tab)
	} else {
		r := newRenderer(backend, config)
		fig.Render(r)
		if err := r.Export(f); err != nil {
			log.Fatal(err)
		}
	}
	if f != os.Stdout {
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	}

	if *flagView != "" {
		if err := view(*flagView, *flagOut); err != nil {
			log.Fatal(err)
		}
	}
}

// splitList splits a comma-separated list, dropping empty elements.
func splitList(s string) []string {
	var out []string
	for _, x := range strings.Split(s, ",") {
		if x = strings.TrimSpace(x); x != "" {
			out = append(out, x)
		}
	}
	return out
}
