// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/paxplot/paxplot/pax"
	"github.com/paxplot/paxplot/paxgg"
	"github.com/paxplot/paxplot/paxpng"
	"github.com/paxplot/paxplot/paxsvg"
	"golang.org/x/crypto/ssh/terminal"
)

var backends = []string{"svg", "png", "gg"}

// chooseBackend returns the named back end, or if name is empty, the
// back end implied by the output file's extension, defaulting to SVG.
func chooseBackend(name, out string) (string, error) {
	if name == "" {
		switch strings.ToLower(filepath.Ext(out)) {
		case ".png":
			return "png", nil
		default:
			return "svg", nil
		}
	}
	for _, b := range backends {
		if name == b {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown backend %q (have %s)", name, strings.Join(backends, ", "))
}

func newRenderer(backend string, c *Config) pax.Renderer {
	switch backend {
	case "png":
		return paxpng.New(c.Width, c.Height)
	case "gg":
		r := paxgg.New(c.Width, c.Height)
		r.Title = c.Title
		return r
	}
	return paxsvg.New(c.Width, c.Height)
}

// checkOutput refuses to write binary output to a terminal.
func checkOutput(backend string, f *os.File) error {
	if backend == "png" && terminal.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("not writing PNG to a terminal; use -o")
	}
	return nil
}

// view runs the viewer command line cmdline on path. cmdline is split
// into words like a shell would. If it contains "{}", that word is
// replaced by path; otherwise path is appended.
func view(cmdline, path string) error {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return fmt.Errorf("bad -view command: %w", err)
	}
	if len(args) == 0 {
		return fmt.Errorf("empty -view command")
	}
	args = viewArgs(args, path)
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func viewArgs(args []string, path string) []string {
	out := make([]string, 0, len(args)+1)
	found := false
	for _, a := range args {
		if a == "{}" {
			a, found = path, true
		}
		out = append(out, a)
	}
	if !found {
		out = append(out, path)
	}
	return out
}
