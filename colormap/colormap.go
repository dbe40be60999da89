// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides named continuous colormaps for coloring
// parallel-coordinates lines.
//
// Every colormap is a go-gg palette.Continuous, so it can be used
// anywhere go-gg expects one.
package colormap

import (
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-gg/palette"
)

// Gradient is a continuous colormap that interpolates between evenly
// spaced colors. Interpolation is done in linear RGB by go-gg's
// palette blending.
type Gradient []color.RGBA

var _ palette.Continuous = Gradient{}

// Map returns the color at x. x is clamped to [0, 1].
func (g Gradient) Map(x float64) color.Color {
	switch {
	case len(g) == 0:
		return color.Transparent
	case len(g) == 1 || x <= 0 || math.IsNaN(x):
		return g[0]
	case x >= 1:
		return g[len(g)-1]
	}
	ip, fr := math.Modf(x * float64(len(g)-1))
	i := int(ip)
	if i >= len(g)-1 {
		return g[len(g)-1]
	} else if fr == 0 {
		return g[i]
	}
	// palette.RGBGradient holds its first segment flat, so blend a
	// to b through a gradient whose first segment is a to a and
	// whose second segment spans [0.5, 1].
	a, b := g[i], g[i+1]
	return palette.RGBGradient{Colors: []color.RGBA{a, a, b}}.Map(0.5 + fr/2)
}

// Reverse returns g with its colors in the opposite order.
func (g Gradient) Reverse() Gradient {
	r := make(Gradient, len(g))
	for i, c := range g {
		r[len(g)-1-i] = c
	}
	return r
}

func rgb(x uint32) color.RGBA {
	return color.RGBA{uint8(x >> 16), uint8(x >> 8), uint8(x), 0xff}
}

func gradient(xs ...uint32) Gradient {
	g := make(Gradient, len(xs))
	for i, x := range xs {
		g[i] = rgb(x)
	}
	return g
}

// Perceptually uniform colormaps, sampled at nine evenly spaced
// points from the matplotlib definitions.
var (
	Viridis = gradient(0x440154, 0x472d7b, 0x3b528b, 0x2c728e, 0x21918c, 0x28ae80, 0x5ec962, 0xaddc30, 0xfde725)
	Plasma  = gradient(0x0d0887, 0x4c02a1, 0x7e03a8, 0xa92395, 0xcc4778, 0xe56b5d, 0xf89540, 0xfdc527, 0xf0f921)
	Inferno = gradient(0x000004, 0x1f0c48, 0x550f6d, 0x88226a, 0xba3655, 0xe35933, 0xf98e09, 0xf9cb35, 0xfcffa4)
	Magma   = gradient(0x000004, 0x1c1044, 0x4f127b, 0x812581, 0xb5367a, 0xe55964, 0xfb8761, 0xfec287, 0xfcfdbf)
	Cividis = gradient(0x00224e, 0x123570, 0x3b496c, 0x575d6d, 0x707173, 0x8a8678, 0xa59c74, 0xc3b369, 0xfee838)
)

// Gray runs from black to white.
var Gray = gradient(0x000000, 0xffffff)

// Blues is ggplot2's default continuous gradient.
var Blues = gradient(0x132b43, 0x56b1f7)

var byName = map[string]Gradient{
	"viridis": Viridis,
	"plasma":  Plasma,
	"inferno": Inferno,
	"magma":   Magma,
	"cividis": Cividis,
	"gray":    Gray,
	"blues":   Blues,
}

// ByName returns the colormap called name. A "_r" suffix reverses
// the colormap, as in matplotlib.
func ByName(name string) (Gradient, bool) {
	if g, ok := byName[name]; ok {
		return g, true
	}
	if n := len(name); n > 2 && name[n-2:] == "_r" {
		if g, ok := byName[name[:n-2]]; ok {
			return g.Reverse(), true
		}
	}
	return nil, false
}

// Names returns the names accepted by ByName, not counting reversed
// variants, in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
