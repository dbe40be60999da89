// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"reflect"
	"testing"

	"github.com/paxplot/paxplot/paxgg"
	"github.com/paxplot/paxplot/paxpng"
	"github.com/paxplot/paxplot/paxsvg"
)

func TestChooseBackend(t *testing.T) {
	for _, test := range []struct {
		name, out, want string
	}{
		{"", "", "svg"},
		{"", "plot.svg", "svg"},
		{"", "plot.PNG", "png"},
		{"gg", "plot.png", "gg"},
		{"png", "", "png"},
	} {
		got, err := chooseBackend(test.name, test.out)
		if err != nil || got != test.want {
			t.Errorf("chooseBackend(%q, %q) = %q, %v, want %q", test.name, test.out, got, err, test.want)
		}
	}
	if _, err := chooseBackend("pdf", ""); err == nil {
		t.Errorf("chooseBackend(pdf) succeeded")
	}
}

func TestNewRenderer(t *testing.T) {
	c := &Config{Title: "t"}
	if _, ok := newRenderer("svg", c).(*paxsvg.Renderer); !ok {
		t.Errorf("svg backend is not paxsvg")
	}
	if _, ok := newRenderer("png", c).(*paxpng.Renderer); !ok {
		t.Errorf("png backend is not paxpng")
	}
	if r, ok := newRenderer("gg", c).(*paxgg.Renderer); !ok || r.Title != "t" {
		t.Errorf("gg backend is not paxgg with title")
	}
}

func TestViewArgs(t *testing.T) {
	for _, test := range []struct {
		args, want []string
	}{
		{[]string{"eog"}, []string{"eog", "out.png"}},
		{[]string{"open", "-a", "Preview"}, []string{"open", "-a", "Preview", "out.png"}},
		{[]string{"sh", "-c", "x", "{}", "y"}, []string{"sh", "-c", "x", "out.png", "y"}},
	} {
		if got := viewArgs(test.args, "out.png"); !reflect.DeepEqual(got, test.want) {
			t.Errorf("viewArgs(%q) = %q, want %q", test.args, got, test.want)
		}
	}
}

func TestSplitList(t *testing.T) {
	if got, want := splitList(" a, b,,c "), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("splitList = %q, want %q", got, want)
	}
	if got := splitList(""); got != nil {
		t.Errorf("splitList(\"\") = %q", got)
	}
}
