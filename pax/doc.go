// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pax computes the geometry of parallel-coordinates plots.
//
// A Figure holds a fixed number of axes and an append-only store of
// rows. Each row is drawn as a polyline crossing every axis; its
// vertical position on axis i is the row's i'th value normalized
// against that axis's effective bounds, so that the bottom of the axis
// is 0 and the top is 1.
//
// Normalization is always global. Whenever rows are appended, or an
// axis's limits or direction change, the figure recomputes the
// position of every stored row from its raw values. Rows drawn by an
// earlier call therefore stay consistent with rows added later: a
// figure never contains a row positioned against stale bounds.
//
// Figure does not draw anything itself. Render drives a Renderer,
// which is the narrow capability a drawing back end must provide, and
// line colors come from a Colormap supplied with WithColormap.
//
// A Figure must not be used concurrently from multiple goroutines.
package pax
