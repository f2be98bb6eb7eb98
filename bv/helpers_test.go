// Copyright 2026 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bv

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r3"

	"github.com/akhenakh/broadphase/lane"
)

func iv(lo, hi float64) r1.Interval {
	return r1.Interval{Lo: lo, Hi: hi}
}

// makeMesh returns n random points within a 2×2×2 cube around the origin.
func makeMesh(t testing.TB, r *rand.Rand, n int) *Mesh {
	t.Helper()
	pts := make([]r3.Vector, n)
	for i := range pts {
		pts[i] = r3.Vector{X: r.Float64()*2 - 1, Y: r.Float64()*2 - 1, Z: r.Float64()*2 - 1}
	}
	m, err := NewMesh(pts)
	if err != nil {
		t.Fatalf("NewMesh(%d points) failed: %v", n, err)
	}
	return m
}

// makeObjects scatters n objects over a few meshes in a square of the given
// half-size. Small spreads give many overlaps.
func makeObjects(t testing.TB, r *rand.Rand, n int, spread float64) []Object {
	t.Helper()
	meshes := make([]*Mesh, 5)
	for i := range meshes {
		meshes[i] = makeMesh(t, r, 3+r.Intn(20))
	}
	objs := make([]Object, n)
	for i := range objs {
		objs[i] = Object{
			Mesh: meshes[r.Intn(len(meshes))],
			Position: r3.Vector{
				X: (r.Float64()*2 - 1) * spread,
				Y: (r.Float64()*2 - 1) * spread,
				Z: r.Float64()*2 - 1,
			},
		}
	}
	return objs
}

func makeAABBs(objs []Object, w int) *AABBs {
	a := NewAABBs(len(objs), w)
	for i, o := range objs {
		a.Derive(i, o)
	}
	return a
}

func makeHexPrisms(objs []Object, w int) *HexPrisms {
	h := NewHexPrisms(len(objs), w)
	for i, o := range objs {
		h.Derive(i, o)
	}
	return h
}

// testBackends covers the unrolled widths, an odd loop width and the
// highway width of the running machine.
func testBackends(t testing.TB) []lane.Backend {
	t.Helper()
	out := []lane.Backend{lane.Scalar(), lane.Quad(), lane.Oct()}
	if b, err := lane.Fixed(3); err == nil {
		out = append(out, b)
	} else {
		t.Fatalf("lane.Fixed(3) failed: %v", err)
	}
	h, err := lane.Highway()
	if err != nil {
		t.Fatalf("lane.Highway() failed: %v", err)
	}
	return append(out, h)
}
