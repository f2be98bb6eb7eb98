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
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
)

func TestNewMeshEmpty(t *testing.T) {
	if _, err := NewMesh(nil); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("NewMesh(nil) error = %v, want %v", err, ErrEmptyMesh)
	}
}

func TestMeshPoint(t *testing.T) {
	pts := []r3.Vector{{X: 1, Y: 2, Z: 3}, {X: -0.5, Y: 0.25, Z: 8}}
	m, err := NewMesh(pts)
	if err != nil {
		t.Fatalf("NewMesh failed: %v", err)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
	for i, p := range pts {
		if got := m.Point(i); got != p {
			t.Errorf("Point(%d) = %v, want %v", i, got, p)
		}
	}
}

func TestProjectExtentsMatchesScalarFold(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	// Sizes around the vector width exercise full vectors and masked tails.
	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 33, 50, 100} {
		m := makeMesh(t, r, n)
		for iter := 0; iter < 5; iter++ {
			o := Object{Mesh: m, Position: r3.Vector{X: r.Float64()*2000 - 1000, Y: r.Float64()*2000 - 1000, Z: r.Float64()*2 - 1}}
			if diff := cmp.Diff(ScalarPrismOf(o), PrismOf(o)); diff != "" {
				t.Errorf("n=%d: PrismOf mismatch (-scalar +vector):\n%s", n, diff)
			}
			if diff := cmp.Diff(ScalarBoxOf(o), BoxOf(o)); diff != "" {
				t.Errorf("n=%d: BoxOf mismatch (-scalar +vector):\n%s", n, diff)
			}
		}
	}
}

func TestExtentsSinglePoint(t *testing.T) {
	m, err := NewMesh([]r3.Vector{{X: 1, Y: 2, Z: 3}})
	if err != nil {
		t.Fatalf("NewMesh failed: %v", err)
	}
	got := PrismOf(Object{Mesh: m, Position: r3.Vector{X: 10, Y: 20, Z: 30}})
	want := Prism{A: iv(11, 11), B: iv(22, 22), C: iv(-33, -33), Z: iv(33, 33)}
	if got != want {
		t.Errorf("PrismOf(single point) = %v, want %v", got, want)
	}
	if !got.IsValid() {
		t.Errorf("%v.IsValid() = false, want true", got)
	}
}

func TestExtentsContainEveryPoint(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	m := makeMesh(t, r, 37)
	o := Object{Mesh: m, Position: r3.Vector{X: 3, Y: -2, Z: 0.5}}
	p := PrismOf(o)
	for i := 0; i < m.Len(); i++ {
		pt := m.Point(i)
		x := float32(pt.X) + 3
		y := float32(pt.Y) - 2
		z := float32(pt.Z) + 0.5
		for _, c := range []struct {
			axis Axis
			v    float32
		}{{AxisA, x}, {AxisB, y}, {AxisC, -(x + y)}, {AxisZ, z}} {
			if !p.Interval(c.axis).Contains(float64(c.v)) {
				t.Errorf("point %d: %v axis value %v outside %v", i, c.axis, c.v, p.Interval(c.axis))
			}
		}
	}
}

func TestHexagonTighterForDiagonalPlank(t *testing.T) {
	// A thin rectangle laid along the x = -y diagonal keeps x+y, and with it
	// the C projection, nearly constant while spanning wide x and y ranges.
	var pts []r3.Vector
	s := math.Sqrt2 / 2
	for i := 0; i <= 20; i++ {
		u := float64(i)/10 - 1 // along the plank, [-1, 1]
		for _, v := range []float64{-0.05, 0.05} {
			pts = append(pts, r3.Vector{X: u*s + v*s, Y: -u*s + v*s, Z: 0})
		}
	}
	m, err := NewMesh(pts)
	if err != nil {
		t.Fatalf("NewMesh failed: %v", err)
	}
	o := Object{Mesh: m}
	box, prism := BoxOf(o), PrismOf(o)

	if got, limit := prism.C.Length(), box.X.Length()+box.Y.Length(); got >= limit/4 {
		t.Errorf("C width = %v, want well below the box's implied x+y range %v", got, limit)
	}
	if a, b := box.FootprintArea(), prism.FootprintArea(); !(b < a) {
		t.Errorf("hexagon footprint %v not smaller than box footprint %v", b, a)
	}
}

func TestObjectWithoutMeshPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("BoxOf(Object{}) did not panic")
		}
	}()
	BoxOf(Object{})
}
