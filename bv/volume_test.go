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
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r1"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		a, b r1.Interval
		want bool
	}{
		{iv(0, 1), iv(0.5, 1.5), true},
		{iv(0, 1), iv(1, 2), true}, // touching counts
		{iv(0, 1), iv(2, 3), false},
		{iv(0, 10), iv(2, 3), true},
		{iv(0, 0), iv(0, 0), true},
		{iv(-1, -0.5), iv(-0.25, 4), false},
	}
	for _, test := range tests {
		if got := Overlaps(test.a, test.b); got != test.want {
			t.Errorf("Overlaps(%v, %v) = %v, want %v", test.a, test.b, got, test.want)
		}
		if got := Overlaps(test.b, test.a); got != test.want {
			t.Errorf("Overlaps(%v, %v) = %v, want %v", test.b, test.a, got, test.want)
		}
		if got := test.a.Intersects(test.b); got != test.want {
			t.Errorf("%v.Intersects(%v) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestEmptyVolumesNeverIntersect(t *testing.T) {
	box := Box{X: iv(0, 1), Y: iv(0, 1), Z: iv(0, 1)}
	if EmptyBox().Intersects(box) || box.Intersects(EmptyBox()) {
		t.Errorf("empty box intersects %v", box)
	}
	if EmptyBox().IsValid() {
		t.Errorf("EmptyBox().IsValid() = true, want false")
	}
	p := Prism{A: iv(0, 1), B: iv(0, 1), C: iv(-2, 0), Z: iv(0, 1)}
	if EmptyPrism().Intersects(p) || p.Intersects(EmptyPrism()) {
		t.Errorf("empty prism intersects %v", p)
	}
	for _, o := range []Box{box, EmptyBox(), {X: iv(math.Inf(-1), math.Inf(1)), Y: iv(0, 1), Z: iv(0, 1)}} {
		if EmptyBox().Intersects(o) {
			t.Errorf("EmptyBox().Intersects(%v) = true, want false", o)
		}
	}
	nan := math.NaN()
	if (Box{X: iv(nan, 1), Y: iv(0, 1), Z: iv(0, 1)}).IsValid() {
		t.Errorf("box with NaN bound is valid")
	}
}

func TestIntersectsSymmetric(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	objs := makeObjects(t, r, 200, 4)
	for i := 0; i < len(objs); i++ {
		bi, pi := BoxOf(objs[i]), PrismOf(objs[i])
		for j := i; j < len(objs); j++ {
			bj, pj := BoxOf(objs[j]), PrismOf(objs[j])
			if bi.Intersects(bj) != bj.Intersects(bi) {
				t.Fatalf("Box.Intersects not symmetric for %v and %v", bi, bj)
			}
			if pi.Intersects(pj) != pj.Intersects(pi) {
				t.Fatalf("Prism.Intersects not symmetric for %v and %v", pi, pj)
			}
		}
	}
}

func TestPrismHitImpliesBoxHit(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	objs := makeObjects(t, r, 300, 5)
	prismHits, boxHits := 0, 0
	for i := range objs {
		for j := range objs {
			p := PrismOf(objs[i]).Intersects(PrismOf(objs[j]))
			b := BoxOf(objs[i]).Intersects(BoxOf(objs[j]))
			if p && !b {
				t.Fatalf("objects %d and %d: prisms intersect but boxes do not", i, j)
			}
			if p {
				prismHits++
			}
			if b {
				boxHits++
			}
		}
	}
	if prismHits > boxHits {
		t.Errorf("prism hits = %d, box hits = %d, want prism <= box", prismHits, boxHits)
	}
}

func TestPrismTighterThanBox(t *testing.T) {
	// Two right triangles facing each other across the x+y diagonal of the
	// unit square: the boxes overlap, the C slabs do not.
	p := Prism{A: iv(0, 1), B: iv(0, 1), C: iv(-1, 0), Z: iv(0, 1)}
	q := Prism{A: iv(0.6, 1), B: iv(0.6, 1), C: iv(-2, -1.6), Z: iv(0, 1)}
	if !p.Box().Intersects(q.Box()) {
		t.Errorf("%v.Intersects(%v) = false, want true", p.Box(), q.Box())
	}
	if p.Intersects(q) {
		t.Errorf("%v.Intersects(%v) = true, want false", p, q)
	}

	// Touching C slabs still intersect.
	q.C = iv(-2, -1)
	if !p.Intersects(q) {
		t.Errorf("%v.Intersects(%v) = false, want true", p, q)
	}
}

func TestFootprintArea(t *testing.T) {
	tests := []struct {
		p    Prism
		want float64
	}{
		// Unit square, C slab does not cut it.
		{Prism{A: iv(0, 1), B: iv(0, 1), C: iv(-2, 0), Z: iv(0, 1)}, 1},
		// Both corners cut at x+y in [0.5, 1.5]: 1 - 2 * 0.125.
		{Prism{A: iv(0, 1), B: iv(0, 1), C: iv(-1.5, -0.5), Z: iv(0, 1)}, 0.75},
		// Regular hexagon-like cut of a 2×2 square centered at the origin.
		{Prism{A: iv(-1, 1), B: iv(-1, 1), C: iv(-1, 1), Z: iv(0, 1)}, 3},
		{EmptyPrism(), 0},
	}
	for _, test := range tests {
		if got := test.p.FootprintArea(); math.Abs(got-test.want) > 1e-12 {
			t.Errorf("%v.FootprintArea() = %v, want %v", test.p, got, test.want)
		}
		if got, box := test.p.FootprintArea(), test.p.Box().FootprintArea(); got > box {
			t.Errorf("%v.FootprintArea() = %v, larger than its box's %v", test.p, got, box)
		}
	}
}

func TestInterval(t *testing.T) {
	b := Box{X: iv(0, 1), Y: iv(2, 3), Z: iv(4, 5)}
	if got := b.Interval(AxisY); got != iv(2, 3) {
		t.Errorf("%v.Interval(y) = %v, want [2, 3]", b, got)
	}
	p := Prism{A: iv(0, 1), B: iv(2, 3), C: iv(-4, -2), Z: iv(4, 5)}
	if got := p.Interval(AxisC); got != iv(-4, -2) {
		t.Errorf("%v.Interval(c) = %v, want [-4, -2]", p, got)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Box.Interval(c) did not panic")
		}
	}()
	b.Interval(AxisC)
}
