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
	"fmt"

	"github.com/golang/geo/r1"

	"github.com/akhenakh/broadphase/lane"
)

// Slab is W intervals on one axis, packed as a lane-vector of minimums and a
// lane-vector of maximums.
type Slab struct {
	Min, Max []float32
}

// Interval returns the interval stored in lane l.
func (s Slab) Interval(l int) r1.Interval {
	return widen(lane.Get(s.Min, l), lane.Get(s.Max, l))
}

func (s Slab) set(l int, lo, hi float32) {
	lane.Set(s.Min, l, lo)
	lane.Set(s.Max, l, hi)
}

// clear fills every lane with the empty interval (+Inf, -Inf), which fails
// both half-space tests against any query.
func (s Slab) clear() {
	for l := range s.Min {
		s.Min[l], s.Max[l] = posInf, negInf
	}
}

func (s Slab) broadcast(b lane.Backend, src Slab, l int) {
	b.Broadcast(s.Min, src.Min, l)
	b.Broadcast(s.Max, src.Max, l)
}

// overlap tests the W intervals of s against the W intervals of o.
func (s Slab) overlap(b lane.Backend, o Slab) lane.Mask {
	m := b.LessEqual(o.Min, s.Max)
	return b.And(m, b.LessEqual(s.Min, o.Max))
}

// TwoSlab is the horizontal footprint of W AABBs.
type TwoSlab struct {
	X, Y Slab
}

// TriangleUp holds the A, B and C minimums of W HexPrisms. Its three
// half-spaces bound an upward-pointing triangle.
type TriangleUp struct {
	MinA, MinB, MinC []float32
}

// TriangleDown holds the A, B and C maximums of W HexPrisms, bounding a
// downward-pointing triangle.
type TriangleDown struct {
	MaxA, MaxB, MaxC []float32
}

// triangles returns the lanes where up's triangle and down's triangle
// overlap: MinA <= MaxA, MinB <= MaxB and MinC <= MaxC.
func triangles(b lane.Backend, up TriangleUp, down TriangleDown) lane.Mask {
	m := b.LessEqual(up.MinA, down.MaxA)
	m = b.And(m, b.LessEqual(up.MinB, down.MaxB))
	return b.And(m, b.LessEqual(up.MinC, down.MaxC))
}

// layout maps dense object indices onto blocks of W lanes.
type layout struct {
	n, w int
}

func newLayout(n, w int) layout {
	if w < 1 || w > lane.MaxWidth {
		panic(fmt.Sprintf("bv: lane width %d out of range [1, %d]", w, lane.MaxWidth))
	}
	if n < 0 {
		panic(fmt.Sprintf("bv: negative object count %d", n))
	}
	return layout{n: n, w: w}
}

// Len returns the number of objects.
func (l layout) Len() int { return l.n }

// Width returns the lane width W.
func (l layout) Width() int { return l.w }

// Blocks returns the number of W-lane blocks holding Len objects.
func (l layout) Blocks() int { return (l.n + l.w - 1) / l.w }

// locate returns the block and lane of object i.
func (l layout) locate(i int) (block, ln int) {
	if i < 0 || i >= l.n {
		panic(fmt.Sprintf("bv: object index %d out of range [0, %d)", i, l.n))
	}
	return i / l.w, i % l.w
}

// live returns the number of lanes of block that hold objects.
func (l layout) live(block int) int {
	return min(l.w, l.n-block*l.w)
}

// field returns the f-th lane-vector of a block whose aggregate has k
// lane-vectors.
func (l layout) field(data []float32, k, block, f int) []float32 {
	off := (block*k + f) * l.w
	return data[off : off+l.w : off+l.w]
}

func (l layout) checkBackend(b lane.Backend) {
	if b.Width() != l.w {
		panic(fmt.Errorf("%w: backend %s has %d lanes, world has %d", ErrWidthMismatch, b.Name(), b.Width(), l.w))
	}
}

func malformed(i int, a Axis, iv r1.Interval) error {
	return fmt.Errorf("%w: object %d axis %v %v", ErrMalformedInterval, i, a, iv)
}
