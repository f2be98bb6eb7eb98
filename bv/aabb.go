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

	"github.com/akhenakh/broadphase/lane"
)

// AABB is the query form of an axis-aligned box: every lane of every
// lane-vector holds the same bound, so it can be compared with a whole
// block of stored boxes at once.
type AABB struct {
	XY TwoSlab
	Z  Slab
}

func newAABB(w int) *AABB {
	buf := make([]float32, 6*w)
	v := func(k int) []float32 { return buf[k*w : (k+1)*w : (k+1)*w] }
	return &AABB{
		XY: TwoSlab{X: Slab{Min: v(0), Max: v(1)}, Y: Slab{Min: v(2), Max: v(3)}},
		Z:  Slab{Min: v(4), Max: v(5)},
	}
}

// AABBQuery broadcasts box into a W-lane query.
func AABBQuery(w int, box Box) *AABB {
	q := newAABB(w)
	for l := 0; l < w; l++ {
		q.set(l, box)
	}
	return q
}

func (q *AABB) set(l int, box Box) {
	lo, hi := narrow(box.X)
	q.XY.X.set(l, lo, hi)
	lo, hi = narrow(box.Y)
	q.XY.Y.set(l, lo, hi)
	lo, hi = narrow(box.Z)
	q.Z.set(l, lo, hi)
}

// Box returns the box held in lane 0 of q.
func (q *AABB) Box() Box {
	return Box{X: q.XY.X.Interval(0), Y: q.XY.Y.Interval(0), Z: q.Z.Interval(0)}
}

// AABBs is the world form: the boxes of Len objects, packed W per block.
// The horizontal slabs and the vertical slab are kept in separate arrays so
// the x/y rejection pass touches only the xy array.
type AABBs struct {
	layout
	xy []float32 // per block: X.Min, X.Max, Y.Min, Y.Max
	z  []float32 // per block: Z.Min, Z.Max
}

// NewAABBs allocates room for n boxes in blocks of w lanes. Every lane starts
// out empty and never intersects until derived or set.
func NewAABBs(n, w int) *AABBs {
	l := newLayout(n, w)
	a := &AABBs{
		layout: l,
		xy:     make([]float32, 4*w*l.Blocks()),
		z:      make([]float32, 2*w*l.Blocks()),
	}
	for block := 0; block < l.Blocks(); block++ {
		xy := a.TwoSlab(block)
		xy.X.clear()
		xy.Y.clear()
		a.Slab(block).clear()
	}
	return a
}

// Kind returns KindAABB.
func (a *AABBs) Kind() Kind { return KindAABB }

// TwoSlab returns a view of the horizontal slabs of block.
func (a *AABBs) TwoSlab(block int) TwoSlab {
	return TwoSlab{
		X: Slab{Min: a.field(a.xy, 4, block, 0), Max: a.field(a.xy, 4, block, 1)},
		Y: Slab{Min: a.field(a.xy, 4, block, 2), Max: a.field(a.xy, 4, block, 3)},
	}
}

// Slab returns a view of the vertical slab of block.
func (a *AABBs) Slab(block int) Slab {
	return Slab{Min: a.field(a.z, 2, block, 0), Max: a.field(a.z, 2, block, 1)}
}

// Set stores box as the bounds of object i, rounding outward to float32.
func (a *AABBs) Set(i int, box Box) {
	block, l := a.locate(i)
	xy, z := a.TwoSlab(block), a.Slab(block)
	lo, hi := narrow(box.X)
	xy.X.set(l, lo, hi)
	lo, hi = narrow(box.Y)
	xy.Y.set(l, lo, hi)
	lo, hi = narrow(box.Z)
	z.set(l, lo, hi)
}

// Derive computes the box of o and stores it as object i, replacing any
// earlier bounds.
func (a *AABBs) Derive(i int, o Object) {
	block, l := a.locate(i)
	lo, hi := o.extents()
	xy, z := a.TwoSlab(block), a.Slab(block)
	xy.X.set(l, lo[0], hi[0])
	xy.Y.set(l, lo[1], hi[1])
	z.set(l, lo[3], hi[3])
}

// Box returns the stored bounds of object i.
func (a *AABBs) Box(i int) Box {
	block, l := a.locate(i)
	xy, z := a.TwoSlab(block), a.Slab(block)
	return Box{X: xy.X.Interval(l), Y: xy.Y.Interval(l), Z: z.Interval(l)}
}

// Query loads object i and broadcasts its bounds to all lanes of b.
// b must have the world's width.
func (a *AABBs) Query(b lane.Backend, i int) *AABB {
	a.checkBackend(b)
	block, l := a.locate(i)
	q := newAABB(a.w)
	xy, z := a.TwoSlab(block), a.Slab(block)
	q.XY.X.broadcast(b, xy.X, l)
	q.XY.Y.broadcast(b, xy.Y, l)
	q.Z.broadcast(b, z, l)
	return q
}

// Stage evaluates one group of half-spaces of q against block.
func (a *AABBs) Stage(b lane.Backend, s Stage, block int, q *AABB) lane.Mask {
	switch s {
	case StageHorizontal:
		xy := a.TwoSlab(block)
		m := xy.X.overlap(b, q.XY.X)
		return b.And(m, xy.Y.overlap(b, q.XY.Y))
	case StageVertical:
		return a.Slab(block).overlap(b, q.Z)
	}
	panic(fmt.Sprintf("bv: stage %v is not an AABB stage", s))
}

// Intersects tests q against the W boxes of block: X and Y first, and Z
// only if some lane survived. Padding lanes are never set.
func (a *AABBs) Intersects(b lane.Backend, block int, q *AABB) lane.Mask {
	xy := a.TwoSlab(block)
	m := b.And(lane.Full(a.live(block)), xy.X.overlap(b, q.XY.X))
	m = b.And(m, xy.Y.overlap(b, q.XY.Y))
	if b.Bits(m) == 0 {
		return 0
	}
	return b.And(m, a.Slab(block).overlap(b, q.Z))
}

// Validate returns an ErrMalformedInterval error for the first object whose
// box is malformed. Objects that were never derived or set are malformed.
func (a *AABBs) Validate() error {
	for block := 0; block < a.Blocks(); block++ {
		if err := a.validateBlock(block); err != nil {
			return err
		}
	}
	return nil
}

func (a *AABBs) validateBlock(block int) error {
	for l := 0; l < a.live(block); l++ {
		i := block*a.w + l
		if err := validBox(i, a.Box(i)); err != nil {
			return err
		}
	}
	return nil
}

func (a *AABBs) validateQuery(q *AABB) error {
	for l := 0; l < a.w; l++ {
		box := Box{X: q.XY.X.Interval(l), Y: q.XY.Y.Interval(l), Z: q.Z.Interval(l)}
		if err := validBox(-1, box); err != nil {
			return err
		}
	}
	return nil
}

func validBox(i int, box Box) error {
	for k, iv := range box.intervals() {
		if !wellFormed(iv) {
			return malformed(i, boxAxes[k], iv)
		}
	}
	return nil
}
