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

// HexPrism is the query form of a hexagonal prism, broadcast to all lanes.
type HexPrism struct {
	Up   TriangleUp
	Down TriangleDown
	Z    Slab
}

func newHexPrism(w int) *HexPrism {
	buf := make([]float32, 8*w)
	v := func(k int) []float32 { return buf[k*w : (k+1)*w : (k+1)*w] }
	return &HexPrism{
		Up:   TriangleUp{MinA: v(0), MinB: v(1), MinC: v(2)},
		Down: TriangleDown{MaxA: v(3), MaxB: v(4), MaxC: v(5)},
		Z:    Slab{Min: v(6), Max: v(7)},
	}
}

// HexPrismQuery broadcasts p into a W-lane query.
func HexPrismQuery(w int, p Prism) *HexPrism {
	q := newHexPrism(w)
	for l := 0; l < w; l++ {
		setPrism(q.Up, q.Down, q.Z, l, p)
	}
	return q
}

// Prism returns the prism held in lane 0 of q.
func (q *HexPrism) Prism() Prism {
	return prismAt(q.Up, q.Down, q.Z, 0)
}

func setPrism(up TriangleUp, down TriangleDown, z Slab, l int, p Prism) {
	lo, hi := narrow(p.A)
	lane.Set(up.MinA, l, lo)
	lane.Set(down.MaxA, l, hi)
	lo, hi = narrow(p.B)
	lane.Set(up.MinB, l, lo)
	lane.Set(down.MaxB, l, hi)
	lo, hi = narrow(p.C)
	lane.Set(up.MinC, l, lo)
	lane.Set(down.MaxC, l, hi)
	lo, hi = narrow(p.Z)
	z.set(l, lo, hi)
}

func prismAt(up TriangleUp, down TriangleDown, z Slab, l int) Prism {
	return Prism{
		A: widen(lane.Get(up.MinA, l), lane.Get(down.MaxA, l)),
		B: widen(lane.Get(up.MinB, l), lane.Get(down.MaxB, l)),
		C: widen(lane.Get(up.MinC, l), lane.Get(down.MaxC, l)),
		Z: z.Interval(l),
	}
}

// HexPrisms is the world form: the prisms of Len objects, packed W per
// block. Minimums and maximums of the three horizontal axes live in separate
// arrays; each separating-axis pass reads the minimums of one side and the
// maximums of the other.
type HexPrisms struct {
	layout
	up   []float32 // per block: MinA, MinB, MinC
	down []float32 // per block: MaxA, MaxB, MaxC
	z    []float32 // per block: Z.Min, Z.Max
}

// NewHexPrisms allocates room for n prisms in blocks of w lanes. Every lane
// starts out empty and never intersects until derived or set.
func NewHexPrisms(n, w int) *HexPrisms {
	l := newLayout(n, w)
	h := &HexPrisms{
		layout: l,
		up:     make([]float32, 3*w*l.Blocks()),
		down:   make([]float32, 3*w*l.Blocks()),
		z:      make([]float32, 2*w*l.Blocks()),
	}
	for i := range h.up {
		h.up[i] = posInf
	}
	for i := range h.down {
		h.down[i] = negInf
	}
	for block := 0; block < l.Blocks(); block++ {
		h.Slab(block).clear()
	}
	return h
}

// Kind returns KindHexPrism.
func (h *HexPrisms) Kind() Kind { return KindHexPrism }

// Up returns a view of the A, B, C minimums of block.
func (h *HexPrisms) Up(block int) TriangleUp {
	return TriangleUp{
		MinA: h.field(h.up, 3, block, 0),
		MinB: h.field(h.up, 3, block, 1),
		MinC: h.field(h.up, 3, block, 2),
	}
}

// Down returns a view of the A, B, C maximums of block.
func (h *HexPrisms) Down(block int) TriangleDown {
	return TriangleDown{
		MaxA: h.field(h.down, 3, block, 0),
		MaxB: h.field(h.down, 3, block, 1),
		MaxC: h.field(h.down, 3, block, 2),
	}
}

// Slab returns a view of the vertical slab of block.
func (h *HexPrisms) Slab(block int) Slab {
	return Slab{Min: h.field(h.z, 2, block, 0), Max: h.field(h.z, 2, block, 1)}
}

// Set stores p as the bounds of object i, rounding outward to float32.
func (h *HexPrisms) Set(i int, p Prism) {
	block, l := h.locate(i)
	setPrism(h.Up(block), h.Down(block), h.Slab(block), l, p)
}

// Derive computes the prism of o and stores it as object i, replacing any
// earlier bounds.
func (h *HexPrisms) Derive(i int, o Object) {
	block, l := h.locate(i)
	lo, hi := o.extents()
	up, down := h.Up(block), h.Down(block)
	lane.Set(up.MinA, l, lo[0])
	lane.Set(up.MinB, l, lo[1])
	lane.Set(up.MinC, l, lo[2])
	lane.Set(down.MaxA, l, hi[0])
	lane.Set(down.MaxB, l, hi[1])
	lane.Set(down.MaxC, l, hi[2])
	h.Slab(block).set(l, lo[3], hi[3])
}

// Prism returns the stored bounds of object i.
func (h *HexPrisms) Prism(i int) Prism {
	block, l := h.locate(i)
	return prismAt(h.Up(block), h.Down(block), h.Slab(block), l)
}

// Query loads object i and broadcasts its bounds to all lanes of b.
// b must have the world's width.
func (h *HexPrisms) Query(b lane.Backend, i int) *HexPrism {
	h.checkBackend(b)
	block, l := h.locate(i)
	q := newHexPrism(h.w)
	up, down := h.Up(block), h.Down(block)
	b.Broadcast(q.Up.MinA, up.MinA, l)
	b.Broadcast(q.Up.MinB, up.MinB, l)
	b.Broadcast(q.Up.MinC, up.MinC, l)
	b.Broadcast(q.Down.MaxA, down.MaxA, l)
	b.Broadcast(q.Down.MaxB, down.MaxB, l)
	b.Broadcast(q.Down.MaxC, down.MaxC, l)
	q.Z.broadcast(b, h.Slab(block), l)
	return q
}

// Stage evaluates one group of half-spaces of q against block.
func (h *HexPrisms) Stage(b lane.Backend, s Stage, block int, q *HexPrism) lane.Mask {
	switch s {
	case StageUpDown:
		return triangles(b, h.Up(block), q.Down)
	case StageDownUp:
		return triangles(b, q.Up, h.Down(block))
	case StageVertical:
		return h.Slab(block).overlap(b, q.Z)
	}
	panic(fmt.Sprintf("bv: stage %v is not a HexPrism stage", s))
}

// Intersects tests q against the W prisms of block: the stored minimums
// against the query maximums first, and the remaining four half-spaces only
// if some lane survived. Padding lanes are never set.
func (h *HexPrisms) Intersects(b lane.Backend, block int, q *HexPrism) lane.Mask {
	m := b.And(lane.Full(h.live(block)), triangles(b, h.Up(block), q.Down))
	if b.Bits(m) == 0 {
		return 0
	}
	m = b.And(m, triangles(b, q.Up, h.Down(block)))
	return b.And(m, h.Slab(block).overlap(b, q.Z))
}

// Validate returns an ErrMalformedInterval error for the first object whose
// prism is malformed. Objects that were never derived or set are malformed.
func (h *HexPrisms) Validate() error {
	for block := 0; block < h.Blocks(); block++ {
		if err := h.validateBlock(block); err != nil {
			return err
		}
	}
	return nil
}

func (h *HexPrisms) validateBlock(block int) error {
	for l := 0; l < h.live(block); l++ {
		i := block*h.w + l
		if err := validPrism(i, h.Prism(i)); err != nil {
			return err
		}
	}
	return nil
}

func (h *HexPrisms) validateQuery(q *HexPrism) error {
	for l := 0; l < h.w; l++ {
		if err := validPrism(-1, prismAt(q.Up, q.Down, q.Z, l)); err != nil {
			return err
		}
	}
	return nil
}

func validPrism(i int, p Prism) error {
	for k, iv := range p.intervals() {
		if !wellFormed(iv) {
			return malformed(i, prismAxes[k], iv)
		}
	}
	return nil
}
