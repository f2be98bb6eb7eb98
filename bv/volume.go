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
)

// Box is a single axis-aligned bounding box.
type Box struct {
	X, Y, Z r1.Interval
}

// EmptyBox returns a box that contains no points. It intersects no box with
// a finite bound.
func EmptyBox() Box {
	e := emptyInterval()
	return Box{X: e, Y: e, Z: e}
}

// Interval returns the slab of b along axis x, y or z.
func (b Box) Interval(a Axis) r1.Interval {
	switch a {
	case AxisX:
		return b.X
	case AxisY:
		return b.Y
	case AxisZ:
		return b.Z
	}
	panic(fmt.Sprintf("bv: axis %v is not an AABB axis", a))
}

// Intersects reports whether b and o overlap, testing the horizontal slabs
// before the vertical one.
func (b Box) Intersects(o Box) bool {
	return Overlaps(b.X, o.X) && Overlaps(b.Y, o.Y) && Overlaps(b.Z, o.Z)
}

// IsValid reports whether every slab of b is well formed.
func (b Box) IsValid() bool {
	return wellFormed(b.X) && wellFormed(b.Y) && wellFormed(b.Z)
}

// FootprintArea returns the area of the box projected onto the xy plane.
func (b Box) FootprintArea() float64 {
	if !b.IsValid() {
		return 0
	}
	return b.X.Length() * b.Y.Length()
}

func (b Box) String() string {
	return fmt.Sprintf("[x%v y%v z%v]", b.X, b.Y, b.Z)
}

// Prism is a single hexagonal prism: three horizontal slabs along A = x,
// B = y and C = -(x+y), and a vertical slab Z.
type Prism struct {
	A, B, C, Z r1.Interval
}

// EmptyPrism returns a prism that contains no points. It intersects no prism
// with a finite bound.
func EmptyPrism() Prism {
	e := emptyInterval()
	return Prism{A: e, B: e, C: e, Z: e}
}

// Interval returns the slab of p along axis a, b, c or z.
func (p Prism) Interval(a Axis) r1.Interval {
	switch a {
	case AxisA:
		return p.A
	case AxisB:
		return p.B
	case AxisC:
		return p.C
	case AxisZ:
		return p.Z
	}
	panic(fmt.Sprintf("bv: axis %v is not a HexPrism axis", a))
}

// Intersects reports whether p and o overlap. The hexagon is the
// intersection of three slabs, so p's minimums are tested against o's
// maximums and o's minimums against p's maximums on each of A, B and C,
// followed by the Z slab.
func (p Prism) Intersects(o Prism) bool {
	return p.A.Lo <= o.A.Hi && p.B.Lo <= o.B.Hi && p.C.Lo <= o.C.Hi &&
		o.A.Lo <= p.A.Hi && o.B.Lo <= p.B.Hi && o.C.Lo <= p.C.Hi &&
		Overlaps(p.Z, o.Z)
}

// IsValid reports whether every slab of p is well formed.
func (p Prism) IsValid() bool {
	return wellFormed(p.A) && wellFormed(p.B) && wellFormed(p.C) && wellFormed(p.Z)
}

// Box returns the AABB whose x and y slabs are p's A and B slabs. For
// volumes derived from the same points this is exactly the derived AABB.
func (p Prism) Box() Box {
	return Box{X: p.A, Y: p.B, Z: p.Z}
}

// FootprintArea returns the area of the hexagon cut from the A×B rectangle
// by the C slab. The rectangle loses a right isosceles corner wherever
// x+y leaves [-C.Hi, -C.Lo]. The result is exact when the three slabs are
// the tight bounds of one point set, which keeps each corner inside the
// rectangle.
func (p Prism) FootprintArea() float64 {
	if !p.IsValid() {
		return 0
	}
	wa, wb := p.A.Length(), p.B.Length()
	corner := func(t float64) float64 {
		t = max(0, min(t, wa, wb))
		return t * t / 2
	}
	top := (p.A.Hi + p.B.Hi) + p.C.Lo
	bottom := -p.C.Hi - (p.A.Lo + p.B.Lo)
	return max(0, wa*wb-corner(top)-corner(bottom))
}

func (p Prism) String() string {
	return fmt.Sprintf("[a%v b%v c%v z%v]", p.A, p.B, p.C, p.Z)
}
