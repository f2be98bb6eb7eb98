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

import "github.com/golang/geo/r1"

// extents runs the vector reduction over o's mesh in float32, the precision
// the worlds store.
func (o Object) extents() (lo, hi [4]float32) {
	px, py, pz := o.position()
	m := o.Mesh
	return BaseProjectExtents(px, py, pz, m.xs, m.ys, m.zs)
}

// BoxOf derives the AABB of o.
func BoxOf(o Object) Box {
	lo, hi := o.extents()
	return Box{
		X: widen(lo[0], hi[0]),
		Y: widen(lo[1], hi[1]),
		Z: widen(lo[3], hi[3]),
	}
}

// PrismOf derives the HexPrism of o.
func PrismOf(o Object) Prism {
	lo, hi := o.extents()
	return Prism{
		A: widen(lo[0], hi[0]),
		B: widen(lo[1], hi[1]),
		C: widen(lo[2], hi[2]),
		Z: widen(lo[3], hi[3]),
	}
}

// ScalarPrismOf derives the HexPrism of o one point at a time, folding each
// projection into an initially empty interval. It performs the same float32
// arithmetic as PrismOf and returns the same bounds.
func ScalarPrismOf(o Object) Prism {
	px, py, pz := o.position()
	p := EmptyPrism()
	m := o.Mesh
	for i := range m.xs {
		x := m.xs[i] + px
		y := m.ys[i] + py
		z := m.zs[i] + pz
		c := -(x + y)
		p.A = p.A.AddPoint(float64(x))
		p.B = p.B.AddPoint(float64(y))
		p.C = p.C.AddPoint(float64(c))
		p.Z = p.Z.AddPoint(float64(z))
	}
	return p
}

// ScalarBoxOf derives the AABB of o one point at a time.
func ScalarBoxOf(o Object) Box {
	return ScalarPrismOf(o).Box()
}

// intervals lists the slabs of a box in AABB axis order.
func (b Box) intervals() [3]r1.Interval {
	return [3]r1.Interval{b.X, b.Y, b.Z}
}

// intervals lists the slabs of a prism in HexPrism axis order.
func (p Prism) intervals() [4]r1.Interval {
	return [4]r1.Interval{p.A, p.B, p.C, p.Z}
}
