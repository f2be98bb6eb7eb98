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

// World is a packed array of bounding volumes whose query form is Q.
// It is implemented by *AABBs (Q = *AABB) and *HexPrisms (Q = *HexPrism).
type World[Q any] interface {
	Kind() Kind
	Len() int
	Width() int
	Blocks() int
	Query(b lane.Backend, i int) Q
	Stage(b lane.Backend, s Stage, block int, q Q) lane.Mask
	Validate() error

	live(block int) int
	validateBlock(block int) error
	validateQuery(q Q) error
}

// Tester runs the batch evaluation protocol: a query is broadcast once and
// compared with every block of a world, and the per-block masks are reduced
// to a hit count. An object always hits itself.
//
// A Tester is not safe for concurrent use while SetOrder or EarlyExit are
// being changed. Otherwise all methods only read the world and the query,
// so goroutines may evaluate disjoint block ranges of the same query.
type Tester[Q any] struct {
	b     lane.Backend
	world World[Q]
	order Order

	// EarlyExit abandons a block once the stages evaluated so far leave no
	// lane set. Turning it off changes timing, never results.
	EarlyExit bool
}

// NewTester returns a Tester for world using backend b, with early exit on
// and the default stage order.
func NewTester[Q any](b lane.Backend, world World[Q]) (*Tester[Q], error) {
	if b.Width() != world.Width() {
		return nil, fmt.Errorf("%w: backend %s has %d lanes, world has %d",
			ErrWidthMismatch, b.Name(), b.Width(), world.Width())
	}
	return &Tester[Q]{
		b:         b,
		world:     world,
		order:     DefaultOrder(world.Kind()),
		EarlyExit: true,
	}, nil
}

// NewAABBTester is NewTester for box worlds.
func NewAABBTester(b lane.Backend, world *AABBs) (*Tester[*AABB], error) {
	return NewTester[*AABB](b, world)
}

// NewHexTester is NewTester for prism worlds.
func NewHexTester(b lane.Backend, world *HexPrisms) (*Tester[*HexPrism], error) {
	return NewTester[*HexPrism](b, world)
}

// Backend returns the lane backend.
func (t *Tester[Q]) Backend() lane.Backend { return t.b }

// World returns the world being tested.
func (t *Tester[Q]) World() World[Q] { return t.world }

// Order returns the stage order.
func (t *Tester[Q]) Order() Order { return t.order }

// SetOrder changes the stage order. o must be a permutation of the default
// order for the world's kind.
func (t *Tester[Q]) SetOrder(o Order) error {
	if err := o.ValidFor(t.world.Kind()); err != nil {
		return err
	}
	t.order = append(Order(nil), o...)
	return nil
}

// Load broadcasts the stored bounds of object i into a query.
func (t *Tester[Q]) Load(i int) Q {
	q := t.world.Query(t.b, i)
	if debugChecks {
		if err := t.world.validateQuery(q); err != nil {
			panic(err)
		}
	}
	return q
}

// Mask returns the lanes of block whose volumes intersect q. Padding lanes
// past the last object are never set.
func (t *Tester[Q]) Mask(q Q, block int) lane.Mask {
	if debugChecks {
		if err := t.world.validateBlock(block); err != nil {
			panic(err)
		}
		if err := t.world.validateQuery(q); err != nil {
			panic(err)
		}
	}
	m := lane.Full(t.world.live(block))
	for _, s := range t.order {
		m = t.b.And(m, t.world.Stage(t.b, s, block, q))
		if t.EarlyExit && t.b.Bits(m) == 0 {
			return 0
		}
	}
	return m
}

// CountRange returns the number of objects in blocks [start, end) that
// intersect q.
func (t *Tester[Q]) CountRange(q Q, start, end int) int {
	n := 0
	for block := start; block < end; block++ {
		n += lane.Count(lane.Mask(t.b.Bits(t.Mask(q, block))))
	}
	return n
}

// Count returns the number of objects in the world that intersect q,
// including q's own object if it was loaded from this world.
func (t *Tester[Q]) Count(q Q) int {
	return t.CountRange(q, 0, t.world.Blocks())
}

// Hits returns the indices of the objects that intersect q, in ascending
// order.
func (t *Tester[Q]) Hits(q Q) []int {
	var out []int
	w := t.world.Width()
	for block := 0; block < t.world.Blocks(); block++ {
		for _, l := range t.Mask(q, block).Lanes() {
			out = append(out, block*w+l)
		}
	}
	return out
}

// Run loads each object of queries in turn and returns the total number of
// hits over all of them.
func (t *Tester[Q]) Run(queries []int) int {
	total := 0
	for _, i := range queries {
		total += t.Count(t.Load(i))
	}
	return total
}
