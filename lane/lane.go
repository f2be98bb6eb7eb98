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

// Package lane implements fixed-width float32 lane vectors and the four
// primitive operations the bounding-volume predicates are written against:
// per-lane less-equal compare, mask AND, broadcast of one lane to all lanes,
// and reduction of a mask to a bitmask.
//
// A lane vector is a []float32 of exactly Width() elements, usually a window
// into a larger block array. Every Backend produces bit-identical masks for
// identical inputs; they differ only in how many objects one call covers.
package lane

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxWidth is the widest lane vector a Mask can describe.
const MaxWidth = 64

var (
	ErrInvalidWidth   = errors.New("lane: invalid lane width")
	ErrUnknownBackend = errors.New("lane: unknown backend")
)

// Mask holds one bit per lane; bit j is set iff lane j compared true.
type Mask uint64

// Backend is a lane vector implementation of a fixed width.
//
// All operations are pure. Vectors shorter than Width() are a caller error
// and cause a panic.
type Backend interface {
	// Name identifies the backend, e.g. "quad" or "hwy(avx2)".
	Name() string

	// Width is the number of lanes W.
	Width() int

	// LessEqual returns a mask with lane j set where a[j] <= b[j].
	// NaN compares false.
	LessEqual(a, b []float32) Mask

	// And returns the per-lane conjunction of two masks.
	And(a, b Mask) Mask

	// Broadcast writes v[i] into every lane of dst.
	Broadcast(dst, v []float32, i int)

	// Bits returns the mask as an unsigned integer with bit j set iff lane
	// j is true.
	Bits(m Mask) uint64
}

// Get returns lane i of v.
func Get(v []float32, i int) float32 {
	checkLane(v, i)
	return v[i]
}

// Set stores x into lane i of v.
func Set(v []float32, i int, x float32) {
	checkLane(v, i)
	v[i] = x
}

func checkLane(v []float32, i int) {
	if i < 0 || i >= len(v) {
		panic(fmt.Sprintf("lane: index %d out of range for %d lanes", i, len(v)))
	}
}

// Count returns the number of true lanes in m.
func Count(m Mask) int {
	return bits.OnesCount64(uint64(m))
}

// Any reports whether any lane of m is true.
func Any(m Mask) bool {
	return m != 0
}

// Full returns the mask with the low w lanes set.
func Full(w int) Mask {
	if w >= MaxWidth {
		return ^Mask(0)
	}
	return Mask(1)<<uint(w) - 1
}

// Has reports whether lane j of m is true.
func (m Mask) Has(j int) bool {
	return j >= 0 && j < MaxWidth && m&(1<<uint(j)) != 0
}

// Lanes returns the indices of the true lanes of m in ascending order.
func (m Mask) Lanes() []int {
	var out []int
	for b := uint64(m); b != 0; b &= b - 1 {
		out = append(out, bits.TrailingZeros64(b))
	}
	return out
}

func (m Mask) String() string {
	return fmt.Sprintf("%#b", uint64(m))
}
