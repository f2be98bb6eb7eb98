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

package lane

import "fmt"

func bit(c bool) Mask {
	if c {
		return 1
	}
	return 0
}

type scalar struct{}

// Scalar returns the W=1 backend; a block holds exactly one object.
func Scalar() Backend { return scalar{} }

func (scalar) Name() string { return "scalar" }
func (scalar) Width() int   { return 1 }

func (scalar) LessEqual(a, b []float32) Mask {
	return bit(a[0] <= b[0])
}

func (scalar) And(a, b Mask) Mask { return a & b }

func (scalar) Broadcast(dst, v []float32, i int) {
	dst[0] = Get(v, i)
}

func (scalar) Bits(m Mask) uint64 { return uint64(m & 1) }

type quad struct{}

// Quad returns the W=4 backend, the width of a 128-bit register of float32.
func Quad() Backend { return quad{} }

func (quad) Name() string { return "quad" }
func (quad) Width() int   { return 4 }

func (quad) LessEqual(a, b []float32) Mask {
	x, y := (*[4]float32)(a), (*[4]float32)(b)
	return bit(x[0] <= y[0]) |
		bit(x[1] <= y[1])<<1 |
		bit(x[2] <= y[2])<<2 |
		bit(x[3] <= y[3])<<3
}

func (quad) And(a, b Mask) Mask { return a & b }

func (quad) Broadcast(dst, v []float32, i int) {
	x := Get(v[:4], i)
	*(*[4]float32)(dst) = [4]float32{x, x, x, x}
}

func (quad) Bits(m Mask) uint64 { return uint64(m & 0xf) }

type oct struct{}

// Oct returns the W=8 backend, the width of a 256-bit register of float32.
func Oct() Backend { return oct{} }

func (oct) Name() string { return "oct" }
func (oct) Width() int   { return 8 }

func (oct) LessEqual(a, b []float32) Mask {
	x, y := (*[8]float32)(a), (*[8]float32)(b)
	return bit(x[0] <= y[0]) |
		bit(x[1] <= y[1])<<1 |
		bit(x[2] <= y[2])<<2 |
		bit(x[3] <= y[3])<<3 |
		bit(x[4] <= y[4])<<4 |
		bit(x[5] <= y[5])<<5 |
		bit(x[6] <= y[6])<<6 |
		bit(x[7] <= y[7])<<7
}

func (oct) And(a, b Mask) Mask { return a & b }

func (oct) Broadcast(dst, v []float32, i int) {
	x := Get(v[:8], i)
	*(*[8]float32)(dst) = [8]float32{x, x, x, x, x, x, x, x}
}

func (oct) Bits(m Mask) uint64 { return uint64(m & 0xff) }

type fixed struct {
	w    int
	full Mask
}

// Fixed returns a loop-based backend of width w, 1 <= w <= MaxWidth.
func Fixed(w int) (Backend, error) {
	if w < 1 || w > MaxWidth {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, w)
	}
	return fixed{w: w, full: Full(w)}, nil
}

func (f fixed) Name() string { return fmt.Sprintf("fixed%d", f.w) }
func (f fixed) Width() int   { return f.w }

func (f fixed) LessEqual(a, b []float32) Mask {
	a, b = a[:f.w], b[:f.w]
	var m Mask
	for j := range a {
		m |= bit(a[j] <= b[j]) << uint(j)
	}
	return m
}

func (f fixed) And(a, b Mask) Mask { return a & b }

func (f fixed) Broadcast(dst, v []float32, i int) {
	x := Get(v[:f.w], i)
	dst = dst[:f.w]
	for j := range dst {
		dst[j] = x
	}
}

func (f fixed) Bits(m Mask) uint64 { return uint64(m & f.full) }
