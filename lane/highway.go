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

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy"
)

// highway evaluates lanes with go-highway vectors. Its width is the float32
// lane count of the dispatch target detected at startup.
type highway struct {
	w    int
	full Mask
}

// Highway returns the backend backed by go-highway. Its width follows the
// runtime dispatch level: 4 on scalar/SSE2/NEON, 8 on AVX2, 16 on AVX-512.
func Highway() (Backend, error) {
	w := hwy.MaxLanes[float32]()
	if w < 1 || w > MaxWidth {
		return nil, fmt.Errorf("%w: highway reports %d float32 lanes", ErrInvalidWidth, w)
	}
	return highway{w: w, full: Full(w)}, nil
}

// Target names the highway dispatch level, e.g. "avx2" or "scalar".
func Target() string {
	return hwy.CurrentLevel().String()
}

func (h highway) Name() string { return "hwy(" + Target() + ")" }
func (h highway) Width() int   { return h.w }

func (h highway) LessEqual(a, b []float32) Mask {
	m := hwy.LessEqual(hwy.Load(a[:h.w]), hwy.Load(b[:h.w]))
	return Mask(hwy.BitsFromMask(m)) & h.full
}

func (h highway) And(a, b Mask) Mask { return a & b }

func (h highway) Broadcast(dst, v []float32, i int) {
	hwy.Store(hwy.Set(Get(v[:h.w], i)), dst[:h.w])
}

func (h highway) Bits(m Mask) uint64 { return uint64(m & h.full) }
