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

package scene

import "math/rand"

// grain is the number of distinct values Uniform can return in a range.
const grain = 10000

// Random is a seeded source of scene coordinates.
type Random struct {
	r *rand.Rand
}

// NewRandom returns a Random seeded with seed. Equal seeds give equal scenes.
func NewRandom(seed int64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

// Uniform returns one of grain evenly spaced values in [lo, hi], both ends
// included.
func (r *Random) Uniform(lo, hi float64) float64 {
	t := float64(r.r.Intn(grain)) / (grain - 1)
	return lo + (hi-lo)*t
}

// Intn returns a value in [0, n).
func (r *Random) Intn(n int) int {
	return r.r.Intn(n)
}
