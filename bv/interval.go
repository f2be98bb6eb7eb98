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
	"math"

	"github.com/golang/geo/r1"
)

var (
	posInf = float32(math.Inf(1))
	negInf = float32(math.Inf(-1))
)

// emptyInterval contains no points and overlaps no interval with a finite
// end. AddPoint treats it as empty.
func emptyInterval() r1.Interval {
	return r1.Interval{Lo: math.Inf(1), Hi: math.Inf(-1)}
}

// Overlaps reports whether the closed intervals a and b share a point:
// a.Lo <= b.Hi and b.Lo <= a.Hi. This is the half-space pair every lane
// predicate evaluates. For non-empty intervals it agrees with
// r1.Interval.Intersects.
func Overlaps(a, b r1.Interval) bool {
	return a.Lo <= b.Hi && b.Lo <= a.Hi
}

// wellFormed reports whether i has been folded from at least one point:
// Lo <= Hi and neither end is NaN.
func wellFormed(i r1.Interval) bool {
	return i.Lo <= i.Hi
}

// widen converts a stored lane pair to an interval. Exact.
func widen(lo, hi float32) r1.Interval {
	return r1.Interval{Lo: float64(lo), Hi: float64(hi)}
}

// narrow converts i to float32 lanes, rounding Lo down and Hi up so the
// stored interval always contains i.
func narrow(i r1.Interval) (lo, hi float32) {
	lo, hi = float32(i.Lo), float32(i.Hi)
	if float64(lo) > i.Lo {
		lo = math.Nextafter32(lo, negInf)
	}
	if float64(hi) < i.Hi {
		hi = math.Nextafter32(hi, posInf)
	}
	return lo, hi
}
