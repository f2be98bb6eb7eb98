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
	"slices"
)

// Stage is one group of half-space tests within a predicate. A predicate is
// the AND of its stages; the order only decides how early an all-zero block
// can be abandoned.
type Stage uint8

const (
	// StageHorizontal tests the x and y slabs of AABBs (4 half-spaces).
	StageHorizontal Stage = iota
	// StageVertical tests the z slab (2 half-spaces).
	StageVertical
	// StageUpDown tests stored A, B, C minimums against the query maximums
	// (3 half-spaces).
	StageUpDown
	// StageDownUp tests the query A, B, C minimums against stored maximums
	// (3 half-spaces).
	StageDownUp
)

func (s Stage) String() string {
	switch s {
	case StageHorizontal:
		return "horizontal"
	case StageVertical:
		return "vertical"
	case StageUpDown:
		return "up-down"
	case StageDownUp:
		return "down-up"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Order is a sequence of stages covering every stage of a volume kind
// exactly once.
type Order []Stage

// DefaultOrder returns the cheap-rejection order for k: the horizontal
// footprint before the height.
func DefaultOrder(k Kind) Order {
	switch k {
	case KindAABB:
		return Order{StageHorizontal, StageVertical}
	case KindHexPrism:
		return Order{StageUpDown, StageDownUp, StageVertical}
	}
	return nil
}

// ValidFor checks that o is a permutation of DefaultOrder(k).
func (o Order) ValidFor(k Kind) error {
	want := DefaultOrder(k)
	if want == nil {
		return fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
	got := slices.Clone(o)
	slices.Sort(got)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		return fmt.Errorf("%w: %v for %v", ErrInvalidOrder, o, k)
	}
	return nil
}

func (o Order) String() string {
	s := ""
	for i, st := range o {
		if i > 0 {
			s += ","
		}
		s += st.String()
	}
	return s
}
