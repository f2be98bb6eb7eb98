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
	"strings"
)

// Axis names one projection direction of a bounding volume. AABBs use X, Y
// and Z; HexPrisms use A, B, C and Z.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisA // x
	AxisB // y
	AxisC // -(x+y)
)

var (
	boxAxes   = [...]Axis{AxisX, AxisY, AxisZ}
	prismAxes = [...]Axis{AxisA, AxisB, AxisC, AxisZ}
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	case AxisA:
		return "a"
	case AxisB:
		return "b"
	case AxisC:
		return "c"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Kind selects a bounding volume representation.
type Kind int

const (
	KindAABB Kind = iota
	KindHexPrism
)

func (k Kind) String() string {
	switch k {
	case KindAABB:
		return "AABB"
	case KindHexPrism:
		return "HexPrism"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts "aabb", "hex" or "hexprism", in any case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aabb", "box":
		return KindAABB, nil
	case "hex", "hexprism", "prism":
		return KindHexPrism, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
