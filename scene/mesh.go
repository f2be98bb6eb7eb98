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

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// MeshKind selects the shape of generated point clouds.
type MeshKind int

const (
	// MeshBlob samples points inside a sphere and squeezes x and y by 4,
	// giving objects taller than they are wide.
	MeshBlob MeshKind = iota
	// MeshPlank samples points in a thin box turned by a random yaw, the
	// case where the hexagonal footprint is much tighter than the box.
	MeshPlank
)

func (k MeshKind) String() string {
	switch k {
	case MeshBlob:
		return "blob"
	case MeshPlank:
		return "plank"
	}
	return fmt.Sprintf("MeshKind(%d)", int(k))
}

// ParseMeshKind accepts "blob" or "plank".
func ParseMeshKind(s string) (MeshKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blob":
		return MeshBlob, nil
	case "plank":
		return MeshPlank, nil
	}
	return 0, fmt.Errorf("%w: unknown mesh kind %q", ErrInvalidConfig, s)
}

// BlobPoints returns points within radius of the origin, rejection sampled
// from a box whose x and y sides are a quarter of its height.
func BlobPoints(r *Random, points int, radius float64) []r3.Vector {
	out := make([]r3.Vector, points)
	for i := range out {
		for {
			p := r3.Vector{
				X: r.Uniform(-radius, radius) * 0.25,
				Y: r.Uniform(-radius, radius) * 0.25,
				Z: r.Uniform(-radius, radius),
			}
			if p.Norm() <= radius {
				out[i] = p
				break
			}
		}
	}
	return out
}

// PlankPoints returns points in a length × width × height box centered on
// the origin, rotated by yaw radians about the z axis.
func PlankPoints(r *Random, points int, length, width, height, yaw float64) []r3.Vector {
	rot := mgl64.Rotate3DZ(yaw)
	out := make([]r3.Vector, points)
	for i := range out {
		v := rot.Mul3x1(mgl64.Vec3{
			r.Uniform(-length/2, length/2),
			r.Uniform(-width/2, width/2),
			r.Uniform(-height/2, height/2),
		})
		out[i] = r3.Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
	}
	return out
}

// randomYaw returns an angle in [0, π).
func randomYaw(r *Random) float64 {
	return r.Uniform(0, math.Pi*(grain-1)/grain)
}
