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

	"github.com/golang/geo/r3"
)

// Mesh is an immutable point cloud shared by many objects. Points are kept
// as float32 coordinate arrays so extents can be reduced with vector loads.
type Mesh struct {
	xs, ys, zs []float32
}

// NewMesh copies points into a new Mesh. A mesh needs at least one point
// for its objects to have well-formed bounds.
func NewMesh(points []r3.Vector) (*Mesh, error) {
	if len(points) == 0 {
		return nil, ErrEmptyMesh
	}
	m := &Mesh{
		xs: make([]float32, len(points)),
		ys: make([]float32, len(points)),
		zs: make([]float32, len(points)),
	}
	for i, p := range points {
		m.xs[i], m.ys[i], m.zs[i] = float32(p.X), float32(p.Y), float32(p.Z)
	}
	return m, nil
}

// Len returns the number of points in the mesh.
func (m *Mesh) Len() int {
	return len(m.xs)
}

// Point returns the i-th point offset, as stored.
func (m *Mesh) Point(i int) r3.Vector {
	return r3.Vector{X: float64(m.xs[i]), Y: float64(m.ys[i]), Z: float64(m.zs[i])}
}

// Object places a shared mesh at a position. Objects only drive extent
// derivation; worlds keep the derived bounds, not the object.
type Object struct {
	Mesh     *Mesh
	Position r3.Vector
}

func (o Object) position() (px, py, pz float32) {
	if o.Mesh == nil {
		panic("bv: object has no mesh")
	}
	return float32(o.Position.X), float32(o.Position.Y), float32(o.Position.Z)
}

func (o Object) String() string {
	n := 0
	if o.Mesh != nil {
		n = o.Mesh.Len()
	}
	return fmt.Sprintf("Object{%d points at %v}", n, o.Position)
}
