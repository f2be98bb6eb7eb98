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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/akhenakh/broadphase/bv"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Meshes = 4
	cfg.Points = 9
	cfg.Objects = 50
	cfg.Spread = 10
	return cfg
}

func TestUniformRange(t *testing.T) {
	r := NewRandom(1)
	for i := 0; i < 10000; i++ {
		if v := r.Uniform(-2, 3); v < -2 || v > 3 {
			t.Fatalf("Uniform(-2, 3) = %v, out of range", v)
		}
	}
}

func TestBlobPointsWithinRadius(t *testing.T) {
	r := NewRandom(2)
	for _, p := range BlobPoints(r, 500, 2) {
		if p.Norm() > 2 {
			t.Errorf("point %v outside radius 2", p)
		}
		if math.Abs(p.X) > 0.5 || math.Abs(p.Y) > 0.5 {
			t.Errorf("point %v wider than a quarter of the radius", p)
		}
	}
}

func TestPlankPointsRotation(t *testing.T) {
	r := NewRandom(3)
	// A 45° plank keeps every point near the x = y line.
	for _, p := range PlankPoints(r, 200, 2, 0.1, 1, math.Pi/4) {
		if d := math.Abs(p.X-p.Y) / math.Sqrt2; d > 0.05+1e-9 {
			t.Errorf("point %v is %v from the x = y axis, want <= 0.05", p, d)
		}
	}
}

func TestParseMeshKind(t *testing.T) {
	for _, k := range []MeshKind{MeshBlob, MeshPlank} {
		got, err := ParseMeshKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseMeshKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
	if _, err := ParseMeshKind("torus"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParseMeshKind(torus) error = %v, want %v", err, ErrInvalidConfig)
	}
}

func TestNewDeterministic(t *testing.T) {
	a, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	b, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	boxes := func(s *Scene) []bv.Box {
		out := make([]bv.Box, len(s.Objects))
		for i, o := range s.Objects {
			out[i] = bv.BoxOf(o)
		}
		return out
	}
	if diff := cmp.Diff(boxes(a), boxes(b)); diff != "" {
		t.Errorf("scenes from equal seeds differ (-first +second):\n%s", diff)
	}
}

func TestNewPlacement(t *testing.T) {
	for _, kind := range []MeshKind{MeshBlob, MeshPlank} {
		cfg := smallConfig()
		cfg.Kind = kind
		s, err := New(cfg)
		if err != nil {
			t.Fatalf("New(%v) failed: %v", kind, err)
		}
		if len(s.Meshes) != cfg.Meshes || len(s.Objects) != cfg.Objects {
			t.Fatalf("New(%v) = %d meshes, %d objects; want %d, %d", kind, len(s.Meshes), len(s.Objects), cfg.Meshes, cfg.Objects)
		}
		for i, o := range s.Objects {
			p := o.Position
			if math.Abs(p.X) > cfg.Spread || math.Abs(p.Y) > cfg.Spread || math.Abs(p.Z) > cfg.Lift {
				t.Errorf("object %d at %v outside the placement range", i, p)
			}
			if o.Mesh.Len() != cfg.Points {
				t.Errorf("object %d mesh has %d points, want %d", i, o.Mesh.Len(), cfg.Points)
			}
		}
	}
}

func TestWorldsAreDerived(t *testing.T) {
	s, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	a, h := s.AABBs(4), s.HexPrisms(8)
	if err := a.Validate(); err != nil {
		t.Errorf("AABBs(4).Validate() = %v", err)
	}
	if err := h.Validate(); err != nil {
		t.Errorf("HexPrisms(8).Validate() = %v", err)
	}
	for i, o := range s.Objects {
		if a.Box(i) != bv.BoxOf(o) {
			t.Errorf("AABBs.Box(%d) = %v, want %v", i, a.Box(i), bv.BoxOf(o))
		}
		if h.Prism(i) != bv.PrismOf(o) {
			t.Errorf("HexPrisms.Prism(%d) = %v, want %v", i, h.Prism(i), bv.PrismOf(o))
		}
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []func(*Config){
		func(c *Config) { c.Meshes = 0 },
		func(c *Config) { c.Points = 0 },
		func(c *Config) { c.Objects = 0 },
		func(c *Config) { c.Radius = -1 },
		func(c *Config) { c.Kind = MeshKind(7) },
	}
	for i, mutate := range tests {
		cfg := smallConfig()
		mutate(&cfg)
		if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("case %d: New error = %v, want %v", i, err, ErrInvalidConfig)
		}
	}
}
