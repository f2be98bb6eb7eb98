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

// Package scene generates the point clouds and object placements the
// broad-phase benchmark runs on: a pool of shared meshes and a large number
// of objects, each referencing one mesh at a random position.
package scene

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/akhenakh/broadphase/bv"
	"github.com/akhenakh/broadphase/log"
)

var ErrInvalidConfig = errors.New("scene: invalid config")

var logger = log.New("scene")

// Config describes a generated scene.
type Config struct {
	// Meshes is the number of distinct point clouds.
	Meshes int
	// Points is the number of points per mesh.
	Points int
	// Radius bounds the size of every mesh.
	Radius float64
	// Objects is the number of placed objects.
	Objects int
	// Spread is the half-size of the square objects are placed in.
	Spread float64
	// Lift is the half-height of the vertical placement range.
	Lift float64
	// Kind is the mesh shape.
	Kind MeshKind
	// Seed makes generation reproducible.
	Seed int64
}

// DefaultConfig returns a world of mostly flat placement with tall, narrow
// objects: 100 meshes of 50 points, 2.5 million objects over ±1000 in x and
// y and ±1 in z.
func DefaultConfig() Config {
	return Config{
		Meshes:  100,
		Points:  50,
		Radius:  1,
		Objects: 2500000,
		Spread:  1000,
		Lift:    1,
		Kind:    MeshBlob,
		Seed:    1,
	}
}

// Validate checks that c describes a non-empty scene.
func (c Config) Validate() error {
	switch {
	case c.Meshes < 1:
		return fmt.Errorf("%w: need at least one mesh, got %d", ErrInvalidConfig, c.Meshes)
	case c.Points < 1:
		return fmt.Errorf("%w: need at least one point per mesh, got %d", ErrInvalidConfig, c.Points)
	case c.Objects < 1:
		return fmt.Errorf("%w: need at least one object, got %d", ErrInvalidConfig, c.Objects)
	case c.Radius < 0 || c.Spread < 0 || c.Lift < 0:
		return fmt.Errorf("%w: negative radius, spread or lift", ErrInvalidConfig)
	case c.Kind != MeshBlob && c.Kind != MeshPlank:
		return fmt.Errorf("%w: unknown mesh kind %v", ErrInvalidConfig, c.Kind)
	}
	return nil
}

// Scene is a generated set of meshes and the objects placed from them.
type Scene struct {
	Meshes  []*bv.Mesh
	Objects []bv.Object
}

// New generates a scene. Meshes are generated first, then objects, all from
// one random stream seeded by cfg.Seed.
func New(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := NewRandom(cfg.Seed)

	s := &Scene{
		Meshes:  make([]*bv.Mesh, cfg.Meshes),
		Objects: make([]bv.Object, cfg.Objects),
	}
	for i := range s.Meshes {
		var pts []r3.Vector
		switch cfg.Kind {
		case MeshPlank:
			pts = PlankPoints(r, cfg.Points, 2*cfg.Radius, 0.1*cfg.Radius, cfg.Radius, randomYaw(r))
		default:
			pts = BlobPoints(r, cfg.Points, cfg.Radius)
		}
		m, err := bv.NewMesh(pts)
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		s.Meshes[i] = m
	}
	logger.Debugf("generated %d %v meshes of %d points", cfg.Meshes, cfg.Kind, cfg.Points)

	for i := range s.Objects {
		s.Objects[i] = bv.Object{
			Mesh: s.Meshes[r.Intn(len(s.Meshes))],
			Position: r3.Vector{
				X: r.Uniform(-cfg.Spread, cfg.Spread),
				Y: r.Uniform(-cfg.Spread, cfg.Spread),
				Z: r.Uniform(-cfg.Lift, cfg.Lift),
			},
		}
	}
	logger.Debugf("placed %d objects", cfg.Objects)
	return s, nil
}

// AABBs derives the boxes of all objects into a world of w lanes.
func (s *Scene) AABBs(w int) *bv.AABBs {
	a := bv.NewAABBs(len(s.Objects), w)
	for i, o := range s.Objects {
		a.Derive(i, o)
	}
	return a
}

// HexPrisms derives the prisms of all objects into a world of w lanes.
func (s *Scene) HexPrisms(w int) *bv.HexPrisms {
	h := bv.NewHexPrisms(len(s.Objects), w)
	for i, o := range s.Objects {
		h.Derive(i, o)
	}
	return h
}
