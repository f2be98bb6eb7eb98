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

// Package bench measures the broad-phase kernels on a generated scene: it
// derives box and prism worlds from the same objects and, for each, counts
// how many objects the first few queries touch.
package bench

import (
	"errors"
	"fmt"

	"github.com/akhenakh/broadphase/bv"
	"github.com/akhenakh/broadphase/scene"
)

var ErrInvalidOption = errors.New("bench: invalid option")

// Options configures a benchmark run.
type Options struct {
	// Objects, Meshes, Points and Radius size the generated scene.
	Objects int
	Meshes  int
	Points  int
	Radius  float64

	// Tests is the number of objects, taken from the front of the world,
	// that are tested against every object.
	Tests int

	// Backend names the lane backend, see lane.New.
	Backend string

	// Volumes lists the bounding volumes to measure, in order.
	Volumes []bv.Kind

	// Workers splits each query's blocks over a worker pool when above 1.
	Workers int

	EarlyExit bool
	Seed      int64
	MeshKind  scene.MeshKind
}

// DefaultOptions returns the full size run: 2.5 million objects, 500 tests
// per volume, both volumes, one worker.
func DefaultOptions() Options {
	sc := scene.DefaultConfig()
	return Options{
		Objects:   sc.Objects,
		Meshes:    sc.Meshes,
		Points:    sc.Points,
		Radius:    sc.Radius,
		Tests:     500,
		Backend:   "auto",
		Volumes:   []bv.Kind{bv.KindAABB, bv.KindHexPrism},
		Workers:   1,
		EarlyExit: true,
		Seed:      sc.Seed,
		MeshKind:  sc.Kind,
	}
}

// Validate reports the first option that cannot be run.
func (o Options) Validate() error {
	switch {
	case o.Objects < 1:
		return fmt.Errorf("%w: objects = %d", ErrInvalidOption, o.Objects)
	case o.Meshes < 1:
		return fmt.Errorf("%w: meshes = %d", ErrInvalidOption, o.Meshes)
	case o.Points < 1:
		return fmt.Errorf("%w: points = %d", ErrInvalidOption, o.Points)
	case o.Radius < 0:
		return fmt.Errorf("%w: radius = %v", ErrInvalidOption, o.Radius)
	case o.Tests < 1:
		return fmt.Errorf("%w: tests = %d", ErrInvalidOption, o.Tests)
	case o.Workers < 1:
		return fmt.Errorf("%w: workers = %d", ErrInvalidOption, o.Workers)
	case len(o.Volumes) == 0:
		return fmt.Errorf("%w: no bounding volumes selected", ErrInvalidOption)
	}
	for _, k := range o.Volumes {
		if k != bv.KindAABB && k != bv.KindHexPrism {
			return fmt.Errorf("%w: volume %v", ErrInvalidOption, k)
		}
	}
	return nil
}

func (o Options) sceneConfig() scene.Config {
	cfg := scene.DefaultConfig()
	cfg.Objects = o.Objects
	cfg.Meshes = o.Meshes
	cfg.Points = o.Points
	cfg.Radius = o.Radius
	cfg.Kind = o.MeshKind
	cfg.Seed = o.Seed
	return cfg
}

// tests returns the indices of the query objects.
func (o Options) tests() []int {
	out := make([]int, min(o.Tests, o.Objects))
	for i := range out {
		out[i] = i
	}
	return out
}
