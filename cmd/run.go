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

package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/akhenakh/broadphase/bench"
	"github.com/akhenakh/broadphase/bv"
	"github.com/akhenakh/broadphase/scene"
)

// RunFlags are the flags of the run command. Defaults come from
// bench.DefaultOptions.
func RunFlags() []cli.Flag {
	def := bench.DefaultOptions()
	return []cli.Flag{
		cli.IntFlag{Name: "objects, n", Value: def.Objects, Usage: "number of objects in the world"},
		cli.IntFlag{Name: "meshes", Value: def.Meshes, Usage: "number of distinct meshes"},
		cli.IntFlag{Name: "points", Value: def.Points, Usage: "points per mesh"},
		cli.Float64Flag{Name: "radius", Value: def.Radius, Usage: "mesh radius"},
		cli.IntFlag{Name: "tests, t", Value: def.Tests, Usage: "number of objects tested against the whole world"},
		cli.StringFlag{Name: "backend, b", Value: def.Backend, Usage: "lane backend: auto, hwy, scalar, quad, oct or a width"},
		cli.StringFlag{Name: "volumes", Value: "aabb,hexprism", Usage: "comma separated bounding volumes to measure"},
		cli.IntFlag{Name: "workers, j", Value: def.Workers, Usage: "split every query over this many workers"},
		cli.BoolFlag{Name: "no-early-exit", Usage: "evaluate every stage of every block"},
		cli.Int64Flag{Name: "seed", Value: def.Seed, Usage: "scene random seed"},
		cli.StringFlag{Name: "mesh", Value: def.MeshKind.String(), Usage: "mesh shape: blob or plank"},
	}
}

// Run generates a scene and measures the selected bounding volumes on it.
func Run(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts, err := runOptions(ctx)
	if err != nil {
		return err
	}
	rep, err := bench.Run(opts)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	rep.Table(&buf)
	logger.Noticef("broad phase results\n%s", buf.String())
	return nil
}

func runOptions(ctx *cli.Context) (bench.Options, error) {
	opts := bench.Options{
		Objects:   ctx.Int("objects"),
		Meshes:    ctx.Int("meshes"),
		Points:    ctx.Int("points"),
		Radius:    ctx.Float64("radius"),
		Tests:     ctx.Int("tests"),
		Backend:   ctx.String("backend"),
		Workers:   ctx.Int("workers"),
		EarlyExit: !ctx.Bool("no-early-exit"),
		Seed:      ctx.Int64("seed"),
	}
	for _, s := range strings.Split(ctx.String("volumes"), ",") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		k, err := bv.ParseKind(s)
		if err != nil {
			return opts, fmt.Errorf("--volumes: %w", err)
		}
		opts.Volumes = append(opts.Volumes, k)
	}
	mk, err := scene.ParseMeshKind(ctx.String("mesh"))
	if err != nil {
		return opts, fmt.Errorf("--mesh: %w", err)
	}
	opts.MeshKind = mk
	return opts, opts.Validate()
}
