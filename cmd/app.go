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
	"github.com/urfave/cli"
)

// NewApp returns the broadphase command line application.
func NewApp() *cli.App {
	// -v selects verbose logging, so the version flag only gets a long name.
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "broadphase"
	app.Usage = "measure lane-parallel AABB and hexagonal prism broad phase tests"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringSliceFlag{
			Name:  "trace",
			Value: &cli.StringSlice{},
			Usage: "set the level of one module, e.g. scene or bench=info",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "generate a scene and count overlapping objects",
			Description: `
Place objects built from random meshes in a flat world, derive an axis aligned
box and a hexagonal prism for each, then test the first objects against every
object in the world with each bounding volume and report the accepted pairs
and timings.`,
			Flags:  RunFlags(),
			Action: Run,
		},
		{
			Name:   "backends",
			Usage:  "list lane backends",
			Action: ListBackends,
		},
	}
	return app
}
