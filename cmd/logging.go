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
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/akhenakh/broadphase/log"
)

var logger = log.New("broadphase")

// setupLogging applies -v, -vv and --trace. A traced module logs at Debug,
// or at the level after its "=", whatever the global level.
func setupLogging(ctx *cli.Context) error {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	for _, spec := range ctx.GlobalStringSlice("trace") {
		name, level, found := strings.Cut(spec, "=")
		lvl := log.Debug
		if found {
			var err error
			if lvl, err = log.ParseLevel(level); err != nil {
				return fmt.Errorf("--trace %s: %w", spec, err)
			}
		}
		log.SetModuleLevel(name, lvl)
	}
	return nil
}

// Fatal logs err and exits with status 1.
func Fatal(err error) {
	logger.Error(err)
	os.Exit(1)
}
