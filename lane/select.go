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

package lane

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"
)

// Info describes a selectable backend.
type Info struct {
	Name  string
	Width int
}

// New returns the backend selected by name: "auto", "hwy", "scalar",
// "quad", "oct", or a decimal lane width between 1 and MaxWidth.
func New(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "auto":
		return Auto(), nil
	case "hwy", "highway":
		return Highway()
	case "scalar", "1":
		return Scalar(), nil
	case "quad", "4":
		return Quad(), nil
	case "oct", "8":
		return Oct(), nil
	}

	w, err := strconv.Atoi(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return Fixed(w)
}

// Auto returns Oct on amd64 machines with AVX2 and Quad everywhere else.
func Auto() Backend {
	if runtime.GOARCH == "amd64" && cpu.X86.HasAVX2 {
		return Oct()
	}
	return Quad()
}

// Available lists the named backends usable on this machine.
func Available() []Info {
	out := []Info{
		{Name: Scalar().Name(), Width: 1},
		{Name: Quad().Name(), Width: 4},
		{Name: Oct().Name(), Width: 8},
	}
	if h, err := Highway(); err == nil {
		out = append(out, Info{Name: h.Name(), Width: h.Width()})
	}
	a := Auto()
	out = append(out, Info{Name: "auto=" + a.Name(), Width: a.Width()})
	return out
}
