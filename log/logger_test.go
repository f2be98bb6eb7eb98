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

package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")
	SetLevel(Notice)
	logger.Debugf("hidden %d", 1)
	logger.Noticef("shown %d", 2)
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown 2") {
		t.Errorf("output at Notice level = %q, want only the notice", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debug("now visible")
	if out := buf.String(); !strings.Contains(out, "now visible") || !strings.Contains(out, "[test]") {
		t.Errorf("output at Debug level = %q, want the debug line tagged [test]", out)
	}
}

func TestParseLevel(t *testing.T) {
	for l := Debug; l <= Error; l++ {
		got, err := ParseLevel(strings.ToUpper(l.String()))
		if err != nil || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", l.String(), got, err, l)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("ParseLevel(loud) succeeded, want an error")
	}
	if got := Level(9).String(); got != "Level(9)" {
		t.Errorf("Level(9).String() = %q, want %q", got, "Level(9)")
	}
}

func TestModuleLevelSurvivesSink(t *testing.T) {
	SetLevel(Error)
	SetModuleLevel("traced", Debug)
	defer SetModuleLevel("traced", Notice)
	defer SetLevel(Notice)

	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	New("traced").Debug("traced line")
	New("quiet").Warning("quiet line")
	out := buf.String()
	if !strings.Contains(out, "traced line") {
		t.Errorf("output = %q, want the traced module's debug line", out)
	}
	if strings.Contains(out, "quiet line") {
		t.Errorf("output = %q, want no warning below the Error level", out)
	}
}
