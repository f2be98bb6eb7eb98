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

// Package log provides named, leveled loggers for the command line tools and
// the benchmark harness. The core packages do not log.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

// Level is a logging verbosity, from Debug (most) to Error (least).
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levels = [...]struct {
	name    string
	backend logging.Level
}{
	Debug:   {"debug", logging.DEBUG},
	Info:    {"info", logging.INFO},
	Notice:  {"notice", logging.NOTICE},
	Warning: {"warning", logging.WARNING},
	Error:   {"error", logging.ERROR},
}

func (l Level) String() string {
	if l < Debug || l > Error {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levels[l].name
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l, v := range levels {
		if v.name == s {
			return Level(l), nil
		}
	}
	return 0, fmt.Errorf("log: unknown level %q", s)
}

func (l Level) backend() logging.Level {
	if l < Debug {
		l = Debug
	}
	if l > Error {
		l = Error
	}
	return levels[l].backend
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level:.4s}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the subset of *logging.Logger used by this module.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for module name.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all loggers to sink. Levels set so far are kept.
func SetSink(sink io.Writer) {
	old := leveledBackend
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	leveledBackend = logging.AddModuleLevel(formatted)
	leveledBackend.SetLevel(logging.NOTICE, "")
	if old != nil {
		leveledBackend.SetLevel(old.GetLevel(""), "")
		for _, name := range modules {
			leveledBackend.SetLevel(old.GetLevel(name), name)
		}
	}
	logging.SetBackend(leveledBackend)
}

// modules lists the loggers given their own level.
var modules []string

// SetLevel sets the verbosity of every logger without a level of its own.
func SetLevel(level Level) {
	leveledBackend.SetLevel(level.backend(), "")
}

// SetModuleLevel sets the verbosity of the logger for module name only,
// e.g. to trace scene generation without the benchmark's output.
func SetModuleLevel(name string, level Level) {
	leveledBackend.SetLevel(level.backend(), name)
	for _, m := range modules {
		if m == name {
			return
		}
	}
	modules = append(modules, name)
}

func init() {
	SetSink(os.Stderr)
}
