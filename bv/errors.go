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

import "errors"

var (
	ErrEmptyMesh         = errors.New("bv: mesh has no points")
	ErrMalformedInterval = errors.New("bv: malformed interval")
	ErrWidthMismatch     = errors.New("bv: backend width does not match world width")
	ErrInvalidOrder      = errors.New("bv: invalid stage order")
	ErrUnknownKind       = errors.New("bv: unknown bounding volume kind")
)
