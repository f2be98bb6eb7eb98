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

/*
Package bv implements brute-force broad-phase intersection between one query
bounding volume and millions of stored ones.

Two volume kinds are supported. An AABB is three slabs (x, y, z). A HexPrism
is a vertically extruded hexagon: the horizontal footprint is cut by three
slabs along axes spaced 120° apart, A = x, B = y and C = -(x+y), and the
height is a z slab. For the same point cloud the HexPrism is never looser
than the AABB, since its A and B slabs are the AABB's x and y slabs.

Stored volumes live in world arrays laid out as arrays of structures of
lanes: object i occupies lane i%W of block i/W, where W is the width of the
lane.Backend the world was built for. A query is a single object whose bounds
are broadcast to all W lanes, so one predicate call tests W objects and
yields a lane.Mask whose popcount is the number of hits in that block.

The scalar forms Box and Prism, built on r1.Interval, answer the same
question one object at a time and define the expected lane results.
*/
package bv
