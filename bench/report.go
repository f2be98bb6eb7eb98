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

package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/akhenakh/broadphase/bv"
)

// Report is the outcome of Run.
type Report struct {
	Backend string
	Width   int
	Objects int
	Blocks  int
	Results []Result
}

// Result holds the measurements for one bounding volume.
type Result struct {
	Volume bv.Kind
	// Tests is the number of queries run, Accepts the total number of
	// object pairs they reported as overlapping.
	Tests   int
	Accepts int
	// Derive is the time spent building the world, Elapsed the time spent
	// testing against it.
	Derive  time.Duration
	Elapsed time.Duration
}

// PerTest is the average time of one query against the whole world.
func (r Result) PerTest() time.Duration {
	if r.Tests == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Tests)
}

// Rate is the number of object pairs tested per second.
func (r Result) Rate(objects int) float64 {
	s := r.Elapsed.Seconds()
	if s == 0 {
		return 0
	}
	return float64(r.Tests) * float64(objects) / s
}

// Table writes the results as a text table.
func (rep *Report) Table(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Bounding volume", "Accepts", "Derive", "Seconds", "Per test", "Pairs/s"})
	for _, r := range rep.Results {
		table.Append([]string{
			r.Volume.String(),
			fmt.Sprintf("%d", r.Accepts),
			r.Derive.String(),
			fmt.Sprintf("%.3f", r.Elapsed.Seconds()),
			r.PerTest().String(),
			fmt.Sprintf("%.4g", r.Rate(rep.Objects)),
		})
	}
	table.SetFooter([]string{
		rep.Backend,
		fmt.Sprintf("%d lanes", rep.Width),
		"",
		"",
		fmt.Sprintf("%d objects", rep.Objects),
		fmt.Sprintf("%d blocks", rep.Blocks),
	})
	table.Render()
}
