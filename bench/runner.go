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
	"sync/atomic"
	"time"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/akhenakh/broadphase/bv"
	"github.com/akhenakh/broadphase/lane"
	"github.com/akhenakh/broadphase/log"
	"github.com/akhenakh/broadphase/scene"
)

var logger = log.New("bench")

// Run generates the scene described by opts and measures every selected
// bounding volume on it.
func Run(opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	b, err := lane.New(opts.Backend)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	start := time.Now()
	sc, err := scene.New(opts.sceneConfig())
	if err != nil {
		return nil, err
	}
	logger.Infof("generated %d objects in %s", opts.Objects, time.Since(start))

	var pool *workerpool.Pool
	if opts.Workers > 1 {
		pool = workerpool.New(opts.Workers)
		defer pool.Close()
	}

	rep := &Report{
		Backend: b.Name(),
		Width:   b.Width(),
		Objects: opts.Objects,
		Blocks:  (opts.Objects + b.Width() - 1) / b.Width(),
	}
	queries := opts.tests()
	for _, k := range opts.Volumes {
		var res Result
		switch k {
		case bv.KindAABB:
			start := time.Now()
			world := sc.AABBs(b.Width())
			derive := time.Since(start)
			t, err := bv.NewAABBTester(b, world)
			if err != nil {
				return nil, err
			}
			t.EarlyExit = opts.EarlyExit
			res = measure(t, queries, pool)
			res.Derive = derive
		case bv.KindHexPrism:
			start := time.Now()
			world := sc.HexPrisms(b.Width())
			derive := time.Since(start)
			t, err := bv.NewHexTester(b, world)
			if err != nil {
				return nil, err
			}
			t.EarlyExit = opts.EarlyExit
			res = measure(t, queries, pool)
			res.Derive = derive
		}
		logger.Infof("%v: %d accepts in %s", res.Volume, res.Accepts, res.Elapsed)
		rep.Results = append(rep.Results, res)
	}
	return rep, nil
}

func measure[Q any](t *bv.Tester[Q], queries []int, pool *workerpool.Pool) Result {
	res := Result{Volume: t.World().Kind(), Tests: len(queries)}
	start := time.Now()
	for _, i := range queries {
		res.Accepts += count(t, t.Load(i), pool)
	}
	res.Elapsed = time.Since(start)
	return res
}

// count is Tester.Count, split over pool when there is one. Each chunk sums
// privately and adds its total once.
func count[Q any](t *bv.Tester[Q], q Q, pool *workerpool.Pool) int {
	if pool == nil {
		return t.Count(q)
	}
	var total atomic.Int64
	pool.ParallelFor(t.World().Blocks(), func(start, end int) {
		total.Add(int64(t.CountRange(q, start, end)))
	})
	return int(total.Load())
}
