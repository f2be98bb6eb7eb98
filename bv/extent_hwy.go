package bv

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Extent reduction (Structure of Arrays)
// Every object's bounds come from projecting all of its mesh points, offset
// by the object position, onto x, y, -(x+y) and z. The four projections share
// the same loads, so one pass produces both the AABB and the HexPrism extents.

// BaseProjectExtents computes per-axis minimums and maximums of the points
// (xs[i]+px, ys[i]+py, zs[i]+pz). The axes are, in order:
//
//	0: x    1: y    2: -(x+y)    3: z
//
// With no points, lo and hi are zero.
func BaseProjectExtents[T hwy.Floats](
	px, py, pz T,
	xs, ys, zs []T,
) (lo, hi [4]T) {
	size := min(len(xs), len(ys), len(zs))
	if size == 0 {
		return lo, hi
	}

	vPx := hwy.Set(px)
	vPy := hwy.Set(py)
	vPz := hwy.Set(pz)

	// Seed with the first point so no sentinel value is needed.
	x0 := xs[0] + px
	y0 := ys[0] + py
	z0 := zs[0] + pz
	c0 := -(x0 + y0)
	vMinX, vMaxX := hwy.Set(x0), hwy.Set(x0)
	vMinY, vMaxY := hwy.Set(y0), hwy.Set(y0)
	vMinC, vMaxC := hwy.Set(c0), hwy.Set(c0)
	vMinZ, vMaxZ := hwy.Set(z0), hwy.Set(z0)

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x := hwy.Add(hwy.Load(xs[offset:]), vPx)
			y := hwy.Add(hwy.Load(ys[offset:]), vPy)
			z := hwy.Add(hwy.Load(zs[offset:]), vPz)
			c := hwy.Neg(hwy.Add(x, y))

			vMinX, vMaxX = hwy.Min(vMinX, x), hwy.Max(vMaxX, x)
			vMinY, vMaxY = hwy.Min(vMinY, y), hwy.Max(vMaxY, y)
			vMinC, vMaxC = hwy.Min(vMinC, c), hwy.Max(vMaxC, c)
			vMinZ, vMaxZ = hwy.Min(vMinZ, z), hwy.Max(vMaxZ, z)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x := hwy.Add(hwy.MaskLoad(mask, xs[offset:]), vPx)
			y := hwy.Add(hwy.MaskLoad(mask, ys[offset:]), vPy)
			z := hwy.Add(hwy.MaskLoad(mask, zs[offset:]), vPz)
			c := hwy.Neg(hwy.Add(x, y))

			// Lanes past the tail hold the position, not a point. Replace
			// them with the running bound so they cannot widen it.
			vMinX = hwy.Min(vMinX, hwy.IfThenElse(mask, x, vMinX))
			vMaxX = hwy.Max(vMaxX, hwy.IfThenElse(mask, x, vMaxX))
			vMinY = hwy.Min(vMinY, hwy.IfThenElse(mask, y, vMinY))
			vMaxY = hwy.Max(vMaxY, hwy.IfThenElse(mask, y, vMaxY))
			vMinC = hwy.Min(vMinC, hwy.IfThenElse(mask, c, vMinC))
			vMaxC = hwy.Max(vMaxC, hwy.IfThenElse(mask, c, vMaxC))
			vMinZ = hwy.Min(vMinZ, hwy.IfThenElse(mask, z, vMinZ))
			vMaxZ = hwy.Max(vMaxZ, hwy.IfThenElse(mask, z, vMaxZ))
		},
	)

	lo = [4]T{hwy.ReduceMin(vMinX), hwy.ReduceMin(vMinY), hwy.ReduceMin(vMinC), hwy.ReduceMin(vMinZ)}
	hi = [4]T{hwy.ReduceMax(vMaxX), hwy.ReduceMax(vMaxY), hwy.ReduceMax(vMaxC), hwy.ReduceMax(vMaxZ)}
	return lo, hi
}
