// seehuhn.de/go/gradient - multi-stop gradients for 2D rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"image"
	stdcolor "image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Shape adds the outline of a filled region to a rasterizer.  Coordinates
// are in device pixels, relative to the top-left corner of the destination
// image.
type Shape func(z *vector.Rasterizer)

// kappa is the control point distance for a cubic approximation
// of a quarter circle with radius 1.
const kappa = 0.5522847498

// Rect returns the rectangle with corners (x0, y0) and (x1, y1).
func Rect(x0, y0, x1, y1 float32) Shape {
	return func(z *vector.Rasterizer) {
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
		z.ClosePath()
	}
}

// Circle returns the disc with centre (cx, cy) and radius r.
func Circle(cx, cy, r float32) Shape {
	return func(z *vector.Rasterizer) {
		circle(z, cx, cy, r, false)
	}
}

// Ring returns the annulus around (cx, cy) between the radii inner and
// outer.  If inner is not positive, the result is a full disc.
func Ring(cx, cy, inner, outer float32) Shape {
	return func(z *vector.Rasterizer) {
		circle(z, cx, cy, outer, false)
		if inner > 0 {
			// The rasterizer accumulates signed area, so the hole
			// needs the opposite orientation.
			circle(z, cx, cy, inner, true)
		}
	}
}

func circle(z *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	k := kappa * r
	z.MoveTo(cx+r, cy)
	if !reverse {
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	} else {
		z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	}
	z.ClosePath()
}

// Fill composites src over dst inside the given shape.  The pixel (x, y)
// of src is drawn onto the pixel (x, y) of dst.
func Fill(dst xdraw.Image, src image.Image, shape Shape) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = xdraw.Over
	shape(z)
	z.Draw(dst, b, src, b.Min)
}

// Clear sets every pixel of dst to c.
func Clear(dst xdraw.Image, c stdcolor.Color) {
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
}
