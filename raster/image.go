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
	"context"
	"image"
	stdcolor "image/color"
	"runtime"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gradient"
	"seehuhn.de/go/gradient/color"
)

// Model converts Go colors to [color.RGBA].
var Model stdcolor.Model = stdcolor.ModelFunc(func(c stdcolor.Color) stdcolor.Color {
	return color.FromStd(c)
})

// Image is an [image.Image] showing a gradient.
type Image struct {
	Gradient *gradient.Gradient

	// ToUser maps device pixel coordinates to the user space in which the
	// gradient geometry is given.
	ToUser matrix.Matrix

	// Rect is the bounding box of the image, in device pixels.
	Rect image.Rectangle

	// Background is used for pixels not painted by the gradient.
	Background color.RGBA
}

// NewImage returns an image of the gradient g, where device pixels
// coincide with user space units.
func NewImage(g *gradient.Gradient, r image.Rectangle) *Image {
	return &Image{
		Gradient: g,
		ToUser:   matrix.Identity,
		Rect:     r,
	}
}

// ColorModel implements the [image.Image] interface.
func (im *Image) ColorModel() stdcolor.Model {
	return Model
}

// Bounds implements the [image.Image] interface.
func (im *Image) Bounds() image.Rectangle {
	return im.Rect
}

// At implements the [image.Image] interface.
func (im *Image) At(x, y int) stdcolor.Color {
	return im.RGBAAt(x, y)
}

// RGBAAt returns the color of the pixel (x, y).  The gradient is evaluated
// at the centre of the pixel.
func (im *Image) RGBAAt(x, y int) color.RGBA {
	if !image.Pt(x, y).In(im.Rect) {
		return color.RGBA{}
	}
	ux, uy := im.ToUser.Apply(float64(x)+0.5, float64(y)+0.5)
	if c, ok := im.Gradient.At(vec.Vec2{X: ux, Y: uy}); ok {
		return c
	}
	return im.Background
}

// scaled returns a copy of the image with k×k device pixels for every
// pixel of im.
func (im *Image) scaled(k int) *Image {
	m := im.ToUser
	f := 1 / float64(k)
	return &Image{
		Gradient:   im.Gradient,
		ToUser:     matrix.Matrix{m[0] * f, m[1] * f, m[2] * f, m[3] * f, m[4], m[5]},
		Rect:       image.Rectangle{Min: im.Rect.Min.Mul(k), Max: im.Rect.Max.Mul(k)},
		Background: im.Background,
	}
}

// Options control [Render].
type Options struct {
	// Workers is the number of goroutines used for sampling.
	// If this is zero, runtime.GOMAXPROCS(0) is used.
	Workers int

	// Oversample is the number of samples per pixel in each direction.
	// Values smaller than 2 disable oversampling.
	Oversample int
}

// Render samples im into a new bitmap.  Rows are sampled concurrently.
// The options may be nil.
//
// With oversampling, the image is sampled at the higher resolution and then
// scaled down using Catmull-Rom filtering.
func Render(ctx context.Context, im *Image, opt *Options) (*image.NRGBA64, error) {
	if opt == nil {
		opt = &Options{}
	}
	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	src := im
	if opt.Oversample > 1 {
		src = im.scaled(opt.Oversample)
	}

	out := image.NewNRGBA64(src.Rect)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			for x := src.Rect.Min.X; x < src.Rect.Max.X; x++ {
				out.SetNRGBA64(x, y, src.RGBAAt(x, y).NRGBA64())
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if src == im {
		return out, nil
	}
	res := image.NewNRGBA64(im.Rect)
	xdraw.CatmullRom.Scale(res, res.Bounds(), out, out.Bounds(), xdraw.Src, nil)
	return res, nil
}
