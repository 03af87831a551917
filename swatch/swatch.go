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

// Package swatch writes gradients as SVG images.
//
// SVG only knows linear interpolation between stops, so the gradient is
// sampled at evenly spaced positions and the samples are written as SVG
// stops.  This reproduces slope functions and non-linear interpolation up
// to the sampling resolution.
package swatch

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"seehuhn.de/go/gradient"
	"seehuhn.de/go/gradient/color"
)

// MaxSamples is the largest number of samples.  SVG stop offsets are
// written as integer percentages.
const MaxSamples = 101

// Options control the output of [Write].
type Options struct {
	// Width and Height give the size of the image.  If these are zero,
	// a 256×64 image is written.
	Width, Height int

	// Samples is the number of stops written.  Values outside the range
	// from 2 to [MaxSamples] are clamped.  Zero means [MaxSamples].
	Samples int

	// Title (optional) is stored in the SVG title element.
	Title string
}

// Write writes an SVG image of the gradient g to w.  Gradients with a
// [*gradient.Radial] geometry are shown as a radial gradient centred in the
// image, all others as a horizontal ramp across the image.  The centres,
// radii and axis of the geometry are not exported; the image only shows the
// colors of the gradient.
func Write(w io.Writer, g *gradient.Gradient, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}
	width, height := opt.Width, opt.Height
	if width <= 0 || height <= 0 {
		width, height = 256, 64
	}

	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Start(width, height)
	if opt.Title != "" {
		s.Title(opt.Title)
	}
	s.Def()
	stops := Stops(g, opt.Samples)
	if _, isRadial := g.Geometry().(*gradient.Radial); isRadial {
		s.RadialGradient("g", 50, 50, 50, 50, 50, stops)
	} else {
		s.LinearGradient("g", 0, 0, 100, 0, stops)
	}
	s.DefEnd()
	s.Rect(0, 0, width, height, "fill:url(#g)")
	s.End()
	return ew.err
}

// Stops samples the gradient g at n evenly spaced positions and returns the
// corresponding SVG stops.
func Stops(g *gradient.Gradient, n int) []svg.Offcolor {
	if n == 0 || n > MaxSamples {
		n = MaxSamples
	} else if n < 2 {
		n = 2
	}
	pos := gradient.Monotonic(n)
	res := make([]svg.Offcolor, n)
	for i, x := range pos {
		c := g.Evaluate(x)
		res[i] = svg.Offcolor{
			Offset:  uint8(math.Round(100 * x)),
			Color:   cssColor(c),
			Opacity: math.Max(0, math.Min(1, c.A)),
		}
	}
	return res
}

func cssColor(c color.RGBA) string {
	v := c.NRGBA64()
	return fmt.Sprintf("rgb(%d,%d,%d)", v.R>>8, v.G>>8, v.B>>8)
}

// errWriter keeps the first write error, since the SVG writer does not
// report errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.err = err
	return n, err
}
