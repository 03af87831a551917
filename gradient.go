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

package gradient

import (
	"fmt"
	"log/slog"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gradient/color"
	"seehuhn.de/go/gradient/easing"
)

// Descriptor describes a gradient.
type Descriptor struct {
	// Colors are the colors of the gradient stops.  At least one color must
	// be given; a single color is used for both ends of the gradient.  All
	// colors must use the RGB color model.
	Colors []color.Color

	// Locations (optional) are the positions of the stops in [0, 1], in
	// non-decreasing order.  If this is empty, the stops are spaced evenly.
	// Otherwise there must be one location per color, except that a single
	// location may be given for two colors, in which case the second stop
	// is placed at 1.
	Locations []float64

	// Geometry (optional) is the shape of the gradient, either [*Axial] or
	// [*Radial].  This is only needed for [Gradient.At].
	Geometry Geometry

	// ExtendStart and ExtendEnd control whether the gradient is continued
	// with the first and last stop color beyond its start and end.
	ExtendStart bool
	ExtendEnd   bool

	// Interpolation is the law used to blend between neighbouring stops.
	Interpolation Interpolation

	// Slope (optional) remaps the gradient parameter before the stops are
	// looked up.  If this is nil, [easing.Linear] is used.
	Slope easing.Func
}

// Stop is one color stop of a gradient.
type Stop struct {
	Position float64
	Color    color.RGBA
}

// Gradient is a validated gradient, ready for evaluation.
//
// A Gradient is immutable and can be used concurrently.
type Gradient struct {
	colors    []color.RGBA
	locations []float64
	slope     easing.Func
	blend     func(a, b color.RGBA, t float64) color.RGBA

	interpolation Interpolation
	geometry      Geometry
	extendStart   bool
	extendEnd     bool
}

// New checks the descriptor and returns the corresponding gradient.
//
// If the stop colors are not all RGB colors, an [*InvalidColorSpaceError] is
// returned; colors are never converted between color models.  Decreasing
// locations give a [*NonMonotonicLocationsError].  All other problems are
// reported as [*InvalidGradientError].
func New(d *Descriptor) (*Gradient, error) {
	if len(d.Colors) == 0 {
		return nil, newInvalidGradientError("Colors", "no colors given")
	}

	colors, err := rgbColors(d.Colors)
	if err != nil {
		return nil, err
	}
	if len(colors) == 1 {
		colors = []color.RGBA{colors[0], colors[0]}
	}

	locations, err := normalizeLocations(d.Locations, len(colors))
	if err != nil {
		return nil, err
	}

	blend, ok := d.Interpolation.blendFunc()
	if !ok {
		return nil, newInvalidGradientError("Interpolation",
			"unknown value %d", int(d.Interpolation))
	}

	if v, ok := d.Geometry.(interface{ validate() error }); ok {
		if err := v.validate(); err != nil {
			return nil, err
		}
	}

	slope := d.Slope
	if slope == nil {
		slope = easing.Linear
	}

	g := &Gradient{
		colors:        colors,
		locations:     locations,
		slope:         slope,
		blend:         blend,
		interpolation: d.Interpolation,
		geometry:      copyGeometry(d.Geometry),
		extendStart:   d.ExtendStart,
		extendEnd:     d.ExtendEnd,
	}

	Logger().Debug("gradient created",
		slog.Int("stops", len(colors)),
		slog.Any("locations", locations),
		slog.String("interpolation", d.Interpolation.String()))

	return g, nil
}

// rgbColors checks that all colors use the RGB color model and
// converts them to RGBA values.
func rgbColors(in []color.Color) ([]color.RGBA, error) {
	res := make([]color.RGBA, len(in))
	for i, c := range in {
		m := color.ModelOf(c)
		if m != color.ModelRGB {
			return nil, &InvalidColorSpaceError{Index: i, Got: m, Want: color.ModelRGB}
		}
		if c, ok := c.(color.RGBA); ok {
			res[i] = c
			continue
		}
		v := c.Components()
		if len(v) != 4 {
			return nil, newInvalidGradientError("Colors",
				"color %d has %d components", i, len(v))
		}
		res[i] = color.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}
	}
	return res, nil
}

// copyGeometry makes sure that the gradient does not share mutable
// geometry with the caller.
func copyGeometry(g Geometry) Geometry {
	switch g := g.(type) {
	case *Axial:
		c := *g
		return &c
	case *Radial:
		c := *g
		return &c
	default:
		return g
	}
}

// Evaluate returns the color of the gradient at parameter x.
//
// The caller should clamp x to [0, 1].  Colors before the first and after the
// last stop are returned unchanged, including their alpha value.  Colors
// between two stops are blended and always opaque.
func (g *Gradient) Evaluate(x float64) color.RGBA {
	alpha := g.slope(x)
	lo, hi, t := locate(alpha, g.locations)
	if lo == hi {
		return g.colors[lo]
	}
	return g.blend(g.colors[lo], g.colors[hi], t)
}

// Shade evaluates the gradient at in[0] and stores the red, green, blue and
// alpha values in out[0:4].  This is the shape of a 1-in, 4-out shading
// callback.
//
// Shade panics if in does not have length 1 or out does not have length 4.
func (g *Gradient) Shade(in, out []float64) {
	if len(in) != 1 || len(out) != 4 {
		panic(fmt.Sprintf("gradient: Shade expects 1 input and 4 outputs, got %d and %d",
			len(in), len(out)))
	}
	c := g.Evaluate(in[0])
	out[0] = c.R
	out[1] = c.G
	out[2] = c.B
	out[3] = c.A
}

// Func returns the shading callback of the gradient, bound to g.
func (g *Gradient) Func() func(in, out []float64) {
	return g.Shade
}

// Shape returns the number of input and output values of the shading
// callback.
func (g *Gradient) Shape() (int, int) {
	return 1, 4
}

// Domain returns the range of input values of the shading callback.
func (g *Gradient) Domain() (float64, float64) {
	return 0, 1
}

// Range returns the output ranges of the shading callback, in the form
// [min0, max0, min1, max1, ...].
func (g *Gradient) Range() []float64 {
	return []float64{0, 1, 0, 1, 0, 1, 0, 1}
}

// Stops returns the color stops used for evaluation.
func (g *Gradient) Stops() []Stop {
	res := make([]Stop, len(g.colors))
	for i := range res {
		res[i] = Stop{Position: g.locations[i], Color: g.colors[i]}
	}
	return res
}

// Locations returns the stop locations used for evaluation.
func (g *Gradient) Locations() []float64 {
	return slices.Clone(g.locations)
}

// Interpolation returns the interpolation law of the gradient.
func (g *Gradient) Interpolation() Interpolation {
	return g.interpolation
}

// Geometry returns a copy of the geometry of the gradient, or nil if no
// geometry was given.
func (g *Gradient) Geometry() Geometry {
	return copyGeometry(g.geometry)
}

// Extend reports whether the gradient extends beyond its start and end.
func (g *Gradient) Extend() (start, end bool) {
	return g.extendStart, g.extendEnd
}

// Table returns n samples of the gradient, evenly spaced over [0, 1].
func (g *Gradient) Table(n int) []color.RGBA {
	x := Monotonic(n)
	res := make([]color.RGBA, len(x))
	for i, xi := range x {
		res[i] = g.Evaluate(xi)
	}
	return res
}

// At returns the color of the gradient at the point p.  The second return
// value is false if the gradient has no geometry, or if p is not covered by
// the gradient.
func (g *Gradient) At(p vec.Vec2) (color.RGBA, bool) {
	if g.geometry == nil {
		return color.RGBA{}, false
	}
	t, ok := g.geometry.Param(p, g.extendStart, g.extendEnd)
	if !ok {
		return color.RGBA{}, false
	}
	return g.Evaluate(t), true
}
