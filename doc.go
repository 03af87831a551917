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

// Package gradient computes the colors of multi-stop axial and radial
// gradients.
//
// A gradient is described by a [Descriptor] and turned into an immutable
// [Gradient] by [New].  The gradient maps a parameter x in [0, 1] to a color
// in three steps:
//
//  1. x is remapped by the slope function (see package
//     [seehuhn.de/go/gradient/easing]),
//  2. the pair of color stops surrounding the remapped value is located,
//  3. the two stop colors are blended using the selected [Interpolation].
//
// Outside the first and last stop, the stop color is returned unchanged,
// including its alpha value.  Blended colors between two stops are always
// fully opaque.
//
// The per-sample entry points [Gradient.Evaluate] and [Gradient.Shade] do
// not allocate and can be called concurrently from any number of
// goroutines:
//
//	g, err := gradient.New(&gradient.Descriptor{
//		Colors: []color.Color{color.DeviceRGB(1, 0, 0), color.DeviceRGB(0, 0, 1)},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	c := g.Evaluate(0.5) // (0.5, 0, 0.5, 1)
//
// Gradients which carry an [Axial] or [Radial] geometry can also be
// evaluated at points of the plane, using [Gradient.At].
package gradient
