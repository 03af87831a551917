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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Geometry maps points of the plane to gradient parameters.
//
// This interface is implemented by [*Axial] and [*Radial].
type Geometry interface {
	// Param returns the gradient parameter in [0, 1] for the point p.
	// The flags control whether the gradient is extended beyond its
	// start and end.  If p is not covered by the gradient, ok is false.
	Param(p vec.Vec2, extendStart, extendEnd bool) (t float64, ok bool)
}

// Axial is the geometry of a linear gradient.  The color is constant along
// lines perpendicular to the axis from Start to End.
type Axial struct {
	Start, End vec.Vec2
}

// Param implements the [Geometry] interface.
//
// A zero-length axis does not cover any points.
func (g *Axial) Param(p vec.Vec2, extendStart, extendEnd bool) (float64, bool) {
	d := g.End.Sub(g.Start)
	lengthSq := dot(d, d)
	if lengthSq == 0 {
		return 0, false
	}

	s := dot(p.Sub(g.Start), d) / lengthSq
	switch {
	case s < 0:
		return 0, extendStart
	case s > 1:
		return 1, extendEnd
	case math.IsNaN(s):
		return 0, false
	}
	return s, true
}

func (g *Axial) validate() error {
	if !isFinitePoint(g.Start) || !isFinitePoint(g.End) {
		return newInvalidGradientError("Geometry", "non-finite axis %v -> %v",
			g.Start, g.End)
	}
	return nil
}

// Radial is the geometry of a radial gradient.  The gradient is formed by
// the family of circles obtained by interpolating linearly between the start
// circle and the end circle.  Where several circles cover a point, the one
// with the largest parameter determines the color.
type Radial struct {
	StartCenter vec.Vec2
	StartRadius float64
	EndCenter   vec.Vec2
	EndRadius   float64
}

// Param implements the [Geometry] interface.
//
// Without the extension flags only circles with parameter in [0, 1] are
// used.  With extension, the circles continue beyond the start and end
// circle as long as their radius is non-negative, and the parameter is
// clamped to [0, 1].
func (g *Radial) Param(p vec.Vec2, extendStart, extendEnd bool) (float64, bool) {
	// Solve |p - c(s)| = r(s) for s, where c(s) = c0 + s*(c1-c0) and
	// r(s) = r0 + s*(r1-r0).  This gives a*s^2 - 2*b*s + c = 0.
	cd := g.EndCenter.Sub(g.StartCenter)
	pd := p.Sub(g.StartCenter)
	dr := g.EndRadius - g.StartRadius

	a := dot(cd, cd) - dr*dr
	b := dot(pd, cd) + g.StartRadius*dr
	c := dot(pd, pd) - g.StartRadius*g.StartRadius

	valid := func(s float64) bool {
		if math.IsNaN(s) || g.StartRadius+s*dr < 0 {
			return false
		}
		return (s >= 0 || extendStart) && (s <= 1 || extendEnd)
	}

	if a == 0 {
		if b == 0 {
			return 0, false
		}
		s := c / (2 * b)
		if !valid(s) {
			return 0, false
		}
		return clip(s, 0, 1), true
	}

	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	s1 := (b + sq) / a
	s2 := (b - sq) / a
	if s1 < s2 {
		s1, s2 = s2, s1
	}
	if valid(s1) {
		return clip(s1, 0, 1), true
	}
	if valid(s2) {
		return clip(s2, 0, 1), true
	}
	return 0, false
}

func (g *Radial) validate() error {
	if !isFinitePoint(g.StartCenter) || !isFinitePoint(g.EndCenter) {
		return newInvalidGradientError("Geometry", "non-finite circle center")
	}
	if !isFinite(g.StartRadius) || g.StartRadius < 0 {
		return newInvalidGradientError("Geometry", "invalid start radius %g", g.StartRadius)
	}
	if !isFinite(g.EndRadius) || g.EndRadius < 0 {
		return newInvalidGradientError("Geometry", "invalid end radius %g", g.EndRadius)
	}
	return nil
}
