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
	"math"
	"strings"

	"seehuhn.de/go/gradient/color"
)

// Interpolation selects how the colors of two neighbouring stops are blended.
type Interpolation int

// The supported interpolation laws.
const (
	// Linear blends with weight t.
	Linear Interpolation = iota

	// Exponential blends with weight (2^(10t) - 1) / 1023, so that the
	// color stays close to the first stop for most of the interval.
	Exponential

	// Cosine blends with weight (1 - cos(πt)) / 2, which eases in and out
	// of both stops.
	Cosine
)

func (f Interpolation) String() string {
	switch f {
	case Linear:
		return "Linear"
	case Exponential:
		return "Exponential"
	case Cosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(f))
	}
}

// ParseInterpolation converts the name of an interpolation law, as returned
// by [Interpolation.String], back to its value.  Case is ignored.
func ParseInterpolation(s string) (Interpolation, error) {
	for _, f := range []Interpolation{Linear, Exponential, Cosine} {
		if strings.EqualFold(strings.TrimSpace(s), f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown interpolation %q", s)
}

// Weight returns the blend weight used for the relative position t in [0, 1].
func (f Interpolation) Weight(t float64) float64 {
	switch f {
	case Exponential:
		return expWeight(t)
	case Cosine:
		return cosWeight(t)
	default:
		return t
	}
}

// Blend mixes the colors a and b at the relative position t in [0, 1].
// Only the red, green and blue components are blended; the result is
// always opaque.
func (f Interpolation) Blend(a, b color.RGBA, t float64) color.RGBA {
	return lerpRGB(a, b, f.Weight(t))
}

func (f Interpolation) blendFunc() (func(a, b color.RGBA, t float64) color.RGBA, bool) {
	switch f {
	case Linear:
		return Lerp, true
	case Exponential:
		return Eerp, true
	case Cosine:
		return Coserp, true
	default:
		return nil, false
	}
}

// Lerp blends a and b linearly.  The result is opaque.
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	return lerpRGB(a, b, t)
}

// Eerp blends a and b with the exponential weight (2^(10t) - 1) / 1023.
// The result is opaque.
func Eerp(a, b color.RGBA, t float64) color.RGBA {
	return lerpRGB(a, b, expWeight(t))
}

// Coserp blends a and b with the cosine weight (1 - cos(πt)) / 2.
// The result is opaque.
func Coserp(a, b color.RGBA, t float64) color.RGBA {
	return lerpRGB(a, b, cosWeight(t))
}

func expWeight(t float64) float64 {
	return (math.Exp2(10*t) - 1) / 1023
}

func cosWeight(t float64) float64 {
	return (1 - math.Cos(t*math.Pi)) / 2
}

func lerpRGB(a, b color.RGBA, w float64) color.RGBA {
	return color.RGBA{
		R: a.R + w*(b.R-a.R),
		G: a.G + w*(b.G-a.G),
		B: a.B + w*(b.B-a.B),
		A: 1,
	}
}
