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

// Package easing provides slope functions, which remap the gradient
// parameter before the color stops are looked up.
//
// All functions in this package map 0 to 0 and 1 to 1.  Some of them
// (Back and Elastic) overshoot the unit interval in between.
package easing

import "math"

// Func is a slope function.  Implementations must be pure.
type Func func(float64) float64

// Linear is the identity function.
func Linear(t float64) float64 {
	return t
}

// == polynomial =============================================================

func QuadraticIn(t float64) float64 {
	return t * t
}

func QuadraticOut(t float64) float64 {
	return -t * (t - 2)
}

func QuadraticInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -2*t*t + 4*t - 1
}

func CubicIn(t float64) float64 {
	return t * t * t
}

func CubicOut(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

func QuarticIn(t float64) float64 {
	return t * t * t * t
}

func QuarticOut(t float64) float64 {
	u := t - 1
	return 1 - u*u*u*u
}

func QuarticInOut(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	u := t - 1
	return 1 - 8*u*u*u*u
}

func QuinticIn(t float64) float64 {
	return t * t * t * t * t
}

func QuinticOut(t float64) float64 {
	u := t - 1
	return u*u*u*u*u + 1
}

func QuinticInOut(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u*u*u + 1
}

// == trigonometric ==========================================================

func SineIn(t float64) float64 {
	return 1 - math.Cos(t*math.Pi/2)
}

func SineOut(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

func SineInOut(t float64) float64 {
	return 0.5 * (1 - math.Cos(t*math.Pi))
}

func CircularIn(t float64) float64 {
	return 1 - math.Sqrt(1-t*t)
}

func CircularOut(t float64) float64 {
	return math.Sqrt((2 - t) * t)
}

func CircularInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * (1 - math.Sqrt(1-4*t*t))
	}
	return 0.5 * (math.Sqrt(-(2*t-3)*(2*t-1)) + 1)
}

// == exponential ============================================================

// ExponentialIn is normalised so that the end points are hit exactly.
func ExponentialIn(t float64) float64 {
	return (math.Exp2(10*t) - 1) / 1023
}

func ExponentialOut(t float64) float64 {
	return 1 - ExponentialIn(1-t)
}

func ExponentialInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * ExponentialIn(2*t)
	}
	return 1 - 0.5*ExponentialIn(2-2*t)
}

// == overshooting ===========================================================

const backOvershoot = 1.70158

func BackIn(t float64) float64 {
	return t * t * ((backOvershoot+1)*t - backOvershoot)
}

func BackOut(t float64) float64 {
	return 1 - BackIn(1-t)
}

func BackInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * BackIn(2*t)
	}
	return 1 - 0.5*BackIn(2-2*t)
}

func ElasticIn(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return -math.Exp2(10*(t-1)) * math.Sin((t-1.075)*2*math.Pi/0.3)
}

func ElasticOut(t float64) float64 {
	return 1 - ElasticIn(1-t)
}

func ElasticInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * ElasticIn(2*t)
	}
	return 1 - 0.5*ElasticIn(2-2*t)
}

func BounceOut(t float64) float64 {
	const n, d = 7.5625, 2.75
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	default:
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
}

func BounceIn(t float64) float64 {
	return 1 - BounceOut(1-t)
}

func BounceInOut(t float64) float64 {
	if t < 0.5 {
		return 0.5 * BounceIn(2*t)
	}
	return 0.5*BounceOut(2*t-1) + 0.5
}
