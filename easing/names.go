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

package easing

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

var byName = map[string]Func{
	"linear": Linear,

	"quadratic-in":     QuadraticIn,
	"quadratic-out":    QuadraticOut,
	"quadratic-in-out": QuadraticInOut,
	"cubic-in":         CubicIn,
	"cubic-out":        CubicOut,
	"cubic-in-out":     CubicInOut,
	"quartic-in":       QuarticIn,
	"quartic-out":      QuarticOut,
	"quartic-in-out":   QuarticInOut,
	"quintic-in":       QuinticIn,
	"quintic-out":      QuinticOut,
	"quintic-in-out":   QuinticInOut,

	"sine-in":         SineIn,
	"sine-out":        SineOut,
	"sine-in-out":     SineInOut,
	"circular-in":     CircularIn,
	"circular-out":    CircularOut,
	"circular-in-out": CircularInOut,

	"exponential-in":     ExponentialIn,
	"exponential-out":    ExponentialOut,
	"exponential-in-out": ExponentialInOut,

	"back-in":        BackIn,
	"back-out":       BackOut,
	"back-in-out":    BackInOut,
	"elastic-in":     ElasticIn,
	"elastic-out":    ElasticOut,
	"elastic-in-out": ElasticInOut,
	"bounce-in":      BounceIn,
	"bounce-out":     BounceOut,
	"bounce-in-out":  BounceInOut,
}

var fold = cases.Fold()

// Lookup returns the slope function with the given name, for example
// "cubic-in-out".  Names are matched without regard to case, and
// underscores may be used in place of hyphens.
func Lookup(name string) (Func, bool) {
	key := fold.String(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))
	f, ok := byName[key]
	return f, ok
}

// Names returns the names of all slope functions, in alphabetical order.
func Names() []string {
	return slices.Sorted(maps.Keys(byName))
}
