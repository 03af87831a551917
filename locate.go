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

import "math"

// locate finds the stops surrounding alpha in the non-decreasing sequence
// pos.
//
// If alpha lies on or outside one end of the final bracket, lo == hi is the
// index of the stop whose color is to be used unchanged.  Otherwise lo+1 ==
// hi and t in (0, 1) is the relative position of alpha between pos[lo] and
// pos[hi].
//
// Stop counts are small, so a linear scan is used.  Stops with equal
// positions never lead to a division by zero, since one of the two boundary
// cases always applies.  NaN is mapped to the first stop of the bracket.
func locate(alpha float64, pos []float64) (lo, hi int, t float64) {
	lo = 0
	hi = 0
	if len(pos) > 1 {
		hi = 1
	}
	for hi < len(pos)-1 && alpha > pos[hi] {
		lo = hi
		hi++
	}

	switch {
	case alpha <= pos[lo] || math.IsNaN(alpha):
		return lo, lo, 0
	case alpha >= pos[hi]:
		return hi, hi, 0
	}
	return lo, hi, (alpha - pos[lo]) / (pos[hi] - pos[lo])
}
