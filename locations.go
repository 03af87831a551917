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

// Monotonic returns n evenly spaced stop locations, starting at 0 and ending
// at 1.  For n = 1 the result is [0].  If n < 1, nil is returned.
func Monotonic(n int) []float64 {
	if n < 1 {
		return nil
	}
	res := make([]float64, n)
	if n == 1 {
		return res
	}
	for i := range res {
		res[i] = float64(i) / float64(n-1)
	}
	return res
}

// normalizeLocations returns the stop locations to use for n colors, where
// n >= 2.  Explicit locations are copied and checked; missing locations are
// replaced by evenly spaced ones.
func normalizeLocations(locations []float64, n int) ([]float64, error) {
	switch {
	case len(locations) == 0:
		return Monotonic(n), nil
	case len(locations) == 1 && n == 2:
		// A single location only fixes the first stop; the second stop
		// is placed at the end of the gradient.
		locations = []float64{locations[0], 1}
	case len(locations) != n:
		return nil, newInvalidGradientError("Locations",
			"%d locations given for %d colors", len(locations), n)
	}

	res := make([]float64, n)
	for i, x := range locations {
		if !isFinite(x) || x < 0 || x > 1 {
			return nil, newInvalidGradientError("Locations",
				"location %d is %g, not in [0, 1]", i, x)
		}
		if i > 0 && x < res[i-1] {
			return nil, &NonMonotonicLocationsError{
				Index: i,
				Prev:  res[i-1],
				Value: x,
			}
		}
		res[i] = x
	}
	return res, nil
}
