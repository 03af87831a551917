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

	"seehuhn.de/go/gradient/color"
)

// InvalidColorSpaceError is returned by [New] when a stop color is not an RGB
// color, or when the stop colors use different color models.
type InvalidColorSpaceError struct {
	// Index is the position of the offending color in Descriptor.Colors.
	Index int

	Got  color.Model
	Want color.Model
}

func (e *InvalidColorSpaceError) Error() string {
	return fmt.Sprintf("color %d: unsupported color model %s (expected %s)",
		e.Index, e.Got, e.Want)
}

func (e *InvalidColorSpaceError) Is(target error) bool {
	_, ok := target.(*InvalidColorSpaceError)
	return ok
}

// NonMonotonicLocationsError is returned by [New] when the explicit stop
// locations decrease somewhere.
type NonMonotonicLocationsError struct {
	// Index is the position of the first location which is smaller than
	// its predecessor.
	Index int

	Prev, Value float64
}

func (e *NonMonotonicLocationsError) Error() string {
	return fmt.Sprintf("location %d: %g is smaller than previous location %g",
		e.Index, e.Value, e.Prev)
}

func (e *NonMonotonicLocationsError) Is(target error) bool {
	_, ok := target.(*NonMonotonicLocationsError)
	return ok
}

// InvalidGradientError is returned by [New] when some other part of a
// gradient description is invalid.
type InvalidGradientError struct {
	Field   string
	Message string
}

func (e *InvalidGradientError) Error() string {
	return fmt.Sprintf("invalid gradient %s: %s", e.Field, e.Message)
}

func (e *InvalidGradientError) Is(target error) bool {
	_, ok := target.(*InvalidGradientError)
	return ok
}

// newInvalidGradientError creates a new InvalidGradientError.
func newInvalidGradientError(field, format string, args ...any) *InvalidGradientError {
	return &InvalidGradientError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
