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

// Package color implements the colors used as gradient stops.
//
// Every color belongs to a color [Space].  Spaces are grouped by their
// [Model]: DeviceRGB and RGB-based ICC profiles share [ModelRGB], while
// DeviceGray and DeviceCMYK have their own models.  The gradient engine only
// evaluates RGB colors; the other models exist so that callers can construct
// them and have them rejected with a clear error, instead of being silently
// converted.
//
// The type [RGBA] is the value produced by gradient evaluation.  It also
// implements the [image/color.Color] interface, so evaluated colors can be
// written directly into Go images.
package color
