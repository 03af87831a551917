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

// Package raster draws gradients into Go images.
//
// An [Image] presents a gradient as an [image.Image]: each pixel centre is
// mapped to the user space of the gradient geometry and evaluated there.
// [Render] samples an Image into an in-memory bitmap, optionally with
// oversampling, and [Fill] composites any source image onto a destination
// through the coverage mask of a vector [Shape].
package raster
