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

package color

import (
	stdcolor "image/color"
)

// == DeviceGray =============================================================

// spaceDeviceGray represents the DeviceGray color space.
type spaceDeviceGray struct{}

// Family returns [FamilyDeviceGray].
// This implements the [Space] interface.
func (s spaceDeviceGray) Family() Family {
	return FamilyDeviceGray
}

// Model returns [ModelGray].
// This implements the [Space] interface.
func (s spaceDeviceGray) Model() Model {
	return ModelGray
}

// Channels returns 1.
// This implements the [Space] interface.
func (s spaceDeviceGray) Channels() int {
	return 1
}

type colorDeviceGray [2]float64

// DeviceGray returns an opaque color in the DeviceGray color space.
// The parameter gray must be in the range from 0 (black) to 1 (white).
func DeviceGray(gray float64) Color {
	return colorDeviceGray{gray, 1}
}

// ColorSpace implements the [Color] interface.
func (c colorDeviceGray) ColorSpace() Space {
	return spaceDeviceGray{}
}

// Components implements the [Color] interface.
func (c colorDeviceGray) Components() []float64 {
	return c[:]
}

// == DeviceRGB ==============================================================

// spaceDeviceRGB represents the DeviceRGB color space.
type spaceDeviceRGB struct{}

// Family returns [FamilyDeviceRGB].
// This implements the [Space] interface.
func (s spaceDeviceRGB) Family() Family {
	return FamilyDeviceRGB
}

// Model returns [ModelRGB].
// This implements the [Space] interface.
func (s spaceDeviceRGB) Model() Model {
	return ModelRGB
}

// Channels returns 3.
// This implements the [Space] interface.
func (s spaceDeviceRGB) Channels() int {
	return 3
}

// RGBA is a non-premultiplied color in the DeviceRGB color space.
// All components are in the range from 0 to 1.
type RGBA struct {
	R, G, B, A float64
}

// DeviceRGB returns an opaque color in the DeviceRGB color space.
// The parameters r, g, and b must be in the range from 0 to 1.
func DeviceRGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// DeviceRGBA returns a color in the DeviceRGB color space with the given
// alpha value.
func DeviceRGBA(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// ColorSpace implements the [Color] interface.
func (c RGBA) ColorSpace() Space {
	return spaceDeviceRGB{}
}

// Components implements the [Color] interface.
func (c RGBA) Components() []float64 {
	return []float64{c.R, c.G, c.B, c.A}
}

// RGBA returns the alpha-premultiplied color values in the range
// [0, 0xffff].  Components outside [0, 1] are clamped.
// This implements the [image/color.Color] interface.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	alpha := clamp(c.A, 0, 1)
	r = uint32(clamp(c.R, 0, 1)*alpha*0xffff + 0.5)
	g = uint32(clamp(c.G, 0, 1)*alpha*0xffff + 0.5)
	b = uint32(clamp(c.B, 0, 1)*alpha*0xffff + 0.5)
	a = uint32(alpha*0xffff + 0.5)
	return r, g, b, a
}

// NRGBA64 converts the color to a non-premultiplied 16-bit Go color.
func (c RGBA) NRGBA64() stdcolor.NRGBA64 {
	return stdcolor.NRGBA64{
		R: uint16(clamp(c.R, 0, 1)*0xffff + 0.5),
		G: uint16(clamp(c.G, 0, 1)*0xffff + 0.5),
		B: uint16(clamp(c.B, 0, 1)*0xffff + 0.5),
		A: uint16(clamp(c.A, 0, 1)*0xffff + 0.5),
	}
}

// FromStd converts a Go color to RGBA.
// The premultiplication used by [image/color.Color] is undone.
func FromStd(c stdcolor.Color) RGBA {
	if c, ok := c.(RGBA); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	fa := float64(a)
	return RGBA{
		R: float64(r) / fa,
		G: float64(g) / fa,
		B: float64(b) / fa,
		A: fa / 0xffff,
	}
}

// == DeviceCMYK =============================================================

// spaceDeviceCMYK represents the DeviceCMYK color space.
type spaceDeviceCMYK struct{}

// Family returns [FamilyDeviceCMYK].
// This implements the [Space] interface.
func (s spaceDeviceCMYK) Family() Family {
	return FamilyDeviceCMYK
}

// Model returns [ModelCMYK].
// This implements the [Space] interface.
func (s spaceDeviceCMYK) Model() Model {
	return ModelCMYK
}

// Channels returns 4.
// This implements the [Space] interface.
func (s spaceDeviceCMYK) Channels() int {
	return 4
}

type colorDeviceCMYK [5]float64

// DeviceCMYK returns an opaque color in the DeviceCMYK color space.
// The parameters c, m, y, and k must be in the range from 0 to 1
// and control the amount of cyan, magenta, yellow, and black in the color.
func DeviceCMYK(c, m, y, k float64) Color {
	return colorDeviceCMYK{c, m, y, k, 1}
}

// ColorSpace implements the [Color] interface.
func (c colorDeviceCMYK) ColorSpace() Space {
	return spaceDeviceCMYK{}
}

// Components implements the [Color] interface.
func (c colorDeviceCMYK) Components() []float64 {
	return c[:]
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
