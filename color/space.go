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

// Space represents a color space.
type Space interface {
	// Family returns the family of the color space.
	Family() Family

	// Model returns the color model of the space.
	Model() Model

	// Channels returns the number of color components, not counting alpha.
	Channels() int
}

// Color represents a color in some color space.
type Color interface {
	// ColorSpace returns the space the color belongs to.
	ColorSpace() Space

	// Components returns the color values followed by the alpha value.
	// The returned slice has length ColorSpace().Channels()+1.
	Components() []float64
}

// Family identifies a concrete kind of color space.
type Family string

// Color space families.
const (
	FamilyDeviceGray Family = "DeviceGray"
	FamilyDeviceRGB  Family = "DeviceRGB"
	FamilyDeviceCMYK Family = "DeviceCMYK"
	FamilyICCBased   Family = "ICCBased"
)

// Model describes how the components of a color are to be interpreted.
type Model int

// The supported color models.
const (
	ModelUnknown Model = iota
	ModelGray
	ModelRGB
	ModelCMYK
	ModelLab
)

func (m Model) String() string {
	switch m {
	case ModelGray:
		return "Gray"
	case ModelRGB:
		return "RGB"
	case ModelCMYK:
		return "CMYK"
	case ModelLab:
		return "Lab"
	default:
		return "Unknown"
	}
}

// Singleton objects for the color spaces which do not require any parameters.
var (
	SpaceDeviceGray Space = spaceDeviceGray{}
	SpaceDeviceRGB  Space = spaceDeviceRGB{}
	SpaceDeviceCMYK Space = spaceDeviceCMYK{}
)

// ModelOf returns the color model of c, or ModelUnknown if c is nil
// or has no color space.
func ModelOf(c Color) Model {
	if c == nil {
		return ModelUnknown
	}
	s := c.ColorSpace()
	if s == nil {
		return ModelUnknown
	}
	return s.Model()
}
