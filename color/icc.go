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
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/icc"
)

// SpaceICCBased represents a color space defined by an ICC profile.
type SpaceICCBased struct {
	N     int
	model Model

	profile []byte
}

// ICCBased returns a new ICC-based color space.
// The color model is taken from the data color space of the profile.
func ICCBased(profile []byte) (*SpaceICCBased, error) {
	if len(profile) == 0 {
		return nil, errors.New("ICCBased: missing profile")
	}

	p, err := icc.Decode(profile)
	if err != nil {
		return nil, err
	}

	n := p.ColorSpace.NumComponents()
	var model Model
	switch p.ColorSpace {
	case icc.GraySpace:
		model = ModelGray
	case icc.RGBSpace:
		model = ModelRGB
	case icc.CMYKSpace:
		model = ModelCMYK
	case icc.CIELabSpace:
		model = ModelLab
	default:
		return nil, fmt.Errorf("ICCBased: unsupported color space %v", p.ColorSpace)
	}

	res := &SpaceICCBased{
		N:       n,
		model:   model,
		profile: profile,
	}
	return res, nil
}

// Family returns [FamilyICCBased].
// This implements the [Space] interface.
func (s *SpaceICCBased) Family() Family {
	return FamilyICCBased
}

// Model returns the color model of the profile.
// This implements the [Space] interface.
func (s *SpaceICCBased) Model() Model {
	return s.model
}

// Channels returns the number of color channels.
// This implements the [Space] interface.
func (s *SpaceICCBased) Channels() int {
	return s.N
}

// Profile returns the raw ICC profile data.
func (s *SpaceICCBased) Profile() []byte {
	return s.profile
}

// New returns a color in the ICC-based color space.
func (s *SpaceICCBased) New(values []float64, alpha float64) (Color, error) {
	if len(values) != s.N {
		return nil, fmt.Errorf("ICCBased: expected %d values, got %d", s.N, len(values))
	}
	v := make([]float64, s.N+1)
	copy(v, values)
	v[s.N] = alpha
	return colorICCBased{space: s, values: v}, nil
}

type colorICCBased struct {
	space  *SpaceICCBased
	values []float64
}

// ColorSpace implements the [Color] interface.
func (c colorICCBased) ColorSpace() Space {
	return c.space
}

// Components implements the [Color] interface.
func (c colorICCBased) Components() []float64 {
	return slices.Clone(c.values)
}
