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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/icc"
)

func TestModels(t *testing.T) {
	tests := []struct {
		c        Color
		family   Family
		model    Model
		channels int
	}{
		{DeviceGray(0.5), FamilyDeviceGray, ModelGray, 1},
		{DeviceRGB(1, 0, 0), FamilyDeviceRGB, ModelRGB, 3},
		{DeviceRGBA(1, 0, 0, 0.5), FamilyDeviceRGB, ModelRGB, 3},
		{DeviceCMYK(0, 1, 1, 0), FamilyDeviceCMYK, ModelCMYK, 4},
	}
	for i, test := range tests {
		s := test.c.ColorSpace()
		if s.Family() != test.family {
			t.Errorf("%d: family %s, want %s", i, s.Family(), test.family)
		}
		if ModelOf(test.c) != test.model {
			t.Errorf("%d: model %s, want %s", i, ModelOf(test.c), test.model)
		}
		if s.Channels() != test.channels {
			t.Errorf("%d: %d channels, want %d", i, s.Channels(), test.channels)
		}
		if n := len(test.c.Components()); n != test.channels+1 {
			t.Errorf("%d: %d components, want %d", i, n, test.channels+1)
		}
	}

	if ModelOf(nil) != ModelUnknown {
		t.Error("nil color must have unknown model")
	}
}

func TestComponents(t *testing.T) {
	c := DeviceRGBA(0.1, 0.2, 0.3, 0.4)
	want := []float64{0.1, 0.2, 0.3, 0.4}
	if d := cmp.Diff(want, c.Components()); d != "" {
		t.Error(d)
	}

	gray := DeviceGray(0.25).Components()
	gray[0] = 1
	if DeviceGray(0.25).Components()[0] != 0.25 {
		t.Error("Components must not expose internal state")
	}
}

func TestStdRoundTrip(t *testing.T) {
	colors := []RGBA{
		DeviceRGB(0, 0, 0),
		DeviceRGB(1, 1, 1),
		DeviceRGB(1, 0.5, 0.25),
		DeviceRGBA(0.2, 0.4, 0.6, 0.5),
	}
	for _, c := range colors {
		std := stdcolor.NRGBA64Model.Convert(c)
		got := FromStd(std)
		if d := cmp.Diff(c, got, cmpopts.EquateApprox(0, 1e-4)); d != "" {
			t.Errorf("round trip of %v: %s", c, d)
		}
	}
}

func TestRGBAClamping(t *testing.T) {
	r, g, b, a := DeviceRGBA(2, -1, 0.5, 1).RGBA()
	if r != 0xffff || g != 0 || b != 0x8000 || a != 0xffff {
		t.Errorf("got %x %x %x %x", r, g, b, a)
	}

	if got := FromStd(stdcolor.Transparent); got != (RGBA{}) {
		t.Errorf("transparent: got %v", got)
	}
}

func TestICCBasedInvalid(t *testing.T) {
	if _, err := ICCBased(nil); err == nil {
		t.Error("missing profile accepted")
	}
	if _, err := ICCBased([]byte("not an ICC profile")); err == nil {
		t.Error("malformed profile accepted")
	}
}

func TestICCBasedDecode(t *testing.T) {
	profile := &icc.Profile{
		Class:      icc.DisplayDeviceProfile,
		ColorSpace: icc.RGBSpace,
		PCS:        icc.PCSXYZSpace,
	}
	s, err := ICCBased(profile.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if s.Model() != ModelRGB || s.Channels() != 3 || s.Family() != FamilyICCBased {
		t.Errorf("got model %s, %d channels, family %s", s.Model(), s.Channels(), s.Family())
	}

	c, err := s.New([]float64{1, 0, 0}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if ModelOf(c) != ModelRGB {
		t.Errorf("color model %s", ModelOf(c))
	}
	if d := cmp.Diff([]float64{1, 0, 0, 1}, c.Components()); d != "" {
		t.Error(d)
	}
}

func TestICCBasedColor(t *testing.T) {
	s := &SpaceICCBased{N: 3, model: ModelRGB}
	c, err := s.New([]float64{0.1, 0.2, 0.3}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if ModelOf(c) != ModelRGB {
		t.Errorf("model %s", ModelOf(c))
	}
	if d := cmp.Diff([]float64{0.1, 0.2, 0.3, 1}, c.Components()); d != "" {
		t.Error(d)
	}
	if _, err := s.New([]float64{0.1}, 1); err == nil {
		t.Error("wrong number of values accepted")
	}
}
