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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#f00", DeviceRGB(1, 0, 0)},
		{"0f0", DeviceRGB(0, 1, 0)},
		{"#00f8", DeviceRGBA(0, 0, 1, 8.0/15)},
		{"#ff8000", DeviceRGB(1, 128.0/255, 0)},
		{"#00000080", DeviceRGBA(0, 0, 0, 128.0/255)},
		{"red", DeviceRGB(1, 0, 0)},
		{"Blue", DeviceRGB(0, 0, 1)},
		{"  STEELBLUE ", DeviceRGB(70.0/255, 130.0/255, 180.0/255)},
	}
	for _, test := range tests {
		got, err := Parse(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if d := cmp.Diff(test.want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("%q: %s", test.in, d)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#ggg", "no-such-color"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}
