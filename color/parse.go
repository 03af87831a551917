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
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// Parse converts a textual color description into a DeviceRGB color.
//
// The following forms are recognized:
//   - hexadecimal notation "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa"
//     (the leading "#" is optional)
//   - one of the SVG 1.1 color keywords, for example "steelblue";
//     keywords are matched without regard to case
func Parse(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGBA{}, fmt.Errorf("invalid color %q", s)
	}

	if c, ok := Named(s); ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	c, err := parseHex(hex)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return c, nil
}

// Named returns the SVG 1.1 color with the given name.
func Named(name string) (RGBA, bool) {
	c, ok := colornames.Map[fold.String(name)]
	if !ok {
		return RGBA{}, false
	}
	return FromStd(c), true
}

func parseHex(hex string) (RGBA, error) {
	var digits, n int
	switch len(hex) {
	case 3, 4:
		digits, n = 1, len(hex)
	case 6, 8:
		digits, n = 2, len(hex)/2
	default:
		return RGBA{}, fmt.Errorf("invalid length %d", len(hex))
	}

	v := [4]float64{0, 0, 0, 1}
	max := float64(int(1)<<(4*digits) - 1)
	for i := range n {
		x, err := strconv.ParseUint(hex[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return RGBA{}, err
		}
		v[i] = float64(x) / max
	}
	return RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}
