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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gradient"
	"seehuhn.de/go/gradient/color"
	"seehuhn.de/go/gradient/easing"
)

// config holds the parsed command line arguments.
type config struct {
	colors        []color.Color
	locations     []float64
	radial        bool
	interpolation gradient.Interpolation
	slope         easing.Func
	extendStart   bool
	extendEnd     bool
	width, height int
}

// parseConfig converts the string values of the command line flags.
func parseConfig(colors, locations, kind, function, slope, extend, size string) (*config, error) {
	c := &config{}
	var err error

	c.colors, err = parseColors(colors)
	if err != nil {
		return nil, err
	}
	c.locations, err = parseLocations(locations)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(kind) {
	case "axial", "linear":
	case "radial":
		c.radial = true
	default:
		return nil, fmt.Errorf("unknown gradient type %q", kind)
	}

	c.interpolation, err = gradient.ParseInterpolation(function)
	if err != nil {
		return nil, err
	}

	var ok bool
	c.slope, ok = easing.Lookup(slope)
	if !ok {
		return nil, fmt.Errorf("unknown slope %q (known: %s)",
			slope, strings.Join(easing.Names(), ", "))
	}

	c.extendStart, c.extendEnd, err = parseExtend(extend)
	if err != nil {
		return nil, err
	}

	c.width, c.height, err = parseSize(size)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func parseColors(s string) ([]color.Color, error) {
	var res []color.Color
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		c, err := color.Parse(field)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("no colors given")
	}
	return res, nil
}

func parseLocations(s string) ([]float64, error) {
	var res []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		x, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid location %q", field)
		}
		res = append(res, x)
	}
	return res, nil
}

func parseExtend(s string) (start, end bool, err error) {
	switch strings.ToLower(s) {
	case "", "none":
		return false, false, nil
	case "start":
		return true, false, nil
	case "end":
		return false, true, nil
	case "both":
		return true, true, nil
	}
	return false, false, fmt.Errorf("invalid extend mode %q", s)
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	w, err1 := strconv.Atoi(ws)
	h, err2 := strconv.Atoi(hs)
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	return w, h, nil
}

// descriptor returns the gradient described by the configuration.  Axial
// gradients run from the left to the right edge of the image, radial
// gradients from the centre to the nearest edge.
func (c *config) descriptor() *gradient.Descriptor {
	w, h := float64(c.width), float64(c.height)
	var geom gradient.Geometry
	if c.radial {
		centre := vec.Vec2{X: w / 2, Y: h / 2}
		geom = &gradient.Radial{
			StartCenter: centre,
			EndCenter:   centre,
			EndRadius:   min(w, h) / 2,
		}
	} else {
		geom = &gradient.Axial{
			Start: vec.Vec2{X: 0, Y: h / 2},
			End:   vec.Vec2{X: w, Y: h / 2},
		}
	}
	return &gradient.Descriptor{
		Colors:        c.colors,
		Locations:     c.locations,
		Geometry:      geom,
		ExtendStart:   c.extendStart,
		ExtendEnd:     c.extendEnd,
		Interpolation: c.interpolation,
		Slope:         c.slope,
	}
}
