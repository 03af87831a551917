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

package raster

import (
	"context"
	"errors"
	"image"
	stdcolor "image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gradient"
	"seehuhn.de/go/gradient/color"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func redBlue(t *testing.T, geom gradient.Geometry, extend bool) *gradient.Gradient {
	t.Helper()
	g, err := gradient.New(&gradient.Descriptor{
		Colors:      []color.Color{color.DeviceRGB(1, 0, 0), color.DeviceRGB(0, 0, 1)},
		Geometry:    geom,
		ExtendStart: extend,
		ExtendEnd:   extend,
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestImageAt(t *testing.T) {
	g := redBlue(t, &gradient.Axial{End: vec.Vec2{X: 10}}, false)
	im := NewImage(g, image.Rect(0, 0, 10, 1))

	if d := cmp.Diff(g.Evaluate(0.05), im.RGBAAt(0, 0), approx); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(g.Evaluate(0.95), im.RGBAAt(9, 0), approx); d != "" {
		t.Error(d)
	}
	if c := im.RGBAAt(10, 0); c != (color.RGBA{}) {
		t.Errorf("pixel outside bounds: %v", c)
	}

	im.ToUser = matrix.Matrix{2, 0, 0, 2, 0, 0}
	if d := cmp.Diff(g.Evaluate(0.1), im.RGBAAt(0, 0), approx); d != "" {
		t.Error(d)
	}
}

func TestImageTranslation(t *testing.T) {
	g := redBlue(t, &gradient.Axial{End: vec.Vec2{X: 10}}, false)
	im := NewImage(g, image.Rect(0, 0, 10, 10))

	// shift by 5 units in x, and mirror y without affecting the axis
	im.ToUser = matrix.Matrix{1, 0, 0, -1, 5, 10}
	for y := range 10 {
		if d := cmp.Diff(g.Evaluate(0.55), im.RGBAAt(0, y), approx); d != "" {
			t.Errorf("row %d: %s", y, d)
		}
	}
	if c := im.RGBAAt(5, 0); c != im.Background {
		t.Errorf("pixel beyond the axis: got %v", c)
	}
}

func TestImageBackground(t *testing.T) {
	bg := color.DeviceRGBA(0, 1, 0, 0.5)
	geom := &gradient.Axial{Start: vec.Vec2{X: 2}, End: vec.Vec2{X: 8}}

	im := NewImage(redBlue(t, geom, false), image.Rect(0, 0, 10, 1))
	im.Background = bg
	if c := im.RGBAAt(0, 0); c != bg {
		t.Errorf("got %v, want background", c)
	}

	im.Gradient = redBlue(t, geom, true)
	if c := im.RGBAAt(0, 0); c != color.DeviceRGB(1, 0, 0) {
		t.Errorf("got %v, want red", c)
	}
}

func TestModel(t *testing.T) {
	c := Model.Convert(stdcolor.NRGBA{R: 255, A: 255})
	want := color.DeviceRGB(1, 0, 0)
	if d := cmp.Diff(want, c, approx); d != "" {
		t.Error(d)
	}
}

func TestRender(t *testing.T) {
	geom := &gradient.Radial{
		StartCenter: vec.Vec2{X: 3, Y: 2},
		EndCenter:   vec.Vec2{X: 3.5, Y: 2.5},
		EndRadius:   3,
	}
	im := NewImage(redBlue(t, geom, false), image.Rect(0, 0, 7, 5))
	im.Background = color.DeviceRGB(1, 1, 1)

	out, err := Render(context.Background(), im, &Options{Workers: 3})
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds() != im.Rect {
		t.Fatalf("bounds %v", out.Bounds())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			want := im.RGBAAt(x, y).NRGBA64()
			if got := out.NRGBA64At(x, y); got != want {
				t.Errorf("pixel (%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRenderOversample(t *testing.T) {
	green := color.DeviceRGB(0, 1, 0)
	g, err := gradient.New(&gradient.Descriptor{
		Colors:      []color.Color{green},
		Geometry:    &gradient.Axial{End: vec.Vec2{X: 1}},
		ExtendStart: true,
		ExtendEnd:   true,
	})
	if err != nil {
		t.Fatal(err)
	}
	im := NewImage(g, image.Rect(0, 0, 4, 4))

	out, err := Render(context.Background(), im, &Options{Oversample: 3})
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds() != im.Rect {
		t.Fatalf("bounds %v", out.Bounds())
	}
	near := func(a, b uint16) bool {
		d := int(a) - int(b)
		return d > -16 && d < 16
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := out.NRGBA64At(x, y)
			if !near(c.R, 0) || !near(c.G, 0xffff) || !near(c.B, 0) || !near(c.A, 0xffff) {
				t.Errorf("pixel (%d, %d): %v", x, y, c)
			}
		}
	}
}

func TestRenderCanceled(t *testing.T) {
	im := NewImage(redBlue(t, &gradient.Axial{End: vec.Vec2{X: 1}}, true), image.Rect(0, 0, 8, 8))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Render(ctx, im, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestFillRing(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	Clear(dst, stdcolor.White)
	Fill(dst, image.NewUniform(stdcolor.RGBA{R: 255, A: 255}), Ring(10, 10, 4, 8))

	isWhite := func(c stdcolor.RGBA) bool { return c.R > 250 && c.G > 250 && c.B > 250 }
	isRed := func(c stdcolor.RGBA) bool { return c.R > 250 && c.G < 5 && c.B < 5 }

	if c := dst.RGBAAt(10, 10); !isWhite(c) {
		t.Errorf("hole: %v", c)
	}
	if c := dst.RGBAAt(16, 10); !isRed(c) {
		t.Errorf("ring: %v", c)
	}
	if c := dst.RGBAAt(3, 10); !isRed(c) {
		t.Errorf("ring: %v", c)
	}
	if c := dst.RGBAAt(0, 0); !isWhite(c) {
		t.Errorf("outside: %v", c)
	}
}

func TestFillRect(t *testing.T) {
	g := redBlue(t, &gradient.Axial{End: vec.Vec2{X: 10}}, true)
	src := NewImage(g, image.Rect(0, 0, 10, 10))

	dst := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	Clear(dst, stdcolor.Black)
	Fill(dst, src, Rect(2, 2, 6, 6))

	if c := dst.NRGBAAt(1, 1); c != (stdcolor.NRGBA{A: 255}) {
		t.Errorf("outside: %v", c)
	}
	want := stdcolor.NRGBAModel.Convert(src.At(3, 3)).(stdcolor.NRGBA)
	got := dst.NRGBAAt(3, 3)
	diff := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	if diff(got.R, want.R) > 1 || diff(got.G, want.G) > 1 || diff(got.B, want.B) > 1 {
		t.Errorf("inside: got %v, want %v", got, want)
	}
}
