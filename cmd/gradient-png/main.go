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

// Gradient-png renders a gradient to a PNG or SVG file.
//
// Usage:
//
//	gradient-png [options] output.png
//
// If the output name ends in ".svg", an SVG image is written instead.  The
// output name "-" writes a PNG image to standard output.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/gradient"
	"seehuhn.de/go/gradient/raster"
	"seehuhn.de/go/gradient/swatch"
)

func main() {
	colors := flag.String("colors", "red,blue", "comma-separated list of stop colors")
	locations := flag.String("locations", "", "comma-separated list of stop locations")
	kind := flag.String("type", "axial", "gradient type: axial or radial")
	function := flag.String("function", "linear", "interpolation: linear, exponential or cosine")
	slope := flag.String("slope", "linear", "slope function, e.g. cubic-in-out")
	extend := flag.String("extend", "both", "extend mode: none, start, end or both")
	size := flag.String("size", "256x256", "image size in pixels, WxH")
	ring := flag.Float64("ring", 0, "if positive, only paint a ring of this width")
	oversample := flag.Int("oversample", 1, "samples per pixel in each direction")
	verbose := flag.Bool("v", false, "log debug messages to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.png\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	outputFile := flag.Arg(0)

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		gradient.SetLogger(slog.New(h))
	}

	cfg, err := parseConfig(*colors, *locations, *kind, *function, *slope, *extend, *size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g, err := gradient.New(cfg.descriptor())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating gradient: %v\n", err)
		os.Exit(1)
	}

	err = run(outputFile, g, cfg, *ring, *oversample)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(outputFile string, g *gradient.Gradient, cfg *config, ring float64, oversample int) error {
	isSVG := strings.EqualFold(filepath.Ext(outputFile), ".svg")

	var w io.Writer
	if outputFile == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("refusing to write image data to a terminal")
		}
		w = os.Stdout
	} else {
		out, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer out.Close()
		w = out
	}

	if isSVG {
		return swatch.Write(w, g, &swatch.Options{
			Width:  cfg.width,
			Height: cfg.height,
			Title:  filepath.Base(outputFile),
		})
	}

	img, err := render(g, cfg, ring, oversample)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func render(g *gradient.Gradient, cfg *config, ring float64, oversample int) (image.Image, error) {
	im := raster.NewImage(g, image.Rect(0, 0, cfg.width, cfg.height))
	img, err := raster.Render(context.Background(), im, &raster.Options{Oversample: oversample})
	if err != nil {
		return nil, err
	}
	if ring <= 0 {
		return img, nil
	}

	outer := float32(min(cfg.width, cfg.height)) / 2
	inner := outer - float32(ring)
	masked := image.NewNRGBA64(img.Bounds())
	raster.Fill(masked, img, raster.Ring(float32(cfg.width)/2, float32(cfg.height)/2, inner, outer))
	return masked, nil
}
