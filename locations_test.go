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

package gradient

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMonotonic(t *testing.T) {
	tests := []struct {
		n    int
		want []float64
	}{
		{0, nil},
		{1, []float64{0}},
		{2, []float64{0, 1}},
		{3, []float64{0, 0.5, 1}},
		{5, []float64{0, 0.25, 0.5, 0.75, 1}},
	}
	for _, test := range tests {
		got := Monotonic(test.n)
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("Monotonic(%d): %s", test.n, d)
		}
	}
}

func TestMonotonicProperties(t *testing.T) {
	for n := 2; n <= 50; n++ {
		pos := Monotonic(n)
		if len(pos) != n {
			t.Fatalf("n=%d: got %d positions", n, len(pos))
		}
		if pos[0] != 0 || pos[n-1] != 1 {
			t.Errorf("n=%d: end points %g, %g", n, pos[0], pos[n-1])
		}
		for i := 1; i < n; i++ {
			if pos[i] < pos[i-1] {
				t.Errorf("n=%d: position %d decreases", n, i)
			}
		}
	}
}

func TestNormalizeLocations(t *testing.T) {
	got, err := normalizeLocations([]float64{0.3}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{0.3, 1}, got); d != "" {
		t.Error(d)
	}

	got, err = normalizeLocations(nil, 4)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Monotonic(4), got); d != "" {
		t.Error(d)
	}

	// equal neighbours are allowed
	_, err = normalizeLocations([]float64{0, 0.5, 0.5, 1}, 4)
	if err != nil {
		t.Error(err)
	}

	_, err = normalizeLocations([]float64{0.2, 0.1}, 2)
	want := &NonMonotonicLocationsError{Index: 1, Prev: 0.2, Value: 0.1}
	var got2 *NonMonotonicLocationsError
	if !errors.As(err, &got2) {
		t.Fatalf("unexpected error %v", err)
	}
	if d := cmp.Diff(want, got2); d != "" {
		t.Error(d)
	}

	// a single location is only completed for two colors
	_, err = normalizeLocations([]float64{0.3}, 3)
	if !errors.Is(err, &InvalidGradientError{}) {
		t.Errorf("unexpected error %v", err)
	}
}
