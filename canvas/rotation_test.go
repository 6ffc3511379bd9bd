// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package canvas

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var allRotations = []Rotation{Rotate0, Rotate90, Rotate180, Rotate270}

func TestMap(t *testing.T) {
	for _, tc := range []struct {
		name string
		r    Rotation
		in   image.Point
		want image.Point
	}{
		{name: "0, origin", r: Rotate0, in: image.Pt(0, 0), want: image.Pt(0, 0)},
		{name: "0", r: Rotate0, in: image.Pt(5, 7), want: image.Pt(5, 7)},
		{name: "90, origin", r: Rotate90, in: image.Pt(0, 0), want: image.Pt(127, 0)},
		{name: "90", r: Rotate90, in: image.Pt(5, 7), want: image.Pt(120, 5)},
		{name: "90, far corner", r: Rotate90, in: image.Pt(295, 127), want: image.Pt(0, 295)},
		{name: "180, origin", r: Rotate180, in: image.Pt(0, 0), want: image.Pt(127, 295)},
		{name: "180", r: Rotate180, in: image.Pt(5, 7), want: image.Pt(122, 288)},
		{name: "270, origin", r: Rotate270, in: image.Pt(0, 0), want: image.Pt(0, 295)},
		{name: "270", r: Rotate270, in: image.Pt(5, 7), want: image.Pt(7, 290)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			x, y := Map(tc.in.X, tc.in.Y, tc.r, 128, 296)

			if diff := cmp.Diff(image.Pt(x, y), tc.want); diff != "" {
				t.Errorf("Map() difference (-got +want):\n%s", diff)
			}
		})
	}
}

func TestMapRoundTrip(t *testing.T) {
	const width, height = 16, 24

	for _, r := range allRotations {
		t.Run(r.String(), func(t *testing.T) {
			lw, lh := LogicalSize(r, width, height)
			seen := map[image.Point]bool{}

			for y := 0; y < lh; y++ {
				for x := 0; x < lw; x++ {
					px, py := Map(x, y, r, width, height)

					if px < 0 || py < 0 || px >= width || py >= height {
						t.Fatalf("Map(%d, %d) = (%d, %d) outside %dx%d", x, y, px, py, width, height)
					}

					p := image.Pt(px, py)
					if seen[p] {
						t.Fatalf("Map(%d, %d) = %v hit twice", x, y, p)
					}
					seen[p] = true

					if gx, gy := Unmap(px, py, r, width, height); gx != x || gy != y {
						t.Errorf("Unmap(Map(%d, %d)) = (%d, %d)", x, y, gx, gy)
					}
				}
			}

			if len(seen) != width*height {
				t.Errorf("Map() covered %d pixels, want %d", len(seen), width*height)
			}
		})
	}
}

func TestRotate90FourTimes(t *testing.T) {
	const width, height = 10, 6

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Each step treats the previous point as physical and moves it
			// into the logical space of a 90° canvas, whose axes are swapped.
			px, py := x, y
			w, h := width, height
			for i := 0; i < 4; i++ {
				px, py = Unmap(px, py, Rotate90, w, h)
				w, h = h, w
			}

			if px != x || py != y {
				t.Errorf("four 90° steps from (%d, %d) ended at (%d, %d)", x, y, px, py)
			}
		}
	}
}

func TestRotate90Twice(t *testing.T) {
	const width, height = 10, 6

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// (x, y) is logical on a height×width 90° panel; its physical
			// point is logical again on a width×height 90° panel.
			mx, my := Map(x, y, Rotate90, height, width)
			mx, my = Map(mx, my, Rotate90, width, height)

			wx, wy := Map(x, y, Rotate180, width, height)

			if mx != wx || my != wy {
				t.Errorf("90°∘90° of (%d, %d) = (%d, %d), 180° = (%d, %d)", x, y, mx, my, wx, wy)
			}
		}
	}
}

func TestRotationSet(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    Rotation
		wantErr bool
	}{
		{in: "0", want: Rotate0},
		{in: "90", want: Rotate90},
		{in: "180", want: Rotate180},
		{in: "270", want: Rotate270},
		{in: "45", wantErr: true},
		{in: "", wantErr: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			var got Rotation
			err := got.Set(tc.in)

			if (err != nil) != tc.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Set(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFromDegrees(t *testing.T) {
	for deg, want := range map[int]Rotation{0: Rotate0, 90: Rotate90, 180: Rotate180, 270: Rotate270} {
		got, err := FromDegrees(deg)
		if err != nil {
			t.Errorf("FromDegrees(%d) failed: %v", deg, err)
		}
		if got != want {
			t.Errorf("FromDegrees(%d) = %v, want %v", deg, got, want)
		}
	}

	if _, err := FromDegrees(-90); err == nil {
		t.Error("FromDegrees(-90) did not fail")
	}
}
