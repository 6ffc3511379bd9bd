// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package canvas

import "fmt"

// Rotation is the clockwise rotation of the logical coordinate system relative
// to the physical panel.
type Rotation uint8

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

func (r Rotation) String() string {
	switch r {
	case Rotate0:
		return "0°"
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	}
	return fmt.Sprintf("Rotation(%d)", uint8(r))
}

// Set sets the Rotation from a number of degrees. Set implements the
// flag.Value interface.
func (r *Rotation) Set(s string) error {
	switch s {
	case "0":
		*r = Rotate0
	case "90":
		*r = Rotate90
	case "180":
		*r = Rotate180
	case "270":
		*r = Rotate270
	default:
		return fmt.Errorf("unknown rotation %q: expected 0, 90, 180 or 270", s)
	}
	return nil
}

// FromDegrees returns the Rotation for 0, 90, 180 or 270 degrees.
func FromDegrees(deg int) (Rotation, error) {
	switch deg {
	case 0:
		return Rotate0, nil
	case 90:
		return Rotate90, nil
	case 180:
		return Rotate180, nil
	case 270:
		return Rotate270, nil
	}
	return Rotate0, fmt.Errorf("unknown rotation %d: expected 0, 90, 180 or 270", deg)
}

// swapsAxes reports whether the logical width and height are exchanged.
func (r Rotation) swapsAxes() bool {
	return r == Rotate90 || r == Rotate270
}

// LogicalSize returns the logical width and height of a panel with the given
// physical dimensions under rotation r.
func LogicalSize(r Rotation, width, height int) (int, int) {
	if r.swapsAxes() {
		return height, width
	}
	return width, height
}

// Map converts the logical coordinate (x, y) to the physical coordinate on a
// width×height panel. It does not check bounds.
func Map(x, y int, r Rotation, width, height int) (int, int) {
	switch r {
	case Rotate90:
		return width - 1 - y, x
	case Rotate180:
		return width - 1 - x, height - 1 - y
	case Rotate270:
		return y, height - 1 - x
	}
	return x, y
}

// Unmap is the inverse of Map: it converts the physical coordinate (px, py)
// back into a logical coordinate under rotation r.
func Unmap(px, py int, r Rotation, width, height int) (int, int) {
	switch r {
	case Rotate90:
		return py, width - 1 - px
	case Rotate180:
		return width - 1 - px, height - 1 - py
	case Rotate270:
		return height - 1 - py, px
	}
	return px, py
}
