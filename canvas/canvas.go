// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Canvas is an in-memory framebuffer with a runtime rotation.
//
// Canvas implements draw.Image in logical coordinates, so any image/draw based
// renderer can target it.
type Canvas struct {
	width, height int
	format        Format
	rotation      Rotation
	buf           []byte
}

// New returns a width×height Canvas (physical dimensions) filled with White.
func New(width, height int, format Format) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: invalid size %dx%d", width, height)
	}
	if format != Mono && format != Gray2 {
		return nil, fmt.Errorf("canvas: unknown format %v", format)
	}
	c := &Canvas{
		width:  width,
		height: height,
		format: format,
		buf:    make([]byte, format.BufferSize(width, height)),
	}
	c.Clear(White)
	return c, nil
}

// FromBuffer returns a Canvas holding a copy of a packed frame, as returned by
// Buffer, with rotation 0.
func FromBuffer(width, height int, format Format, buf []byte) (*Canvas, error) {
	c, err := New(width, height, format)
	if err != nil {
		return nil, err
	}
	if len(buf) != len(c.buf) {
		return nil, fmt.Errorf("canvas: buffer is %d bytes, want %d", len(buf), len(c.buf))
	}
	copy(c.buf, buf)
	return c, nil
}

func (c *Canvas) String() string {
	return fmt.Sprintf("canvas.Canvas{%dx%d, %s, %s}", c.width, c.height, c.format, c.rotation)
}

// Width returns the physical width.
func (c *Canvas) Width() int { return c.width }

// Height returns the physical height.
func (c *Canvas) Height() int { return c.height }

// Format returns the pixel format.
func (c *Canvas) Format() Format { return c.format }

// Rotation returns the current rotation.
func (c *Canvas) Rotation() Rotation { return c.rotation }

// SetRotation changes how subsequent logical coordinates are mapped. The
// buffer contents and layout are left untouched.
func (c *Canvas) SetRotation(r Rotation) {
	c.rotation = r & 3
}

// Size returns the logical width and height under the current rotation.
func (c *Canvas) Size() (int, int) {
	return LogicalSize(c.rotation, c.width, c.height)
}

// Buffer returns the packed pixels in physical layout. The slice aliases the
// Canvas storage; callers must not modify it.
func (c *Canvas) Buffer() []byte {
	return c.buf
}

// locate returns the byte index and shift of the physical pixel (px, py).
func (c *Canvas) locate(px, py int) (int, uint) {
	i := py*c.width + px
	if c.format == Gray2 {
		return i / 4, uint(6 - 2*(i%4))
	}
	return i / 8, uint(7 - i%8)
}

func (c *Canvas) mask() byte {
	if c.format == Gray2 {
		return 0b11
	}
	return 1
}

// physical maps a logical coordinate and reports whether it is in range.
func (c *Canvas) physical(x, y int) (int, int, bool) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0, 0, false
	}
	px, py := Map(x, y, c.rotation, c.width, c.height)
	return px, py, true
}

// DrawPixel sets the pixel at logical (x, y). Coordinates outside the logical
// bounds are ignored.
func (c *Canvas) DrawPixel(x, y int, col Color) {
	px, py, ok := c.physical(x, y)
	if !ok {
		return
	}
	i, shift := c.locate(px, py)
	m := c.mask() << shift
	c.buf[i] = c.buf[i]&^m | c.format.encode(col)<<shift
}

// Pixel returns the color at logical (x, y), or White when out of bounds.
func (c *Canvas) Pixel(x, y int) Color {
	px, py, ok := c.physical(x, y)
	if !ok {
		return White
	}
	i, shift := c.locate(px, py)
	return c.format.decode(c.buf[i] >> shift)
}

// Clear fills every pixel with col.
func (c *Canvas) Clear(col Color) {
	v := c.format.encode(col)
	var b byte
	for shift := 0; shift < 8; shift += c.format.BitsPerPixel() {
		b |= v << uint(shift)
	}
	for i := range c.buf {
		c.buf[i] = b
	}
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return c.format.Model()
}

// Bounds implements image.Image. It reflects the logical size.
func (c *Canvas) Bounds() image.Rectangle {
	w, h := c.Size()
	return image.Rect(0, 0, w, h)
}

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color {
	return c.Pixel(x, y)
}

// Set implements draw.Image.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.DrawPixel(x, y, c.format.Model().Convert(col).(Color))
}

var _ draw.Image = &Canvas{}
