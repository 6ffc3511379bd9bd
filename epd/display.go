// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/GermanBionicSystems/epaper/canvas"
	"periph.io/x/conn/v3/display"
	"tinygo.org/x/drivers"
)

// Display couples a Dev with a canvas of the panel size. It implements
// display.Drawer for periph users and drivers.Displayer for tinygo style
// drawing code.
type Display struct {
	dev    *Dev
	canvas *canvas.Canvas
}

// NewDisplay returns a Display with a white canvas under rotation r.
func NewDisplay(dev *Dev, r canvas.Rotation) (*Display, error) {
	c, err := canvas.New(dev.opts.Width, dev.opts.Height, canvas.Mono)
	if err != nil {
		return nil, err
	}
	c.SetRotation(r)

	return &Display{dev: dev, canvas: c}, nil
}

// Canvas returns the framebuffer drawing operations write to.
func (d *Display) Canvas() *canvas.Canvas {
	return d.canvas
}

// Dev returns the underlying panel handler.
func (d *Display) Dev() *Dev {
	return d.dev
}

// Size implements drivers.Displayer. It returns the logical size.
func (d *Display) Size() (x, y int16) {
	w, h := d.canvas.Size()
	return int16(w), int16(h)
}

// SetPixel implements drivers.Displayer.
func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	d.canvas.Set(int(x), int(y), c)
}

// Display implements drivers.Displayer. It sends the canvas and refreshes the
// panel.
func (d *Display) Display() error {
	return d.dev.UpdateAndDisplayFrame(d.canvas.Buffer())
}

// ColorModel implements display.Drawer.
func (d *Display) ColorModel() color.Model {
	return d.canvas.ColorModel()
}

// Bounds implements display.Drawer. It returns the logical bounds.
func (d *Display) Bounds() image.Rectangle {
	return d.canvas.Bounds()
}

// Draw implements display.Drawer. The image is drawn onto the canvas, then the
// whole frame is sent and refreshed.
func (d *Display) Draw(dstRect image.Rectangle, src image.Image, sp image.Point) error {
	draw.Src.Draw(d.canvas, dstRect, src, sp)
	return d.Display()
}

// Halt implements conn.Resource.
func (d *Display) Halt() error {
	return d.dev.Halt()
}

func (d *Display) String() string {
	return fmt.Sprintf("epd.Display{%s, %s}", d.dev, d.canvas)
}

var _ display.Drawer = &Display{}
var _ drivers.Displayer = &Display{}
var _ Bus = drivers.SPI(nil)
