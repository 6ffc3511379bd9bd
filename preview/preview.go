// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package preview renders e-paper frames to a terminal using ANSI color codes.
//
// Useful to work on layouts without waiting several seconds per refresh.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/GermanBionicSystems/epaper/canvas"
)

// Opts represents the options available for this display.
type Opts struct {
	Width  int
	Height int
	Format canvas.Format

	// Scale is the edge length of the square of panel pixels rendered as one
	// terminal cell. Defaults to 1.
	Scale   int
	Palette *ansi256.Palette
	// W defaults to a colorable stdout.
	W io.Writer
}

// Dev is a panel emulator that outputs to the console. It accepts the same
// frames as epd.Dev.
type Dev struct {
	w       io.Writer
	width   int
	height  int
	format  canvas.Format
	scale   int
	palette *ansi256.Palette
	asleep  bool

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) (*Dev, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("preview: invalid size %dx%d", opts.Width, opts.Height)
	}
	d := &Dev{
		w:       opts.W,
		width:   opts.Width,
		height:  opts.Height,
		format:  opts.Format,
		scale:   opts.Scale,
		palette: opts.Palette,
	}
	if d.w == nil {
		d.w = colorable.NewColorableStdout()
	}
	if d.scale <= 0 {
		d.scale = 1
	}
	if d.palette == nil {
		d.palette = ansi256.Default
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("preview.Dev{%dx%d, %s}", d.width, d.height, d.format)
}

// UpdateAndDisplayFrame renders a packed frame.
func (d *Dev) UpdateAndDisplayFrame(frame []byte) error {
	if d.asleep {
		return errors.New("preview: display is asleep")
	}
	c, err := canvas.FromBuffer(d.width, d.height, d.format, frame)
	if err != nil {
		return err
	}
	return d.render(c)
}

// Init wakes the emulator up.
func (d *Dev) Init() error {
	d.asleep = false
	return nil
}

// Sleep mimics a panel deep sleep: further frames are rejected until Init.
func (d *Dev) Sleep() error {
	d.asleep = true
	return nil
}

// Halt implements conn.Resource.
//
// It resets the terminal colors.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m"))
	return err
}

// cell returns the average color of the square at cell (cx, cy).
func (d *Dev) cell(c *canvas.Canvas, cx, cy int) color.NRGBA {
	var sum, n uint32
	for y := cy * d.scale; y < (cy+1)*d.scale && y < d.height; y++ {
		for x := cx * d.scale; x < (cx+1)*d.scale && x < d.width; x++ {
			g := color.GrayModel.Convert(c.Pixel(x, y)).(color.Gray)
			sum += uint32(g.Y)
			n++
		}
	}
	v := uint8(sum / n)
	return color.NRGBA{v, v, v, 255}
}

func (d *Dev) render(c *canvas.Canvas) error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	cols := (d.width + d.scale - 1) / d.scale
	rows := (d.height + d.scale - 1) / d.scale
	for cy := 0; cy < rows; cy++ {
		_, _ = d.buf.WriteString("\033[0m")
		for cx := 0; cx < cols; cx++ {
			_, _ = io.WriteString(&d.buf, d.palette.Block(d.cell(c, cx, cy)))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}
