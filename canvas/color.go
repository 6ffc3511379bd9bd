// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package canvas

import (
	"fmt"
	"image/color"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Color is one of the ink states a pixel can hold.
type Color uint8

// Palette.
const (
	White Color = iota // background
	Black              // foreground
	LightGray
	DarkGray
)

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	case LightGray:
		return "LightGray"
	case DarkGray:
		return "DarkGray"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	var y uint32
	switch c {
	case White:
		y = 0xFFFF
	case LightGray:
		y = 0xAAAA
	case DarkGray:
		y = 0x5555
	}
	return y, y, y, 0xFFFF
}

// Format is the number of bits used per pixel and how colors are encoded.
type Format uint8

const (
	// Mono uses one bit per pixel: 1 is White, 0 is Black. LightGray is
	// stored as White and DarkGray as Black.
	Mono Format = iota
	// Gray2 uses two bits per pixel: 0b11 White, 0b10 LightGray, 0b01
	// DarkGray, 0b00 Black.
	Gray2
)

func (f Format) String() string {
	switch f {
	case Mono:
		return "Mono"
	case Gray2:
		return "Gray2"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// BitsPerPixel returns the number of bits each pixel occupies.
func (f Format) BitsPerPixel() int {
	if f == Gray2 {
		return 2
	}
	return 1
}

// BufferSize returns the number of bytes needed for a width×height panel.
func (f Format) BufferSize(width, height int) int {
	return (width*height*f.BitsPerPixel() + 7) / 8
}

// encode returns the packed bit pattern for c.
func (f Format) encode(c Color) byte {
	if f == Gray2 {
		switch c {
		case White:
			return 0b11
		case LightGray:
			return 0b10
		case DarkGray:
			return 0b01
		}
		return 0b00
	}
	if c == White || c == LightGray {
		return 1
	}
	return 0
}

// decode is the inverse of encode.
func (f Format) decode(v byte) Color {
	if f == Gray2 {
		switch v & 0b11 {
		case 0b11:
			return White
		case 0b10:
			return LightGray
		case 0b01:
			return DarkGray
		}
		return Black
	}
	if v&1 != 0 {
		return White
	}
	return Black
}

// Model returns the color.Model converting arbitrary colors into the palette
// representable in format f.
func (f Format) Model() color.Model {
	if f == Gray2 {
		return Gray2Model
	}
	return MonoModel
}

// MonoModel converts colors to White or Black using the luminance threshold of
// image1bit.BitModel.
var MonoModel = color.ModelFunc(toMono)

// Gray2Model converts colors to the four-level palette.
var Gray2Model = color.ModelFunc(toGray2)

func toMono(c color.Color) color.Color {
	if p, ok := c.(Color); ok {
		if p == White || p == LightGray {
			return White
		}
		return Black
	}
	if image1bit.BitModel.Convert(c).(image1bit.Bit) == image1bit.On {
		return White
	}
	return Black
}

func toGray2(c color.Color) color.Color {
	if p, ok := c.(Color); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	// Rec. 601 luma on 16-bit channels.
	y := (299*r + 587*g + 114*b + 500) / 1000
	switch {
	case y >= 0xD555:
		return White
	case y >= 0x8000:
		return LightGray
	case y >= 0x2AAA:
		return DarkGray
	}
	return Black
}
