// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"math"
	"os"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/GermanBionicSystems/epaper/canvas"
)

//go:embed assets/gopher.png
var gopherPNG []byte

// scene draws one screen onto a cleared canvas.
type scene struct {
	name string
	draw func(c *canvas.Canvas, now time.Time)
}

func newScenes(cfg Config) ([]scene, error) {
	fdata := goregular.TTF
	if cfg.Font != "" {
		var err error
		if fdata, err = ioutil.ReadFile(cfg.Font); err != nil {
			return nil, fmt.Errorf("loading font file: %w", err)
		}
	}
	f, err := truetype.Parse(fdata)
	if err != nil {
		return nil, fmt.Errorf("parsing font data: %w", err)
	}
	var faces []font.Face
	for _, size := range cfg.FontSizes {
		faces = append(faces, truetype.NewFace(f, &truetype.Options{
			Size:    size, // points
			Hinting: font.HintingFull,
		}))
	}

	img, err := loadImage(cfg.Image)
	if err != nil {
		return nil, err
	}

	rot := cfg.rotation()
	return []scene{
		{"rotations", func(c *canvas.Canvas, _ time.Time) {
			drawRotations(c)
			c.SetRotation(rot)
		}},
		{"clock", func(c *canvas.Canvas, now time.Time) { drawClock(c, now) }},
		{"fonts", func(c *canvas.Canvas, _ time.Time) { drawFonts(c, faces) }},
		{"image", func(c *canvas.Canvas, _ time.Time) {
			draw.Draw(c, c.Bounds(), img, img.Bounds().Min, draw.Src)
		}},
		{"clear", func(*canvas.Canvas, time.Time) {}},
	}, nil
}

// drawText writes s with its top left corner at (x, y).
func drawText(dst draw.Image, s string, x, y int) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(s)
}

// drawRotations labels each rotation in its own orientation, so the four
// labels end up along the four edges of the panel.
func drawRotations(c *canvas.Canvas) {
	for r := canvas.Rotate0; r <= canvas.Rotate270; r++ {
		c.SetRotation(r)
		drawText(c, fmt.Sprintf("Rotate %d!", 90*int(r)), 5, 50)
	}
}

// drawClock draws an analog clock face showing now, centered in the logical
// area.
func drawClock(c *canvas.Canvas, now time.Time) {
	w, h := c.Size()
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	cx, cy := float64(w)/2, float64(h)/2
	r := math.Min(cx, cy) * 0.8
	dc.SetColor(color.Black)
	dc.SetLineWidth(2)
	dc.DrawCircle(cx, cy, r)
	dc.Stroke()

	for i := 0; i < 12; i++ {
		a := float64(i) * math.Pi / 6
		dc.DrawLine(cx+0.9*r*math.Sin(a), cy-0.9*r*math.Cos(a), cx+r*math.Sin(a), cy-r*math.Cos(a))
	}
	dc.Stroke()

	hand := func(frac, length, width float64) {
		a := 2 * math.Pi * frac
		dc.SetLineWidth(width)
		dc.DrawLine(cx, cy, cx+length*math.Sin(a), cy-length*math.Cos(a))
		dc.Stroke()
	}
	m := float64(now.Minute()) + float64(now.Second())/60
	hand((float64(now.Hour()%12)+m/60)/12, 0.5*r, 4)
	hand(m/60, 0.8*r, 2)

	draw.Draw(c, c.Bounds(), dc.Image(), image.Point{}, draw.Src)
	drawText(c, now.Format("15:04"), 5, 5)
}

// drawFonts prints a line in every face, stopping at the bottom edge.
func drawFonts(c *canvas.Canvas, faces []font.Face) {
	const line = "Go is awesome!"
	w, h := c.Size()
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	y := 10.0
	for _, face := range faces {
		dc.SetFontFace(face)
		y += dc.FontHeight()
		if y > float64(h) {
			break
		}
		dc.DrawString(line, 20, y)
		y += dc.FontHeight() / 2
	}

	draw.Draw(c, c.Bounds(), dc.Image(), image.Point{}, draw.Src)
}

// loadImage decodes a PNG or JPEG file, or the embedded gopher when filename
// is empty.
func loadImage(filename string) (image.Image, error) {
	if filename == "" {
		img, _, err := image.Decode(bytes.NewReader(gopherPNG))
		return img, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loading image file: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", filename, err)
	}
	return img, nil
}
