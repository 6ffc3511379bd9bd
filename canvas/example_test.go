// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package canvas_test

import (
	"fmt"
	"image"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/GermanBionicSystems/epaper/canvas"
)

func Example() {
	c, err := canvas.New(128, 296, canvas.Mono)
	if err != nil {
		log.Fatal(err)
	}

	// Landscape: 296 wide, 128 high.
	c.SetRotation(canvas.Rotate90)

	f := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  c,
		Src:  &image.Uniform{C: canvas.Black},
		Face: f,
		Dot:  fixed.P(5, 50),
	}
	drawer.DrawString("Rotate 90!")

	w, h := c.Size()
	fmt.Println(w, h, len(c.Buffer()))
	// Output: 296 128 4736
}

func ExampleMap() {
	x, y := canvas.Map(0, 0, canvas.Rotate90, 128, 296)
	fmt.Println(x, y)
	// Output: 127 0
}
