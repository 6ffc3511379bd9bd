// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maruel/ansi256"

	"github.com/GermanBionicSystems/epaper/canvas"
)

func TestRender(t *testing.T) {
	var out bytes.Buffer
	d, err := New(&Opts{Width: 8, Height: 2, W: &out})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Row 0: left half black. Row 1: white.
	if err := d.UpdateAndDisplayFrame([]byte{0x0F, 0xFF}); err != nil {
		t.Fatalf("UpdateAndDisplayFrame() failed: %v", err)
	}

	black := ansi256.Default.Block(color.NRGBA{0, 0, 0, 255})
	white := ansi256.Default.Block(color.NRGBA{0xFF, 0xFF, 0xFF, 255})
	want := "\033[0m" + strings.Repeat(black, 4) + strings.Repeat(white, 4) + "\033[0m\n" +
		"\033[0m" + strings.Repeat(white, 8) + "\033[0m\n"

	if diff := cmp.Diff(out.String(), want); diff != "" {
		t.Errorf("output difference (-got +want):\n%s", diff)
	}
}

func TestRenderScaled(t *testing.T) {
	var out bytes.Buffer
	d, err := New(&Opts{Width: 4, Height: 4, Format: canvas.Gray2, Scale: 2, W: &out})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	c, err := canvas.New(4, 4, canvas.Gray2)
	if err != nil {
		t.Fatalf("canvas.New() failed: %v", err)
	}
	c.DrawPixel(0, 0, canvas.Black)

	if err := d.UpdateAndDisplayFrame(c.Buffer()); err != nil {
		t.Fatalf("UpdateAndDisplayFrame() failed: %v", err)
	}

	if got := strings.Count(out.String(), "\n"); got != 2 {
		t.Errorf("rendered %d rows, want 2", got)
	}
	// One black of four pixels averages to 0xBF.
	if !strings.Contains(out.String(), ansi256.Default.Block(color.NRGBA{0xBF, 0xBF, 0xBF, 255})) {
		t.Errorf("output %q lacks the averaged cell", out.String())
	}
}

func TestSleep(t *testing.T) {
	d, err := New(&Opts{Width: 8, Height: 1, W: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := d.Sleep(); err != nil {
		t.Fatalf("Sleep() failed: %v", err)
	}
	if err := d.UpdateAndDisplayFrame([]byte{0xFF}); err == nil {
		t.Error("UpdateAndDisplayFrame() after Sleep() did not fail")
	}

	if err := d.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := d.UpdateAndDisplayFrame([]byte{0xFF}); err != nil {
		t.Errorf("UpdateAndDisplayFrame() after Init() failed: %v", err)
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := New(&Opts{Width: 0, Height: 4}); err == nil {
		t.Error("New() with zero width did not fail")
	}
}

func TestInvalidFrame(t *testing.T) {
	d, err := New(&Opts{Width: 8, Height: 1, W: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := d.UpdateAndDisplayFrame([]byte{0xFF, 0xFF}); err == nil {
		t.Error("UpdateAndDisplayFrame() with 2 bytes did not fail")
	}
}
