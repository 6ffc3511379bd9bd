// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/GermanBionicSystems/epaper/canvas"
	"github.com/GermanBionicSystems/epaper/epd"
)

func TestConfigParses(t *testing.T) {
	cfg, err := parseConfig("testdata/epddemo.yaml")
	if err != nil {
		t.Fatalf("Bad config: %v", err)
	}

	want := defaultConfig()
	want.Panel = "2in9v2"
	want.Backend = "rpio"
	want.Pins.PWR = -1
	want.Rotation = 90
	want.BusyTimeout = 8 * time.Second
	want.RefreshTimeout = 15 * time.Second
	want.FontSizes = []float64{10, 20}
	want.PreviewScale = 4
	if diff := cmp.Diff(cfg, want); diff != "" {
		t.Errorf("config difference (-got +want):\n%s", diff)
	}

	if got := cfg.rotation(); got != canvas.Rotate90 {
		t.Errorf("rotation() = %v, want %v", got, canvas.Rotate90)
	}

	o := cfg.opts()
	if o.BusyTimeout != 8*time.Second || o.RefreshTimeout != 15*time.Second {
		t.Errorf("opts() timeouts = %v, %v", o.BusyTimeout, o.RefreshTimeout)
	}
	if epd.EPD2in9v2.BusyTimeout == o.BusyTimeout {
		t.Error("opts() modified the shared model")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := parseConfig("")
	if err != nil {
		t.Fatalf("parseConfig(\"\") failed: %v", err)
	}
	if diff := cmp.Diff(cfg, defaultConfig()); diff != "" {
		t.Errorf("config difference (-got +want):\n%s", diff)
	}
	if o := cfg.opts(); o.Width != 800 || o.Height != 480 {
		t.Errorf("opts() = %dx%d, want 800x480", o.Width, o.Height)
	}
}

func TestConfigErrors(t *testing.T) {
	if _, err := parseConfig("testdata/unknown_field.yaml"); err == nil {
		t.Error("unknown field was accepted")
	}
	if _, err := parseConfig("testdata/missing.yaml"); err == nil {
		t.Error("missing file was accepted")
	}

	data := []struct {
		name   string
		modify func(*Config)
	}{
		{"panel", func(c *Config) { c.Panel = "13in3" }},
		{"backend", func(c *Config) { c.Backend = "spidev" }},
		{"rotation", func(c *Config) { c.Rotation = 45 }},
		{"pins", func(c *Config) { c.Pins.Busy = -1 }},
		{"font size", func(c *Config) { c.FontSizes = []float64{12, 0} }},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			cfg := defaultConfig()
			line.modify(&cfg)
			if err := cfg.validate(); err == nil {
				t.Errorf("validate() accepted %+v", cfg)
			}
		})
	}
}
