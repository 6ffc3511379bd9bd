// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/GermanBionicSystems/epaper/canvas"
	"github.com/GermanBionicSystems/epaper/epd"
)

type Config struct {
	// Panel is a key of epd.Models.
	Panel string `yaml:"panel"`
	// Backend is "periph" or "rpio".
	Backend string `yaml:"backend"`
	// SPI is the periph port name; empty picks the first one.
	SPI string `yaml:"spi"`

	// BCM numbers. A negative pwr means the line is not wired.
	Pins struct {
		RST  int `yaml:"rst"`
		DC   int `yaml:"dc"`
		Busy int `yaml:"busy"`
		PWR  int `yaml:"pwr"`
	} `yaml:"pins"`

	Rotation int `yaml:"rotation"` // degrees

	BusyTimeout    time.Duration `yaml:"busy_timeout"`
	RefreshTimeout time.Duration `yaml:"refresh_timeout"`

	// Font is a TrueType file for the font size scene. Go Regular is used when empty.
	Font      string    `yaml:"font"`
	FontSizes []float64 `yaml:"font_sizes"`

	// Image is a PNG or JPEG drawn at the top left corner. An embedded gopher
	// is used when empty.
	Image string `yaml:"image"`

	PreviewScale int `yaml:"preview_scale"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Panel = "7in5v2"
	cfg.Backend = "periph"
	cfg.Pins.RST = 17
	cfg.Pins.DC = 25
	cfg.Pins.Busy = 24
	cfg.Pins.PWR = 18
	cfg.FontSizes = []float64{8, 10, 12, 14, 18, 24, 32}
	cfg.PreviewScale = 8
	return cfg
}

// parseConfig reads filename over the defaults. An empty filename returns the
// defaults.
func parseConfig(filename string) (Config, error) {
	cfg := defaultConfig()
	if filename == "" {
		return cfg, cfg.validate()
	}
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %v", filename, err)
	}
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config from %s: %v", filename, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %v", filename, err)
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if _, ok := epd.Models[cfg.Panel]; !ok {
		return fmt.Errorf("unknown panel %q", cfg.Panel)
	}
	switch cfg.Backend {
	case "periph", "rpio":
	default:
		return fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	if _, err := canvas.FromDegrees(cfg.Rotation); err != nil {
		return err
	}
	if cfg.Pins.RST < 0 || cfg.Pins.DC < 0 || cfg.Pins.Busy < 0 {
		return fmt.Errorf("rst, dc and busy pins are required")
	}
	for _, s := range cfg.FontSizes {
		if s <= 0 {
			return fmt.Errorf("invalid font size %v", s)
		}
	}
	return nil
}

// opts returns a copy of the panel model with the configured timeouts.
func (cfg Config) opts() *epd.Opts {
	o := *epd.Models[cfg.Panel]
	if cfg.BusyTimeout > 0 {
		o.BusyTimeout = cfg.BusyTimeout
	}
	if cfg.RefreshTimeout > 0 {
		o.RefreshTimeout = cfg.RefreshTimeout
	}
	return &o
}

func (cfg Config) rotation() canvas.Rotation {
	r, _ := canvas.FromDegrees(cfg.Rotation)
	return r
}
