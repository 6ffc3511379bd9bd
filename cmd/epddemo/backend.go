// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/epaper/canvas"
	"github.com/GermanBionicSystems/epaper/epd"
	"github.com/GermanBionicSystems/epaper/preview"
	"github.com/GermanBionicSystems/epaper/rpioconn"
)

// panel is what a demo cycle drives. Both epd.Dev and preview.Dev satisfy it.
type panel interface {
	Init() error
	UpdateAndDisplayFrame(frame []byte) error
	Sleep() error
}

// backend hands out one panel per cycle. An epd.Dev cannot leave deep sleep,
// so each cycle gets a fresh one on the same bus.
type backend struct {
	open  func() (panel, error)
	close func() error
}

func newBackend(cfg Config, usePreview bool, w io.Writer) (*backend, error) {
	opts := cfg.opts()
	if usePreview {
		p, err := preview.New(&preview.Opts{
			Width:  opts.Width,
			Height: opts.Height,
			Format: canvas.Mono,
			Scale:  cfg.PreviewScale,
			W:      w,
		})
		if err != nil {
			return nil, err
		}
		return &backend{
			open:  func() (panel, error) { return p, nil },
			close: p.Halt,
		}, nil
	}

	switch cfg.Backend {
	case "rpio":
		return newRPIOBackend(cfg, opts)
	default:
		return newPeriphBackend(cfg, opts)
	}
}

func newPeriphBackend(cfg Config, opts *epd.Opts) (*backend, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("initializing periph: %v", err)
	}
	port, err := spireg.Open(cfg.SPI)
	if err != nil {
		return nil, fmt.Errorf("opening SPI port: %v", err)
	}
	c, err := opts.Connect(port)
	if err != nil {
		port.Close()
		return nil, err
	}
	pins, err := periphPins(cfg)
	if err != nil {
		port.Close()
		return nil, err
	}
	debugf("Using %s with %s", c, opts.Name)

	return &backend{
		open:  func() (panel, error) { return epd.New(c, pins, nil, opts) },
		close: port.Close,
	}, nil
}

func periphPins(cfg Config) (epd.Pins, error) {
	lookup := func(n int) (gpio.PinIO, error) {
		p := gpioreg.ByName(fmt.Sprintf("GPIO%d", n))
		if p == nil {
			return nil, fmt.Errorf("no such pin GPIO%d", n)
		}
		return p, nil
	}

	var pins epd.Pins
	rst, err := lookup(cfg.Pins.RST)
	if err != nil {
		return pins, err
	}
	dc, err := lookup(cfg.Pins.DC)
	if err != nil {
		return pins, err
	}
	busy, err := lookup(cfg.Pins.Busy)
	if err != nil {
		return pins, err
	}
	if err := busy.In(gpio.Float, gpio.NoEdge); err != nil {
		return pins, err
	}
	pins = epd.Pins{RST: rst, DC: dc, Busy: busy}
	if cfg.Pins.PWR >= 0 {
		pwr, err := lookup(cfg.Pins.PWR)
		if err != nil {
			return epd.Pins{}, err
		}
		pins.PWR = pwr
	}
	return pins, nil
}

func newRPIOBackend(cfg Config, opts *epd.Opts) (*backend, error) {
	bus, err := rpioconn.Open(opts.Speed)
	if err != nil {
		return nil, err
	}
	pins := rpioconn.Pins(cfg.Pins.RST, cfg.Pins.DC, cfg.Pins.Busy, cfg.Pins.PWR)
	debugf("Using %s with %s", bus, opts.Name)

	return &backend{
		open:  func() (panel, error) { return epd.New(bus, pins, nil, opts) },
		close: bus.Close,
	}, nil
}
