// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd

import (
	"fmt"
	"time"

	"github.com/GermanBionicSystems/epaper/canvas"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Chip is the controller IC family of a panel.
type Chip uint8

const (
	// UC8179 is used by the 7.5 inch V2 panel.
	UC8179 Chip = iota + 1
	// SSD1680 is used by the 2.9 inch V2 panel.
	SSD1680
)

func (c Chip) String() string {
	switch c {
	case UC8179:
		return "UC8179"
	case SSD1680:
		return "SSD1680"
	}
	return fmt.Sprintf("Chip(%d)", uint8(c))
}

// busyLevel is the level of the busy line while the panel is working.
func (c Chip) busyLevel() gpio.Level {
	if c == UC8179 {
		return gpio.Low
	}
	return gpio.High
}

// pollsStatus reports whether the busy line only updates after a status
// command.
func (c Chip) pollsStatus() bool {
	return c == UC8179
}

// inverted reports whether panel RAM uses 1 for black, the opposite of the
// canvas convention.
func (c Chip) inverted() bool {
	return c == UC8179
}

// Opts defines the structure of the display configuration.
type Opts struct {
	Name   string
	Width  int
	Height int
	Chip   Chip

	// Speed is the SPI clock used by NewSPI and NewHat.
	Speed physic.Frequency

	// The reset line is held low for ResetPulse, then high for ResetSettle.
	ResetPulse  time.Duration
	ResetSettle time.Duration

	// BusyPoll is the delay between two reads of the busy line. BusyTimeout
	// bounds every wait except the one following a refresh, which is bounded
	// by RefreshTimeout.
	BusyPoll       time.Duration
	BusyTimeout    time.Duration
	RefreshTimeout time.Duration
}

// EPD7in5v2 contains display configuration for the Waveshare 7.5 inch V2.
var EPD7in5v2 = Opts{
	Name:           "EPD7in5v2",
	Width:          800,
	Height:         480,
	Chip:           UC8179,
	Speed:          10 * physic.MegaHertz,
	ResetPulse:     2 * time.Millisecond,
	ResetSettle:    20 * time.Millisecond,
	BusyPoll:       10 * time.Millisecond,
	BusyTimeout:    5 * time.Second,
	RefreshTimeout: 30 * time.Second,
}

// EPD2in9v2 contains display configuration for the Waveshare 2.9 inch V2.
var EPD2in9v2 = Opts{
	Name:           "EPD2in9v2",
	Width:          128,
	Height:         296,
	Chip:           SSD1680,
	Speed:          4 * physic.MegaHertz,
	ResetPulse:     2 * time.Millisecond,
	ResetSettle:    10 * time.Millisecond,
	BusyPoll:       10 * time.Millisecond,
	BusyTimeout:    5 * time.Second,
	RefreshTimeout: 10 * time.Second,
}

// Models lists the predefined configurations by name.
var Models = map[string]*Opts{
	"7in5v2": &EPD7in5v2,
	"2in9v2": &EPD2in9v2,
}

// BufferSize returns the length of a full frame in bytes.
func (o *Opts) BufferSize() int {
	return canvas.Mono.BufferSize(o.Width, o.Height)
}

// Connect opens a mode 0, 8 bit connection on p at Speed, or 4MHz when Speed
// is unset.
func (o *Opts) Connect(p spi.Port) (spi.Conn, error) {
	c, err := p.Connect(o.speed(), spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("epd: connecting to SPI: %w", err)
	}
	return c, nil
}

func (o *Opts) speed() physic.Frequency {
	if o.Speed == 0 {
		return 4 * physic.MegaHertz
	}
	return o.Speed
}

func (o *Opts) busyPoll() time.Duration {
	if o.BusyPoll <= 0 {
		return 10 * time.Millisecond
	}
	return o.BusyPoll
}

func (o *Opts) busyTimeout() time.Duration {
	if o.BusyTimeout <= 0 {
		return 5 * time.Second
	}
	return o.BusyTimeout
}

func (o *Opts) refreshTimeout() time.Duration {
	if o.RefreshTimeout <= 0 {
		return 30 * time.Second
	}
	return o.RefreshTimeout
}

func (o *Opts) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("epd: invalid size %dx%d", o.Width, o.Height)
	}
	switch o.Chip {
	case UC8179, SSD1680:
	default:
		return fmt.Errorf("epd: unknown chip %v", o.Chip)
	}
	return nil
}
