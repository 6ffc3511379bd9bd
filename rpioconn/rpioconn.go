// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rpioconn exposes go-rpio GPIO and SPI0 with the interfaces package
// epd consumes, for hosts where periph's drivers are not wanted.
//
// go-rpio maps /dev/gpiomem directly; only one process may use it at a time.
package rpioconn

import (
	"fmt"

	rpio "github.com/stianeikeland/go-rpio/v4"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/GermanBionicSystems/epaper/epd"
)

// Bus is SPI0 driven by the BCM283x SPI peripheral. Chip select 0 is driven
// by the peripheral.
type Bus struct{}

// Open maps the GPIO memory range and enables SPI0 at the given clock.
func Open(speed physic.Frequency) (*Bus, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("opening memory range for GPIO access: %v", err)
	}
	if err := rpio.SpiBegin(rpio.Spi0); err != nil {
		rpio.Close()
		return nil, fmt.Errorf("setting pin modes to SPI: %v", err)
	}
	rpio.SpiChipSelect(0)
	rpio.SpiSpeed(int(speed / physic.Hertz))
	return &Bus{}, nil
}

// Tx implements epd.Bus. Reads are optional.
func (*Bus) Tx(w, r []byte) error {
	if len(r) != 0 && len(r) != len(w) {
		return fmt.Errorf("rpioconn: read buffer is %d bytes, want %d", len(r), len(w))
	}
	buf := append([]byte(nil), w...)
	rpio.SpiExchange(buf)
	copy(r, buf)
	return nil
}

// Close releases SPI0 and the memory mapping.
func (*Bus) Close() error {
	rpio.SpiEnd(rpio.Spi0)
	return rpio.Close()
}

func (*Bus) String() string {
	return "rpio.Spi0"
}

// Pin is a BCM numbered GPIO.
type Pin rpio.Pin

// Output configures the pin as an output.
func Output(bcm int) Pin {
	p := rpio.Pin(bcm)
	p.Output()
	return Pin(p)
}

// Input configures the pin as a floating input.
func Input(bcm int) Pin {
	p := rpio.Pin(bcm)
	p.Input()
	p.PullOff()
	return Pin(p)
}

// Out implements epd.OutputPin.
func (p Pin) Out(l gpio.Level) error {
	rpio.Pin(p).Write(toState(l))
	return nil
}

// Read implements epd.InputPin.
func (p Pin) Read() gpio.Level {
	return toLevel(rpio.Pin(p).Read())
}

func (p Pin) String() string {
	return fmt.Sprintf("GPIO%d", uint8(p))
}

func toState(l gpio.Level) rpio.State {
	if l == gpio.High {
		return rpio.High
	}
	return rpio.Low
}

func toLevel(s rpio.State) gpio.Level {
	return s == rpio.High
}

// HatPins returns the Waveshare HAT wiring: RST 17, DC 25, BUSY 24, PWR 18.
func HatPins() epd.Pins {
	return Pins(17, 25, 24, 18)
}

// Pins configures the given BCM pins. A negative pwr leaves the power line
// unconnected.
func Pins(rst, dc, busy, pwr int) epd.Pins {
	p := epd.Pins{
		RST:  Output(rst),
		DC:   Output(dc),
		Busy: Input(busy),
	}
	if pwr >= 0 {
		p.PWR = Output(pwr)
	}
	return p
}

var _ epd.Bus = &Bus{}
var _ epd.OutputPin = Pin(0)
var _ epd.InputPin = Pin(0)
