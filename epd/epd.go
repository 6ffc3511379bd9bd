// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3/rpi"
)

// defaultMaxTxSize is used when the bus does not report its limit. It matches
// the default spidev buffer size.
const defaultMaxTxSize = 4096

// Bus is the byte channel to the panel. Every call either sends all of w or
// fails. conn.Conn and tinygo's drivers.SPI satisfy it.
type Bus interface {
	Tx(w, r []byte) error
}

// OutputPin is a control line driven by the host.
type OutputPin interface {
	Out(l gpio.Level) error
}

// InputPin is the busy line.
type InputPin interface {
	Read() gpio.Level
}

// Delayer blocks for at least the requested duration.
type Delayer interface {
	Sleep(d time.Duration)
}

// SleepDelay implements Delayer with time.Sleep.
type SleepDelay struct{}

// Sleep implements Delayer.
func (SleepDelay) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Pins groups the control lines. CS is only needed when the bus does not
// drive chip select itself; PWR is only present on newer HAT revisions.
type Pins struct {
	DC   OutputPin
	RST  OutputPin
	Busy InputPin
	PWR  OutputPin
	CS   OutputPin
}

// State is the lifecycle state of a Dev.
type State uint8

const (
	Uninitialized State = iota
	Active
	Sleeping
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Active:
		return "Active"
	case Sleeping:
		return "Sleeping"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Dev defines the handler which is used to access the display.
type Dev struct {
	bus Bus

	dc   OutputPin
	rst  OutputPin
	pwr  OutputPin
	cs   OutputPin
	busy InputPin

	delay     Delayer
	maxTxSize int
	state     State

	opts *Opts
}

// isNil reports whether an optional pin was left unset or is gpio.INVALID, as
// header pins are on hosts without them.
func isNil(p interface{}) bool {
	if p == nil {
		return true
	}
	if pin, ok := p.(gpio.PinIO); ok {
		return pin == gpio.INVALID
	}
	return false
}

// New creates new handler which is used to access the display. No I/O is
// performed until Init. A nil delay uses time.Sleep.
func New(bus Bus, pins Pins, delay Delayer, opts *Opts) (*Dev, error) {
	if opts == nil {
		return nil, errors.New("epd: missing options")
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if bus == nil {
		return nil, errors.New("epd: missing bus")
	}
	if pins.DC == nil || pins.RST == nil || pins.Busy == nil {
		return nil, errors.New("epd: data/command, reset and busy lines are required")
	}
	if delay == nil {
		delay = SleepDelay{}
	}

	d := &Dev{
		bus:       bus,
		dc:        pins.DC,
		rst:       pins.RST,
		busy:      pins.Busy,
		delay:     delay,
		maxTxSize: defaultMaxTxSize,
		opts:      opts,
	}
	if !isNil(pins.PWR) {
		d.pwr = pins.PWR
	}
	if !isNil(pins.CS) {
		d.cs = pins.CS
	}

	// Get the maxTxSize from the conn if it implements the conn.Limits
	// interface.
	if limits, ok := bus.(conn.Limits); ok && limits.MaxTxSize() > 0 {
		d.maxTxSize = limits.MaxTxSize()
	}

	return d, nil
}

// NewSPI connects to the SPI port at the speed of the configuration and
// creates the handler.
func NewSPI(p spi.Port, pins Pins, opts *Opts) (*Dev, error) {
	if opts == nil {
		return nil, errors.New("epd: missing options")
	}
	c, err := opts.Connect(p)
	if err != nil {
		return nil, err
	}

	return New(c, pins, nil, opts)
}

// NewHat creates new handler which is used to access the display. Default
// Waveshare HAT configuration is used: RST on GPIO17, DC on GPIO25, BUSY on
// GPIO24 and PWR on GPIO18. Chip select is left to the SPI driver.
func NewHat(p spi.Port, opts *Opts) (*Dev, error) {
	busy := rpi.P1_18
	if err := busy.In(gpio.Float, gpio.NoEdge); err != nil {
		return nil, err
	}

	return NewSPI(p, Pins{
		DC:   rpi.P1_22,
		RST:  rpi.P1_11,
		Busy: busy,
		PWR:  rpi.P1_12,
	}, opts)
}

func (d *Dev) handler(op string, timeout time.Duration) *errorHandler {
	return &errorHandler{d: d, op: op, timeout: timeout}
}

// State returns the lifecycle state.
func (d *Dev) State() State {
	return d.state
}

// Opts returns the display configuration.
func (d *Dev) Opts() *Opts {
	return d.opts
}

// Bounds returns the physical bounds of the panel.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.opts.Width, d.opts.Height)
}

// String returns a string containing configuration information.
func (d *Dev) String() string {
	return fmt.Sprintf("epd.Dev{%s, %v, Width: %d, Height: %d, %s}", d.opts.Name, d.bus, d.opts.Width, d.opts.Height, d.state)
}

// Init powers the panel, pulses reset and loads the panel configuration.
//
// Init is only valid on a new Dev. If it fails the Dev stays Uninitialized and
// Init may be retried; the device state is unknown until it succeeds.
func (d *Dev) Init() error {
	if d.state != Uninitialized {
		return &StateError{Op: "init", State: d.state}
	}

	eh := d.handler("init", d.opts.busyTimeout())

	eh.pwrOut(gpio.High)
	eh.reset()
	eh.waitUntilIdle()
	initDisplay(eh, d.opts)

	if eh.err != nil {
		d.dropPower()
		return eh.err
	}

	d.state = Active
	return nil
}

func (d *Dev) checkFrame(op string, frame []byte) error {
	if d.state != Active {
		return &StateError{Op: op, State: d.state}
	}
	if want := d.opts.BufferSize(); len(frame) != want {
		return fmt.Errorf("epd: frame is %d bytes, want %d", len(frame), want)
	}
	return nil
}

// UpdateFrame sends a frame to the panel RAM without refreshing the image.
func (d *Dev) UpdateFrame(frame []byte) error {
	if err := d.checkFrame("update frame", frame); err != nil {
		return err
	}

	eh := d.handler("update frame", d.opts.busyTimeout())
	writeFrame(eh, d.opts, frame)

	return eh.err
}

// DisplayFrame refreshes the panel from its RAM and waits for it to finish.
func (d *Dev) DisplayFrame() error {
	if d.state != Active {
		return &StateError{Op: "display frame", State: d.state}
	}

	eh := d.handler("display frame", d.opts.refreshTimeout())
	refreshDisplay(eh, d.opts)
	eh.waitUntilIdle()

	return eh.err
}

// UpdateAndDisplayFrame sends a full frame and refreshes the panel with it.
// The frame must be in the canvas layout of a Mono canvas with the panel
// dimensions.
func (d *Dev) UpdateAndDisplayFrame(frame []byte) error {
	if err := d.checkFrame("update and display frame", frame); err != nil {
		return err
	}

	eh := d.handler("update frame", d.opts.busyTimeout())
	writeFrame(eh, d.opts, frame)

	eh.expect("display frame", d.opts.refreshTimeout())
	refreshDisplay(eh, d.opts)
	eh.waitUntilIdle()

	return eh.err
}

// ClearFrame fills the panel with the background color.
func (d *Dev) ClearFrame() error {
	return d.UpdateAndDisplayFrame(bytes.Repeat([]byte{0xFF}, d.opts.BufferSize()))
}

// Sleep puts the panel in deep sleep and switches the power line off. A
// sleeping panel only wakes up with a hardware reset, so the Dev must be
// recreated afterwards.
func (d *Dev) Sleep() error {
	if d.state != Active {
		return &StateError{Op: "sleep", State: d.state}
	}

	eh := d.handler("sleep", d.opts.busyTimeout())
	enterDeepSleep(eh, d.opts)

	if eh.err != nil {
		return eh.err
	}

	d.state = Sleeping
	eh.pwrOut(gpio.Low)
	return eh.err
}

// dropPower switches the power line off after a failed Init. The Init error
// takes precedence over a failure here.
func (d *Dev) dropPower() {
	if d.pwr != nil {
		_ = d.pwr.Out(gpio.Low)
	}
}

// Halt implements conn.Resource. An active panel is put to sleep.
func (d *Dev) Halt() error {
	if d.state != Active {
		return nil
	}
	return d.Sleep()
}

var _ conn.Resource = &Dev{}
