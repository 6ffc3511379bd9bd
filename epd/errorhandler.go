// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// errorHandler is a wrapper for error management. Once an error is recorded
// every further operation is skipped.
type errorHandler struct {
	d   *Dev
	err error

	// Name and bound of the current busy wait.
	op      string
	timeout time.Duration
}

func (eh *errorHandler) expect(op string, timeout time.Duration) {
	eh.op = op
	eh.timeout = timeout
}

func (eh *errorHandler) out(name string, p OutputPin, l gpio.Level) {
	if eh.err != nil || p == nil {
		return
	}
	if err := p.Out(l); err != nil {
		eh.err = &GpioError{Line: name, Err: err}
	}
}

func (eh *errorHandler) rstOut(l gpio.Level) {
	eh.out("reset", eh.d.rst, l)
}

func (eh *errorHandler) dcOut(l gpio.Level) {
	eh.out("data/command", eh.d.dc, l)
}

func (eh *errorHandler) csOut(l gpio.Level) {
	eh.out("chip select", eh.d.cs, l)
}

func (eh *errorHandler) pwrOut(l gpio.Level) {
	eh.out("power", eh.d.pwr, l)
}

func (eh *errorHandler) cTx(w []byte) {
	if eh.err != nil {
		return
	}
	if err := eh.d.bus.Tx(w, nil); err != nil {
		eh.err = &TransportError{Err: err}
	}
}

// transfer sends w with the data/command line at l, in chunks the bus
// accepts.
func (eh *errorHandler) transfer(l gpio.Level, w []byte) {
	for len(w) > 0 && eh.err == nil {
		n := len(w)
		if n > eh.d.maxTxSize {
			n = eh.d.maxTxSize
		}

		eh.dcOut(l)
		eh.csOut(gpio.Low)
		eh.cTx(w[:n])
		eh.csOut(gpio.High)

		w = w[n:]
	}
}

func (eh *errorHandler) sendCommand(cmd byte) {
	eh.transfer(gpio.Low, []byte{cmd})
}

func (eh *errorHandler) sendData(data []byte) {
	eh.transfer(gpio.High, data)
}

// sendFrame sends frame data, converting it to the panel polarity.
func (eh *errorHandler) sendFrame(data []byte) {
	if !eh.d.opts.Chip.inverted() {
		eh.sendData(data)
		return
	}

	n := len(data)
	if n > eh.d.maxTxSize {
		n = eh.d.maxTxSize
	}
	scratch := make([]byte, n)

	for len(data) > 0 && eh.err == nil {
		chunk := scratch[:copy(scratch, data)]
		for i := range chunk {
			chunk[i] = ^chunk[i]
		}
		eh.sendData(chunk)
		data = data[len(chunk):]
	}
}

func (eh *errorHandler) delay(d time.Duration) {
	if eh.err != nil {
		return
	}
	eh.d.delay.Sleep(d)
}

// waitUntilIdle polls the busy line until the panel is idle. The time spent
// is counted in requested poll delays, so the bound is a lower bound on the
// wall clock time waited.
func (eh *errorHandler) waitUntilIdle() {
	if eh.err != nil {
		return
	}

	chip := eh.d.opts.Chip
	poll := eh.d.opts.busyPoll()
	var waited time.Duration

	for {
		if chip.pollsStatus() {
			eh.sendCommand(getStatus)
			if eh.err != nil {
				return
			}
		}

		if eh.d.busy.Read() != chip.busyLevel() {
			return
		}

		if waited >= eh.timeout {
			eh.err = &TimeoutError{Op: eh.op, Timeout: eh.timeout}
			return
		}

		eh.d.delay.Sleep(poll)
		waited += poll
	}
}

// reset pulses the reset line low.
func (eh *errorHandler) reset() {
	eh.rstOut(gpio.Low)
	eh.delay(eh.d.opts.ResetPulse)
	eh.rstOut(gpio.High)
	eh.delay(eh.d.opts.ResetSettle)
}
