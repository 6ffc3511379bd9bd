// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd

import "time"

// UC8179 commands
const (
	panelSetting              byte = 0x00
	powerSetting              byte = 0x01
	powerOff                  byte = 0x02
	powerOn                   byte = 0x04
	boosterSoftStart          byte = 0x06
	deepSleep                 byte = 0x07
	dataStartTransmission2    byte = 0x13
	displayRefresh            byte = 0x12
	dualSPI                   byte = 0x15
	vcomAndDataIntervalConfig byte = 0x50
	tconSetting               byte = 0x60
	resolutionSetting         byte = 0x61
	getStatus                 byte = 0x71
)

// SSD1680 commands
const (
	driverOutputControl            byte = 0x01
	deepSleepMode                  byte = 0x10
	dataEntryModeSetting           byte = 0x11
	swReset                        byte = 0x12
	masterActivation               byte = 0x20
	displayUpdateControl1          byte = 0x21
	displayUpdateControl2          byte = 0x22
	writeRAMBW                     byte = 0x24
	setRAMXAddressStartEndPosition byte = 0x44
	setRAMYAddressStartEndPosition byte = 0x45
	setRAMXAddressCounter          byte = 0x4E
	setRAMYAddressCounter          byte = 0x4F
)

// deepSleepCheck is the check code the UC8179 requires with deepSleep.
const deepSleepCheck byte = 0xA5

type controller interface {
	sendCommand(byte)
	sendData([]byte)
	sendFrame([]byte)
	waitUntilIdle()
	delay(time.Duration)
}

func initDisplay(ctrl controller, opts *Opts) {
	switch opts.Chip {
	case UC8179:
		initUC8179(ctrl, opts)
	case SSD1680:
		initSSD1680(ctrl, opts)
	}
}

func initUC8179(ctrl controller, opts *Opts) {
	ctrl.sendCommand(powerSetting)
	ctrl.sendData([]byte{
		0x07,
		0x07, // VGH=20V, VGL=-20V
		0x3F, // VDH=15V
		0x3F, // VDL=-15V
	})

	ctrl.sendCommand(boosterSoftStart)
	ctrl.sendData([]byte{0x17, 0x17, 0x28, 0x17})

	ctrl.sendCommand(powerOn)
	ctrl.delay(100 * time.Millisecond)
	ctrl.waitUntilIdle()

	// KW mode, LUT from OTP.
	ctrl.sendCommand(panelSetting)
	ctrl.sendData([]byte{0x1F})

	ctrl.sendCommand(resolutionSetting)
	ctrl.sendData([]byte{
		byte(opts.Width >> 8),
		byte(opts.Width),
		byte(opts.Height >> 8),
		byte(opts.Height),
	})

	ctrl.sendCommand(dualSPI)
	ctrl.sendData([]byte{0x00})

	ctrl.sendCommand(tconSetting)
	ctrl.sendData([]byte{0x22})

	ctrl.sendCommand(vcomAndDataIntervalConfig)
	ctrl.sendData([]byte{0x10, 0x07})

	ctrl.waitUntilIdle()
}

func initSSD1680(ctrl controller, opts *Opts) {
	ctrl.waitUntilIdle()
	ctrl.sendCommand(swReset)
	ctrl.waitUntilIdle()

	gates := opts.Height - 1
	ctrl.sendCommand(driverOutputControl)
	ctrl.sendData([]byte{byte(gates), byte(gates >> 8), 0x00})

	// Y increment, X increment; update address counter in X direction
	ctrl.sendCommand(dataEntryModeSetting)
	ctrl.sendData([]byte{0x03})

	ctrl.sendCommand(setRAMXAddressStartEndPosition)
	ctrl.sendData([]byte{0x00, byte((opts.Width - 1) >> 3)})

	ctrl.sendCommand(setRAMYAddressStartEndPosition)
	ctrl.sendData([]byte{0x00, 0x00, byte(gates), byte(gates >> 8)})

	ctrl.sendCommand(displayUpdateControl1)
	ctrl.sendData([]byte{0x00, 0x80})

	ctrl.sendCommand(setRAMXAddressCounter)
	ctrl.sendData([]byte{0x00})

	ctrl.sendCommand(setRAMYAddressCounter)
	ctrl.sendData([]byte{0x00, 0x00})

	ctrl.waitUntilIdle()
}

// writeFrame sends a full frame into the panel RAM.
func writeFrame(ctrl controller, opts *Opts, frame []byte) {
	ctrl.waitUntilIdle()

	switch opts.Chip {
	case UC8179:
		ctrl.sendCommand(dataStartTransmission2)
	case SSD1680:
		ctrl.sendCommand(writeRAMBW)
	}
	ctrl.sendFrame(frame)
}

// refreshDisplay starts the transfer of the RAM contents to the ink. The
// caller waits for the panel to finish.
func refreshDisplay(ctrl controller, opts *Opts) {
	switch opts.Chip {
	case UC8179:
		ctrl.sendCommand(displayRefresh)
		ctrl.delay(100 * time.Millisecond)
	case SSD1680:
		ctrl.sendCommand(displayUpdateControl2)
		ctrl.sendData([]byte{0xF7})
		ctrl.sendCommand(masterActivation)
	}
}

func enterDeepSleep(ctrl controller, opts *Opts) {
	switch opts.Chip {
	case UC8179:
		ctrl.waitUntilIdle()
		ctrl.sendCommand(powerOff)
		ctrl.waitUntilIdle()
		ctrl.sendCommand(deepSleep)
		ctrl.sendData([]byte{deepSleepCheck})
	case SSD1680:
		ctrl.sendCommand(deepSleepMode)
		ctrl.sendData([]byte{0x01})
		ctrl.delay(100 * time.Millisecond)
	}
}
