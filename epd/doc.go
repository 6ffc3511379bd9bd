// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package epd controls Waveshare e-paper panels over SPI.
//
// A Dev drives the reset, data/command, busy and power-enable lines and sends
// full frames produced by package canvas. Its lifecycle is
// Uninitialized → Active → Sleeping; a sleeping panel needs a new Dev (and so
// a full hardware reset) before it can be used again.
//
// A Dev is not safe for concurrent use. Wrap it in a mutex when more than one
// goroutine needs the panel.
//
// Datasheets
//
// 7.5 inch V2 (UC8179): https://www.waveshare.com/w/upload/6/60/7.5inch_e-Paper_V2_Specification.pdf
//
// 2.9 inch V2 (SSD1680): https://www.waveshare.com/w/upload/7/79/2.9inch-e-paper-v2-specification.pdf
//
// Product page:
//
// https://www.waveshare.com/wiki/7.5inch_e-Paper_HAT
package epd
