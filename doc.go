// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package epaper is a container for Waveshare e-paper panel support.
//
// Package canvas holds the rotatable framebuffer, package epd drives the
// panel controllers, rpioconn and preview provide alternate backends and
// cmd/epddemo ties them together.
package epaper
