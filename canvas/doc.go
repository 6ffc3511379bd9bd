// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package canvas implements a bit-packed framebuffer for e-paper panels.
//
// The buffer is always kept in the physical, unrotated layout of the panel so
// it can be sent to the panel RAM as is. A rotation only changes how logical
// coordinates passed to DrawPixel and Set are mapped onto the buffer.
//
// Pixels are packed MSB-first along rows. In Mono format a set bit is White
// (the paper background) and a cleared bit is Black. Panels whose RAM uses the
// opposite polarity are inverted by the driver during transfer.
package canvas
