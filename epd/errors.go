// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd

import (
	"fmt"
	"time"
)

// TransportError is returned when a bus transfer fails. The panel state is
// unknown afterwards.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("epd: bus transfer failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// GpioError is returned when driving a control line fails.
type GpioError struct {
	Line string
	Err  error
}

func (e *GpioError) Error() string {
	return fmt.Sprintf("epd: driving %s line failed: %v", e.Line, e.Err)
}

func (e *GpioError) Unwrap() error {
	return e.Err
}

// TimeoutError is returned when the busy line does not clear in time. The bus
// itself worked; the panel did not answer.
type TimeoutError struct {
	Op      string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("epd: panel still busy after %v during %s", e.Timeout, e.Op)
}

// StateError is returned when an operation is not valid in the current
// lifecycle state. No I/O is performed.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("epd: cannot %s while %s", e.Op, e.State)
}
