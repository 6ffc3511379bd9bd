// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/GermanBionicSystems/epaper/epd"
)

var (
	framesDisplayed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "epddemo_frames_displayed_total",
		Help: "Frames sent to the panel and refreshed, by scene.",
	}, []string{"scene"})
	panelErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "epddemo_panel_errors_total",
		Help: "Panel operation failures, by kind.",
	}, []string{"kind"})
	refreshSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "epddemo_refresh_seconds",
		Help:    "Time to transfer and refresh one frame.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	})
)

// errorKind classifies a panel error for the errors metric.
func errorKind(err error) string {
	var (
		transport *epd.TransportError
		gpio      *epd.GpioError
		timeout   *epd.TimeoutError
		state     *epd.StateError
	)
	switch {
	case errors.As(err, &transport):
		return "transport"
	case errors.As(err, &gpio):
		return "gpio"
	case errors.As(err, &timeout):
		return "timeout"
	case errors.As(err, &state):
		return "state"
	}
	return "other"
}

func countError(err error) {
	panelErrors.WithLabelValues(errorKind(err)).Inc()
}
