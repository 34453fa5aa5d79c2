// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

// Package metrics collects Prometheus metrics about a harness run. The harness
// does not serve them over HTTP: at the end of the run they can be written to a
// file in the text exposition format, ready for the node_exporter textfile
// collector.
package metrics

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the collectors of a single run, registered on a private
// registry.
type Recorder struct {
	registry *prometheus.Registry

	samplesTotal    *prometheus.CounterVec
	sampleSeconds   *prometheus.GaugeVec
	measureDuration *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	rec := &Recorder{
		registry: prometheus.NewRegistry(),

		samplesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bigo",
			Name:      "samples_total",
			Help:      "Number of measurement samples produced.",
		}, []string{"function"}),

		sampleSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "bigo",
			Name:      "sample_seconds",
			Help:      "Average seconds of a single call, by input size.",
		}, []string{"function", "n"}),

		measureDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "bigo",
			Name:      "measure_duration_seconds",
			Help:      "Wall clock seconds spent measuring the whole size schedule, input setup included.",
		}, []string{"function"}),
	}

	rec.registry.MustRegister(rec.samplesTotal, rec.sampleSeconds, rec.measureDuration)

	return rec
}

// ObserveSample records one averaged sample.
func (rec *Recorder) ObserveSample(function string, n int, seconds float64) {
	rec.samplesTotal.WithLabelValues(function).Inc()
	rec.sampleSeconds.WithLabelValues(function, strconv.Itoa(n)).Set(seconds)
}

// ObserveSeries records the time needed to measure a whole series.
func (rec *Recorder) ObserveSeries(function string, elapsed time.Duration) {
	rec.measureDuration.WithLabelValues(function).Set(elapsed.Seconds())
}

// Gatherer returns the registry, e.g. for testutil helpers.
func (rec *Recorder) Gatherer() prometheus.Gatherer {
	return rec.registry
}

// WriteTextfile writes all metrics to path, in the Prometheus text format. The
// file is written atomically.
func (rec *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, rec.registry); err != nil {
		return errors.Wrap(err, "Error while writing the metrics textfile")
	}
	return nil
}
