// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

// Package measure times an algorithm across its size schedule. For each size
// the callable is invoked repeatedly back to back and the total wall clock time
// is divided by the number of repeats.
package measure

import (
	"time"

	"github.com/pkg/errors"

	"github.com/bigo-lab/bigo/harness/catalog"
	"github.com/bigo-lab/bigo/harness/logging"
)

//////////////////// PUBLIC TYPES ////////////////////

// Sample is a single (size, averaged time) observation for one algorithm.
type Sample struct {
	Algorithm string
	N         int
	Seconds   float64
}

// Series is the ordered list of samples of one algorithm, by size ascending.
type Series struct {
	Algorithm string
	Class     string
	Repeats   int
	Samples   []Sample
}

// Ns returns the input sizes of the series
func (series Series) Ns() []int {
	ns := make([]int, len(series.Samples))
	for i, s := range series.Samples {
		ns[i] = s.N
	}
	return ns
}

// Seconds returns the averaged times of the series
func (series Series) Seconds() []float64 {
	secs := make([]float64, len(series.Samples))
	for i, s := range series.Samples {
		secs[i] = s.Seconds
	}
	return secs
}

// Observer is notified of every sample and of every completed series.
// metrics.Recorder implements it.
type Observer interface {
	ObserveSample(function string, n int, seconds float64)
	ObserveSeries(function string, elapsed time.Duration)
}

// Clock abstracts time measurement, so that tests can use a fake one.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

type realClock struct{}

func (realClock) Now() time.Time                  { return time.Now() }
func (realClock) Since(t time.Time) time.Duration { return time.Since(t) }

// Engine measures descriptors. The zero value is not usable, use NewEngine.
type Engine struct {
	clock    Clock
	observer Observer

	// Folds the digests returned by the timed calls
	sink int
}

//////////////////// PUBLIC FUNCTIONS ////////////////////

// NewEngine returns an engine using the real clock. observer can be nil.
func NewEngine(observer Observer) *Engine {
	return &Engine{clock: realClock{}, observer: observer}
}

// NewEngineWithClock is like NewEngine, with a custom clock.
func NewEngineWithClock(clock Clock, observer Observer) *Engine {
	return &Engine{clock: clock, observer: observer}
}

// Measure times desc across its size schedule. A failing call aborts the
// measurement and the error is returned, without retries.
func (engine *Engine) Measure(desc catalog.Descriptor) (Series, error) {
	logger := logging.Logger()

	if len(desc.Sizes) == 0 {
		return Series{}, errors.Errorf("Empty size schedule for %s", desc.Name)
	}
	if desc.Repeats < 1 {
		return Series{}, errors.Errorf("Invalid repeat count %d for %s. Should be >= 1", desc.Repeats, desc.Name)
	}

	debugSchedule(desc)

	// The cache lives only for this run
	cache := NewInputCache(desc.Setup)

	series := Series{
		Algorithm: desc.Name,
		Class:     desc.Class,
		Repeats:   desc.Repeats,
		Samples:   make([]Sample, 0, len(desc.Sizes)),
	}

	seriesStart := engine.clock.Now()

	for _, n := range desc.Sizes {
		input, err := cache.Get(n)
		if err != nil {
			return Series{}, errors.Wrapf(err, "Error while preparing %s", desc.Name)
		}

		seconds, err := engine.timeCall(desc, n, input)
		if err != nil {
			return Series{}, err
		}

		sample := Sample{Algorithm: desc.Name, N: n, Seconds: seconds}
		series.Samples = append(series.Samples, sample)

		logger.Debugf("Measured %s with n=%d: %.9f s (%d repeats)", desc.Name, n, seconds, desc.Repeats)

		if engine.observer != nil {
			engine.observer.ObserveSample(desc.Name, n, seconds)
		}
	}

	if engine.observer != nil {
		engine.observer.ObserveSeries(desc.Name, engine.clock.Since(seriesStart))
	}

	debugSeries(series, cache)

	return series, nil
}

//////////////////// PRIVATE METHODS ////////////////////

// timeCall returns the average seconds of a single call over desc.Repeats
// back-to-back calls.
func (engine *Engine) timeCall(desc catalog.Descriptor, n int, input []int) (float64, error) {
	start := engine.clock.Now()
	for i := 0; i < desc.Repeats; i++ {
		digest, err := desc.Run(n, input)
		if err != nil {
			return 0, errors.Wrapf(err, "Error while running %s with n=%d", desc.Name, n)
		}
		engine.sink ^= digest
	}
	elapsed := engine.clock.Since(start)

	return elapsed.Seconds() / float64(desc.Repeats), nil
}
